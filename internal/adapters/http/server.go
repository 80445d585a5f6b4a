// Package http exposes the workflow engine over a small JSON API.
package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gigflow/internal/manifest"
	"gigflow/pkg/domain"
	"gigflow/pkg/ports"
)

// Server handles workflow runs submitted as YAML manifests.
type Server struct {
	runner  ports.WorkflowRunner
	sink    ports.ReceiptSink
	logger  *slog.Logger
	version string
}

// NewHandler creates the HTTP handler for the engine.
// Routes:
//
//	POST /workflows/run  run a manifest, respond with the run report
//	GET  /receipts       list recorded receipts (when the sink supports it)
//	GET  /health         liveness probe
//	GET  /info           app and version info
//	GET  /metrics        Prometheus metrics
func NewHandler(runner ports.WorkflowRunner, sink ports.ReceiptSink, logger *slog.Logger, version string) http.Handler {
	s := &Server{runner: runner, sink: sink, logger: logger, version: version}

	r := chi.NewRouter()
	r.Post("/workflows/run", s.runWorkflow)
	r.Get("/receipts", s.listReceipts)
	r.Get("/health", s.health)
	r.Get("/info", s.info)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

// runReport is the JSON shape of a run outcome. Report.Err is not
// serializable, so it flattens into an error string.
type runReport struct {
	Project     string          `json:"project"`
	Ok          bool            `json:"ok"`
	Amount      float64         `json:"amount,omitempty"`
	Receipt     *domain.Receipt `json:"receipt,omitempty"`
	FailedStage string          `json:"failed_stage,omitempty"`
	Error       string          `json:"error,omitempty"`
	Output      string          `json:"output"`
}

func (s *Server) runWorkflow(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	project, err := manifest.Parse(body)
	if err != nil {
		s.logger.Warn("rejected manifest", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	report := s.runner.Execute(r.Context(), project)

	resp := runReport{
		Project: report.Project,
		Ok:      report.Ok(),
		Amount:  report.Amount,
		Receipt: report.Receipt,
	}

	status := http.StatusOK
	if !report.Ok() {
		resp.FailedStage = string(report.FailedStage)
		resp.Error = report.Err.Error()
		resp.Output = report.Diagnostic()
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, resp)
}

func (s *Server) listReceipts(w http.ResponseWriter, r *http.Request) {
	lister, ok := s.sink.(ports.ReceiptLister)
	if !ok {
		http.Error(w, "Receipt listing not supported by the configured sink", http.StatusNotImplemented)
		return
	}

	receipts, err := lister.Receipts(r.Context())
	if err != nil {
		s.logger.Error("failed to list receipts", "error", err)
		http.Error(w, "Failed to list receipts", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, receipts)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "gigflow-http",
		"version": s.version,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}
