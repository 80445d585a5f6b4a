/*
Package gigflow runs freelance project workflows: a client and a freelancer
agree on a milestone, the milestone is completed, payment is calculated and
processed, and a receipt is recorded.

It separates the domain model (parties, milestones, payment methods) from the
pipeline that drives a run and from the adapters that persist receipts. This
hexagonal layout lets the same engine back a CLI, an HTTP server, or an
embedding application.

# Key Features

  - Closed variant sets: fixed-price and hourly milestones, escrow and direct
    payment methods, dispatched by stable kind discriminators.
  - Single error boundary: the engine folds every failure into the run
    report, tagged with the stage that aborted the run.
  - Pluggable receipt sinks: append-only text file (default), in-memory, or
    Redis, all satisfying the same contract.
  - Lifecycle hooks for logging and metrics, without coupling the domain to
    any observability stack.

# Usage

	package main

	import (
		"context"
		"fmt"

		"gigflow"
		"gigflow/pkg/domain"
	)

	func main() {
		eng := gigflow.New(gigflow.WithPresenter(func(s string) { fmt.Println(s) }))

		project := domain.NewProject("Website Redesign",
			domain.NewClient("Sara Chen", "sara@acme.io", "Acme Corp"),
			domain.NewFreelancer("Jon Reyes", "jon@dev.io", "Go, SQL", 75),
			domain.NewFixedPriceMilestone("Website Redesign", "Full redesign", domain.NewEscrow(0), 2500),
		)

		report := eng.Run(context.Background(), project)
		if !report.Ok() {
			fmt.Println(report.Diagnostic())
		}
	}

Projects can also be loaded from YAML manifests; see the gigflow CLI.
*/
package gigflow
