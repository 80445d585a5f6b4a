package domain

import (
	"context"
	"time"
)

// Stage identifies a step of the workflow pipeline.
type Stage string

const (
	StageValidate  Stage = "validate"
	StageBrief     Stage = "brief"
	StageComplete  Stage = "complete"
	StageCalculate Stage = "calculate"
	StagePayment   Stage = "payment"
	StageReceipt   Stage = "receipt"
)

// Stages lists the pipeline stages in execution order.
func Stages() []Stage {
	return []Stage{StageValidate, StageBrief, StageComplete, StageCalculate, StagePayment, StageReceipt}
}

// StageEvent marks entry into or exit from a pipeline stage.
type StageEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Project   string    `json:"project"`
	Stage     Stage     `json:"stage"`
}

// PaymentEvent records a processed payment.
type PaymentEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Project   string    `json:"project"`
	Kind      string    `json:"kind"`
	Amount    float64   `json:"amount"`
}

// FailureEvent records a run aborted at a stage.
type FailureEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Project   string    `json:"project"`
	Stage     Stage     `json:"stage"`
	Err       error     `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability. Nil hooks are
// skipped.
type LifecycleHooks struct {
	OnStageEnter       func(context.Context, *StageEvent)
	OnStageLeave       func(context.Context, *StageEvent)
	OnPaymentProcessed func(context.Context, *PaymentEvent)
	OnRunFailed        func(context.Context, *FailureEvent)
}
