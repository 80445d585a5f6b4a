package domain

import "time"

// Receipt is the durable record of a completed payment.
type Receipt struct {
	MilestoneTitle string    `json:"milestone_title"`
	Amount         float64   `json:"amount"`
	PaymentKind    string    `json:"payment_kind"`
	Timestamp      time.Time `json:"timestamp"`
}
