package domain

import (
	"fmt"
	"strings"
)

// Milestone is a single unit of deliverable work that, once completed,
// determines the payment amount owed. The variant set is closed:
// FixedPriceMilestone and HourlyMilestone.
type Milestone interface {
	Title() string
	Description() string

	// Completed reports whether the milestone has been marked complete.
	Completed() bool

	// Payment returns the attached payment method.
	Payment() PaymentMethod

	// AttachPayment rebinds the milestone's payment method. Used when the
	// true amount supersedes a placeholder: a fresh method replaces the old
	// one, never an in-place mutation.
	AttachPayment(p PaymentMethod)

	// CalculatePayment returns the amount due. It is a pure read: a
	// positive amount only once completed, 0 while pending.
	CalculatePayment() float64

	// Complete transitions the milestone to completed exactly once and
	// returns the completion notice. It fails with ErrAlreadyCompleted on
	// re-invocation, and variants may impose their own preconditions.
	Complete() (string, error)

	// Summary returns a read-only markdown report of the milestone.
	Summary() string
}

// milestoneBase carries the state shared by all variants.
type milestoneBase struct {
	title       string
	description string
	completed   bool
	payment     PaymentMethod
}

func (m *milestoneBase) Title() string                 { return m.title }
func (m *milestoneBase) Description() string           { return m.description }
func (m *milestoneBase) Completed() bool               { return m.completed }
func (m *milestoneBase) Payment() PaymentMethod        { return m.payment }
func (m *milestoneBase) AttachPayment(p PaymentMethod) { m.payment = p }

func (m *milestoneBase) summary() string {
	status := "Pending"
	if m.completed {
		status = "Completed"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "### Milestone: %s\n", m.title)
	fmt.Fprintf(&b, "- Description: %s\n", m.description)
	fmt.Fprintf(&b, "- Status: %s\n", status)
	fmt.Fprintf(&b, "- Payment Method: %s\n", m.payment.Kind())
	return b.String()
}

// FixedPriceMilestone pays a fixed amount on completion.
type FixedPriceMilestone struct {
	milestoneBase
	fixedAmount float64
}

// NewFixedPriceMilestone creates a pending fixed-price milestone with the
// given payment method attached.
func NewFixedPriceMilestone(title, description string, payment PaymentMethod, amount float64) *FixedPriceMilestone {
	return &FixedPriceMilestone{
		milestoneBase: milestoneBase{title: title, description: description, payment: payment},
		fixedAmount:   amount,
	}
}

func (m *FixedPriceMilestone) Summary() string { return m.summary() }

func (m *FixedPriceMilestone) CalculatePayment() float64 {
	if m.completed {
		return m.fixedAmount
	}
	return 0
}

func (m *FixedPriceMilestone) Complete() (string, error) {
	if m.completed {
		return "", ErrAlreadyCompleted
	}
	m.completed = true
	return fmt.Sprintf("Fixed-price milestone '%s' completed!\nPayment amount: $%.2f",
		m.title, m.CalculatePayment()), nil
}

// HourlyMilestone pays hours worked times the hourly rate on completion.
type HourlyMilestone struct {
	milestoneBase
	hoursWorked float64
	hourlyRate  float64
}

// NewHourlyMilestone creates a pending hourly milestone with zero hours
// recorded. Hours are supplied later through SetHoursWorked.
func NewHourlyMilestone(title, description string, payment PaymentMethod, hourlyRate float64) *HourlyMilestone {
	return &HourlyMilestone{
		milestoneBase: milestoneBase{title: title, description: description, payment: payment},
		hourlyRate:    hourlyRate,
	}
}

func (m *HourlyMilestone) Summary() string { return m.summary() }

// HoursWorked returns the hours recorded so far.
func (m *HourlyMilestone) HoursWorked() float64 { return m.hoursWorked }

// SetHoursWorked overwrites the recorded hours. Negative hours fail with
// ErrInvalidHours and leave the stored value unchanged. Zero is legal to
// set but not sufficient to complete.
func (m *HourlyMilestone) SetHoursWorked(hours float64) error {
	if hours < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidHours, hours)
	}
	m.hoursWorked = hours
	return nil
}

func (m *HourlyMilestone) CalculatePayment() float64 {
	if m.completed {
		return m.hoursWorked * m.hourlyRate
	}
	return 0
}

func (m *HourlyMilestone) Complete() (string, error) {
	if m.completed {
		return "", ErrAlreadyCompleted
	}
	if m.hoursWorked <= 0 {
		return "", fmt.Errorf("%w: %v hours recorded", ErrInvalidHours, m.hoursWorked)
	}
	m.completed = true
	return fmt.Sprintf("Hourly milestone '%s' completed!\nHours worked: %v at $%.2f/hr\nPayment amount: $%.2f",
		m.title, m.hoursWorked, m.hourlyRate, m.CalculatePayment()), nil
}
