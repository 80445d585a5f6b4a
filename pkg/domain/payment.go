package domain

import "fmt"

// Payment kind discriminators. Used for display, receipts, and manifest
// dispatch; treat as stable identifiers.
const (
	KindEscrow = "Escrow"
	KindDirect = "Direct"
)

// PaymentMethod executes a payment transfer for a known amount. The variant
// set is closed: Escrow and Direct.
//
// Instances are immutable after construction. An amount is never updated in
// place; callers construct a replacement via NewPaymentMethod and rebind it
// on the milestone.
type PaymentMethod interface {
	// Kind returns the stable kind discriminator (KindEscrow or KindDirect).
	Kind() string

	// Amount returns the amount this method was constructed with.
	Amount() float64

	// Process executes the transfer and returns the human-readable
	// confirmation. Callers must only invoke it once a positive amount is
	// known; the engine enforces this before payment is due.
	Process() string
}

// NewPaymentMethod constructs a payment method of the given kind. It is the
// single dispatch point for the closed variant set.
func NewPaymentMethod(kind string, amount float64) (PaymentMethod, error) {
	switch kind {
	case KindEscrow:
		return NewEscrow(amount), nil
	case KindDirect:
		return NewDirect(amount), nil
	default:
		return nil, fmt.Errorf("unknown payment kind %q", kind)
	}
}

// Escrow holds funds in escrow pending milestone completion. Since the
// engine only processes payment after completion, processing confirms the
// release immediately.
type Escrow struct {
	amount float64
}

// NewEscrow creates an Escrow payment for the given amount.
func NewEscrow(amount float64) *Escrow {
	return &Escrow{amount: amount}
}

func (e *Escrow) Kind() string    { return KindEscrow }
func (e *Escrow) Amount() float64 { return e.amount }

func (e *Escrow) Process() string {
	return fmt.Sprintf("Processing escrow payment of $%.2f\nFunds held in escrow until milestone completion...", e.amount)
}

// Direct transfers the amount immediately.
type Direct struct {
	amount float64
}

// NewDirect creates a Direct payment for the given amount.
func NewDirect(amount float64) *Direct {
	return &Direct{amount: amount}
}

func (d *Direct) Kind() string    { return KindDirect }
func (d *Direct) Amount() float64 { return d.amount }

func (d *Direct) Process() string {
	return fmt.Sprintf("Processing direct payment of $%.2f\nPayment transferred immediately...", d.amount)
}
