package domain

import "errors"

// ErrMissingCollaborator is returned when a required party or milestone was
// never supplied to the engine.
var ErrMissingCollaborator = errors.New("missing required collaborator")

// ErrInvalidHours is returned when an hourly milestone is given negative
// hours, or asked to complete with zero or negative hours recorded.
var ErrInvalidHours = errors.New("invalid hours worked: cannot be negative or zero")

// ErrAlreadyCompleted is returned when Complete is called on a milestone
// that has already been completed.
var ErrAlreadyCompleted = errors.New("milestone already completed")

// ErrPaymentFailure is returned when the computed payment amount is not
// positive at the moment payment is due.
var ErrPaymentFailure = errors.New("payment processing failed: amount is zero or negative")

// ErrReceiptWrite is returned when the receipt sink could not be written.
var ErrReceiptWrite = errors.New("unable to write payment receipt")
