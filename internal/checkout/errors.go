package checkout

import (
	"errors"
	"fmt"
)

// Kind classifies a checkout failure by which phase produced it, because the
// recovery paths differ.
type Kind string

const (
	// KindValidation blocks the action before any network call.
	KindValidation Kind = "validation"
	// KindAddressLoad is non-fatal: checkout proceeds with blank fields.
	KindAddressLoad Kind = "address_load_failed"
	// KindOrderSubmission means no order exists; the whole attempt failed.
	KindOrderSubmission Kind = "order_submission_failed"
	// KindPayment means the order exists but is unpaid; Error.OrderID carries
	// the created order for support or retry.
	KindPayment Kind = "payment_failed"
)

var (
	ErrNotAuthenticated = errors.New("checkout: not authenticated")
	ErrEmptyCart        = errors.New("checkout: cart is empty")
	ErrSubmitInProgress = errors.New("checkout: submission already in progress")
	ErrNotReady         = errors.New("checkout: not ready for submission")
	ErrNoFailedPayment  = errors.New("checkout: no failed payment to retry")
)

type Error struct {
	Kind    Kind
	OrderID int64 // set for KindPayment
	Err     error
}

func (e *Error) Error() string {
	if e.Kind == KindPayment && e.OrderID != 0 {
		return fmt.Sprintf("checkout %s (order %d): %v", e.Kind, e.OrderID, e.Err)
	}
	return fmt.Sprintf("checkout %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
