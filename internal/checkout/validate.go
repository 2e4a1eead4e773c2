package checkout

import (
	"errors"
	"strings"

	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/models"
)

var (
	ErrShippingAddressRequired = errors.New("shipping address is required")
	ErrBillingAddressRequired  = errors.New("billing address is required")
	ErrPaymentMethodRequired   = errors.New("payment method is required")
	ErrUnknownPaymentMethod    = errors.New("unknown payment method")
)

// ValidateSubmission checks the checkout form fields. It is pure so the same
// rules run identically in tests and ahead of any network call.
func ValidateSubmission(s Submission) error {
	if strings.TrimSpace(s.ShippingAddress) == "" {
		return ErrShippingAddressRequired
	}
	if strings.TrimSpace(s.BillingAddress) == "" {
		return ErrBillingAddressRequired
	}
	if s.PaymentMethod == "" {
		return ErrPaymentMethodRequired
	}
	for _, m := range models.PaymentMethods() {
		if s.PaymentMethod == m {
			return nil
		}
	}
	return ErrUnknownPaymentMethod
}
