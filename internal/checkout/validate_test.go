package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/models"
)

func TestValidateSubmission(t *testing.T) {
	valid := Submission{
		ShippingAddress: "1 Main St, Springfield, IL 62701, US",
		BillingAddress:  "1 Main St, Springfield, IL 62701, US",
		PaymentMethod:   models.MethodCreditCard,
	}

	tests := []struct {
		name    string
		mutate  func(*Submission)
		wantErr error
	}{
		{"valid", func(*Submission) {}, nil},
		{"missing shipping", func(s *Submission) { s.ShippingAddress = "" }, ErrShippingAddressRequired},
		{"blank shipping", func(s *Submission) { s.ShippingAddress = "   " }, ErrShippingAddressRequired},
		{"missing billing", func(s *Submission) { s.BillingAddress = "" }, ErrBillingAddressRequired},
		{"missing method", func(s *Submission) { s.PaymentMethod = "" }, ErrPaymentMethodRequired},
		{"unknown method", func(s *Submission) { s.PaymentMethod = "IOU" }, ErrUnknownPaymentMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)
			err := ValidateSubmission(s)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestComputeTotals(t *testing.T) {
	c := cart.Cart{TotalAmount: 40}

	got := ComputeTotals(c)

	assert.InDelta(t, 40.0, got.Subtotal, 1e-9)
	assert.InDelta(t, 3.20, got.Tax, 1e-9)
	assert.InDelta(t, 10.00, got.Shipping, 1e-9)
	assert.InDelta(t, 53.20, got.Total, 1e-9)
}

func TestComputeTotals_EmptyCartStillPaysShipping(t *testing.T) {
	got := ComputeTotals(cart.Cart{})

	assert.Zero(t, got.Subtotal)
	assert.Zero(t, got.Tax)
	assert.InDelta(t, 10.00, got.Total, 1e-9)
}
