package checkout

import "github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/cart"

const (
	taxRate     = 0.08
	shippingFee = 10.00
)

// Totals is the money breakdown of one checkout attempt, computed once from
// the cart snapshot taken at submission and frozen for the rest of the
// attempt.
type Totals struct {
	Subtotal float64
	Tax      float64
	Shipping float64
	Total    float64
}

func ComputeTotals(c cart.Cart) Totals {
	t := Totals{
		Subtotal: c.TotalAmount,
		Shipping: shippingFee,
	}
	t.Tax = t.Subtotal * taxRate
	t.Total = t.Subtotal + t.Tax + t.Shipping
	return t
}
