package cart

// Line is one product entry in the cart, keyed by product id. UnitPrice is
// captured at add time so later catalog price changes do not move the cart.
type Line struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	ProductSKU  string  `json:"productSku"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// Cart holds at most one Line per product id, in insertion order.
// TotalAmount and LineCount are always derived from Lines.
type Cart struct {
	Lines       []Line  `json:"lines"`
	TotalAmount float64 `json:"totalAmount"`
	LineCount   int     `json:"lineCount"`
}

func emptyCart() Cart {
	return Cart{Lines: []Line{}}
}

func (c *Cart) recalculate() {
	count := 0
	total := 0.0
	for _, l := range c.Lines {
		count += l.Quantity
		total += l.UnitPrice * float64(l.Quantity)
	}
	c.LineCount = count
	c.TotalAmount = total
}

// clone returns a deep copy so callers can never mutate the live cart.
func (c Cart) clone() Cart {
	out := c
	out.Lines = make([]Line, len(c.Lines))
	copy(out.Lines, c.Lines)
	return out
}
