package models

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderConfirmed  OrderStatus = "CONFIRMED"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
	OrderRefunded   OrderStatus = "REFUNDED"
)

type OrderItem struct {
	ID          int64   `json:"id,omitempty"`
	OrderID     int64   `json:"orderId,omitempty"`
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	ProductSKU  string  `json:"productSku"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice,omitempty"`
}

type Order struct {
	ID              int64       `json:"id"`
	OrderNumber     string      `json:"orderNumber"`
	UserID          int64       `json:"userId"`
	Status          OrderStatus `json:"status"`
	TotalAmount     float64     `json:"totalAmount"`
	TaxAmount       float64     `json:"taxAmount"`
	ShippingAmount  float64     `json:"shippingAmount"`
	ShippingAddress string      `json:"shippingAddress"`
	BillingAddress  string      `json:"billingAddress"`
	Items           []OrderItem `json:"items"`
	CreatedAt       *time.Time  `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time  `json:"updatedAt,omitempty"`
}

// OrderCreate is the request body for order submission. Totals are derived
// server-side from the items plus the tax and shipping amounts given here.
type OrderCreate struct {
	UserID          int64       `json:"userId"`
	ShippingAddress string      `json:"shippingAddress"`
	BillingAddress  string      `json:"billingAddress"`
	Items           []OrderItem `json:"items"`
	TaxAmount       float64     `json:"taxAmount"`
	ShippingAmount  float64     `json:"shippingAmount"`
}
