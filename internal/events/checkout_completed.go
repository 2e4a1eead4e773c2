// Package events publishes storefront integration events to RabbitMQ.
// Publishing is best-effort telemetry for downstream consumers; checkout
// outcomes never depend on it.
package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/models"
)

const (
	CheckoutCompletedEventName    = "CheckoutCompleted"
	CheckoutCompletedEventVersion = 1
	CheckoutCompletedQueue        = "storefront.checkout.completed"
	StorefrontProducer            = "storefront-client"
)

type EventEnvelope struct {
	EventName    string                   `json:"eventName"`
	EventVersion int                      `json:"eventVersion"`
	EventID      string                   `json:"eventId"`
	Producer     string                   `json:"producer"`
	OccurredAt   time.Time                `json:"occurredAt"`
	Payload      CheckoutCompletedPayload `json:"payload"`
}

type CheckoutCompletedPayload struct {
	OrderID       int64                `json:"orderId"`
	OrderNumber   string               `json:"orderNumber"`
	UserID        int64                `json:"userId"`
	Items         []CheckoutLineItem   `json:"items"`
	TotalAmount   float64              `json:"totalAmount"`
	PaymentID     int64                `json:"paymentId"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	Timestamp     time.Time            `json:"timestamp"`
}

type CheckoutLineItem struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

func BuildCheckoutCompletedEvent(order *models.Order, payment *models.Payment) EventEnvelope {
	occurredAt := time.Now().UTC()

	payload := CheckoutCompletedPayload{
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		UserID:        order.UserID,
		TotalAmount:   payment.Amount,
		PaymentID:     payment.ID,
		PaymentMethod: payment.PaymentMethod,
		Timestamp:     occurredAt,
	}
	for _, it := range order.Items {
		payload.Items = append(payload.Items, CheckoutLineItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	return EventEnvelope{
		EventName:    CheckoutCompletedEventName,
		EventVersion: CheckoutCompletedEventVersion,
		EventID:      uuid.NewString(),
		Producer:     StorefrontProducer,
		OccurredAt:   occurredAt,
		Payload:      payload,
	}
}
