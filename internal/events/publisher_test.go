package events_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/events"
	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/models"
	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/testutil"
)

func TestBuildCheckoutCompletedEvent(t *testing.T) {
	order := &models.Order{
		ID:          501,
		OrderNumber: "ORD-501",
		UserID:      42,
		Items: []models.OrderItem{
			{ProductID: 1, Quantity: 2, UnitPrice: 20},
		},
	}
	payment := &models.Payment{ID: 900, Amount: 53.20, PaymentMethod: models.MethodCreditCard}

	ev := events.BuildCheckoutCompletedEvent(order, payment)

	assert.Equal(t, events.CheckoutCompletedEventName, ev.EventName)
	assert.Equal(t, events.CheckoutCompletedEventVersion, ev.EventVersion)
	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, events.StorefrontProducer, ev.Producer)
	assert.Equal(t, int64(501), ev.Payload.OrderID)
	assert.Equal(t, int64(42), ev.Payload.UserID)
	assert.InDelta(t, 53.20, ev.Payload.TotalAmount, 1e-9)
	require.Len(t, ev.Payload.Items, 1)
	assert.Equal(t, int64(1), ev.Payload.Items[0].ProductID)
}

func TestPublisher_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	if !testutil.HasDocker() {
		t.Skip("docker not available")
	}

	conn := testutil.StartRabbitMQ(t)

	pub, err := events.NewPublisher(conn)
	require.NoError(t, err)
	defer pub.Close()

	order := &models.Order{ID: 501, OrderNumber: "ORD-501", UserID: 42}
	payment := &models.Payment{ID: 900, Amount: 53.20, PaymentMethod: models.MethodPayPal}

	require.NoError(t, pub.PublishCheckoutCompleted(context.Background(), order, payment))

	ch, err := conn.Channel()
	require.NoError(t, err)
	defer ch.Close()

	deliveries, err := ch.Consume(events.CheckoutCompletedQueue, "", true, false, false, false, nil)
	require.NoError(t, err)

	select {
	case d := <-deliveries:
		var ev events.EventEnvelope
		require.NoError(t, json.Unmarshal(d.Body, &ev))
		assert.Equal(t, int64(501), ev.Payload.OrderID)
		assert.Equal(t, models.MethodPayPal, ev.Payload.PaymentMethod)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for CheckoutCompleted delivery")
	}
}
