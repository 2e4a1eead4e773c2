package events

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/models"
)

type Publisher struct {
	ch *amqp.Channel
}

func NewPublisher(conn *amqp.Connection) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	// Declare the queue so publish never fails due to missing infra
	if _, err := ch.QueueDeclare(CheckoutCompletedQueue, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare %s: %w", CheckoutCompletedQueue, err)
	}

	return &Publisher{ch: ch}, nil
}

func (p *Publisher) Close() error {
	return p.ch.Close()
}

func (p *Publisher) PublishCheckoutCompleted(ctx context.Context, order *models.Order, payment *models.Payment) error {
	ev := BuildCheckoutCompletedEvent(order, payment)

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal CheckoutCompleted: %w", err)
	}

	err = p.ch.PublishWithContext(ctx,
		"", // default exchange
		CheckoutCompletedQueue,
		false, false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    ev.EventID,
			Timestamp:    ev.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish CheckoutCompleted: %w", err)
	}
	return nil
}
