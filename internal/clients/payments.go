package clients

import (
	"context"
	"fmt"

	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/models"
)

type PaymentClient struct{ c *Client }

func NewPaymentClient(c *Client) *PaymentClient { return &PaymentClient{c: c} }

func (pc *PaymentClient) ProcessPayment(ctx context.Context, req models.PaymentCreate) (*models.Payment, error) {
	var p models.Payment
	if err := pc.c.post(ctx, "/payments", nil, req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (pc *PaymentClient) PaymentByID(ctx context.Context, id int64) (*models.Payment, error) {
	var p models.Payment
	if err := pc.c.get(ctx, fmt.Sprintf("/payments/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (pc *PaymentClient) PaymentByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	var p models.Payment
	if err := pc.c.get(ctx, "/payments/transaction/"+transactionID, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (pc *PaymentClient) PaymentsByOrder(ctx context.Context, orderID int64) ([]models.Payment, error) {
	var out []models.Payment
	if err := pc.c.get(ctx, fmt.Sprintf("/payments/order/%d", orderID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (pc *PaymentClient) PaymentsByUser(ctx context.Context, userID int64) ([]models.Payment, error) {
	var out []models.Payment
	if err := pc.c.get(ctx, fmt.Sprintf("/payments/user/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (pc *PaymentClient) RefundPayment(ctx context.Context, id int64) (*models.Payment, error) {
	var p models.Payment
	if err := pc.c.post(ctx, fmt.Sprintf("/payments/%d/refund", id), nil, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
