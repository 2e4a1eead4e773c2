package clients

import (
	"context"
	"fmt"
	"net/url"

	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/models"
)

type OrderClient struct{ c *Client }

func NewOrderClient(c *Client) *OrderClient { return &OrderClient{c: c} }

func (oc *OrderClient) CreateOrder(ctx context.Context, req models.OrderCreate) (*models.Order, error) {
	var o models.Order
	if err := oc.c.post(ctx, "/orders", nil, req, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (oc *OrderClient) OrderByID(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	if err := oc.c.get(ctx, fmt.Sprintf("/orders/%d", id), nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (oc *OrderClient) OrderByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	var o models.Order
	if err := oc.c.get(ctx, "/orders/number/"+orderNumber, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (oc *OrderClient) OrdersByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	var out []models.Order
	if err := oc.c.get(ctx, fmt.Sprintf("/orders/user/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (oc *OrderClient) OrdersByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	var out []models.Order
	if err := oc.c.get(ctx, "/orders/status/"+string(status), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (oc *OrderClient) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {
	q := url.Values{"status": {string(status)}}
	var o models.Order
	if err := oc.c.patch(ctx, fmt.Sprintf("/orders/%d/status", id), q, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (oc *OrderClient) CancelOrder(ctx context.Context, id int64) (*models.Order, error) {
	var o models.Order
	if err := oc.c.post(ctx, fmt.Sprintf("/orders/%d/cancel", id), nil, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}
