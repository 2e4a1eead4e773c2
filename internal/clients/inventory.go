package clients

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/andreasstove999/ecommerce-system/storefront-client-go/internal/models"
)

type InventoryClient struct{ c *Client }

func NewInventoryClient(c *Client) *InventoryClient { return &InventoryClient{c: c} }

func (ic *InventoryClient) CreateInventory(ctx context.Context, req models.InventoryCreate) (*models.Inventory, error) {
	var inv models.Inventory
	if err := ic.c.post(ctx, "/inventory", nil, req, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (ic *InventoryClient) InventoryByID(ctx context.Context, id int64) (*models.Inventory, error) {
	var inv models.Inventory
	if err := ic.c.get(ctx, fmt.Sprintf("/inventory/%d", id), nil, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (ic *InventoryClient) InventoryByProduct(ctx context.Context, productID int64) (*models.Inventory, error) {
	var inv models.Inventory
	if err := ic.c.get(ctx, fmt.Sprintf("/inventory/product/%d", productID), nil, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (ic *InventoryClient) AllInventory(ctx context.Context) ([]models.Inventory, error) {
	var out []models.Inventory
	if err := ic.c.get(ctx, "/inventory", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (ic *InventoryClient) LowStockItems(ctx context.Context) ([]models.Inventory, error) {
	var out []models.Inventory
	if err := ic.c.get(ctx, "/inventory/low-stock", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (ic *InventoryClient) UpdateStock(ctx context.Context, productID int64, quantity int) (*models.Inventory, error) {
	q := url.Values{"quantity": {strconv.Itoa(quantity)}}
	var inv models.Inventory
	if err := ic.c.patch(ctx, fmt.Sprintf("/inventory/product/%d/stock", productID), q, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (ic *InventoryClient) ReserveStock(ctx context.Context, productID int64, quantity int) (*models.Inventory, error) {
	return ic.stockOp(ctx, productID, "reserve", quantity)
}

func (ic *InventoryClient) ReleaseStock(ctx context.Context, productID int64, quantity int) (*models.Inventory, error) {
	return ic.stockOp(ctx, productID, "release", quantity)
}

func (ic *InventoryClient) DeductStock(ctx context.Context, productID int64, quantity int) (*models.Inventory, error) {
	return ic.stockOp(ctx, productID, "deduct", quantity)
}

func (ic *InventoryClient) stockOp(ctx context.Context, productID int64, op string, quantity int) (*models.Inventory, error) {
	q := url.Values{"quantity": {strconv.Itoa(quantity)}}
	var inv models.Inventory
	if err := ic.c.post(ctx, fmt.Sprintf("/inventory/product/%d/%s", productID, op), q, nil, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}
