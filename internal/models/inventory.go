package models

import "time"

type Inventory struct {
	ID                int64      `json:"id"`
	ProductID         int64      `json:"productId"`
	ProductName       string     `json:"productName,omitempty"`
	QuantityAvailable int        `json:"quantityAvailable"`
	QuantityReserved  int        `json:"quantityReserved"`
	ReorderLevel      int        `json:"reorderLevel"`
	ReorderQuantity   int        `json:"reorderQuantity"`
	LastRestocked     *time.Time `json:"lastRestocked,omitempty"`
	CreatedAt         *time.Time `json:"createdAt,omitempty"`
	UpdatedAt         *time.Time `json:"updatedAt,omitempty"`
}

type InventoryCreate struct {
	ProductID         int64 `json:"productId"`
	QuantityAvailable int   `json:"quantityAvailable"`
	QuantityReserved  int   `json:"quantityReserved"`
	ReorderLevel      int   `json:"reorderLevel"`
	ReorderQuantity   int   `json:"reorderQuantity"`
}
