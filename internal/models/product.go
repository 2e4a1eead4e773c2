// Package models holds the wire types of the backend APIs the storefront
// consumes. Field names and JSON casing match the backend contracts.
package models

import "time"

type ProductStatus string

const (
	ProductActive       ProductStatus = "ACTIVE"
	ProductInactive     ProductStatus = "INACTIVE"
	ProductOutOfStock   ProductStatus = "OUT_OF_STOCK"
	ProductDiscontinued ProductStatus = "DISCONTINUED"
)

type Product struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	SKU          string        `json:"sku"`
	Price        float64       `json:"price"`
	CategoryID   int64         `json:"categoryId"`
	CategoryName string        `json:"categoryName,omitempty"`
	Brand        string        `json:"brand"`
	ImageURL     string        `json:"imageUrl,omitempty"`
	Status       ProductStatus `json:"status"`
	CreatedAt    *time.Time    `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time    `json:"updatedAt,omitempty"`
}

type ProductCreate struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	SKU         string        `json:"sku"`
	Price       float64       `json:"price"`
	CategoryID  int64         `json:"categoryId"`
	Brand       string        `json:"brand"`
	ImageURL    string        `json:"imageUrl,omitempty"`
	Status      ProductStatus `json:"status"`
}

type Category struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ParentID    *int64     `json:"parentId,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type CategoryCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentID    *int64 `json:"parentId,omitempty"`
}

type Review struct {
	ID        int64      `json:"id"`
	ProductID int64      `json:"productId"`
	UserID    int64      `json:"userId"`
	UserName  string     `json:"userName,omitempty"`
	Rating    int        `json:"rating"`
	Comment   string     `json:"comment,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type ReviewCreate struct {
	ProductID int64  `json:"productId"`
	UserID    int64  `json:"userId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}
