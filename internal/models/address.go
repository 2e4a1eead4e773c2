package models

import (
	"fmt"
	"time"
)

type AddressType string

const (
	AddressHome     AddressType = "HOME"
	AddressWork     AddressType = "WORK"
	AddressBilling  AddressType = "BILLING"
	AddressShipping AddressType = "SHIPPING"
)

type Address struct {
	ID           int64       `json:"id"`
	UserID       int64       `json:"userId"`
	AddressLine1 string      `json:"addressLine1"`
	AddressLine2 string      `json:"addressLine2,omitempty"`
	City         string      `json:"city"`
	State        string      `json:"state"`
	PostalCode   string      `json:"postalCode"`
	Country      string      `json:"country"`
	AddressType  AddressType `json:"addressType"`
	IsDefault    bool        `json:"isDefault"`
	CreatedAt    *time.Time  `json:"createdAt,omitempty"`
	UpdatedAt    *time.Time  `json:"updatedAt,omitempty"`
}

// Format renders the single-line display form used on order documents.
func (a Address) Format() string {
	return fmt.Sprintf("%s, %s, %s %s, %s", a.AddressLine1, a.City, a.State, a.PostalCode, a.Country)
}

type AddressCreate struct {
	UserID       int64       `json:"userId"`
	AddressLine1 string      `json:"addressLine1"`
	AddressLine2 string      `json:"addressLine2,omitempty"`
	City         string      `json:"city"`
	State        string      `json:"state"`
	PostalCode   string      `json:"postalCode"`
	Country      string      `json:"country"`
	AddressType  AddressType `json:"addressType"`
	IsDefault    bool        `json:"isDefault"`
}
