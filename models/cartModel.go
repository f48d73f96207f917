package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem is a pending selection. MenuItemID may point at an entry that has
// since been deleted from the catalog.
type CartItem struct {
	ID                  string    `json:"cart_item_id"`
	MenuItemID          string    `json:"menu_item_id"`
	Quantity            int       `json:"quantity"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

type AddToCartRequest struct {
	MenuItemID          string `json:"menu_item_id" validate:"required"`
	Quantity            int    `json:"quantity" validate:"required,min=1"`
	SpecialInstructions string `json:"special_instructions" validate:"max=500"`
}

type UpdateCartItemRequest struct {
	Quantity            int    `json:"quantity" validate:"required,min=1"`
	SpecialInstructions string `json:"special_instructions" validate:"max=500"`
}

// CartLineView is a cart line joined with its catalog entry. MenuItem is nil
// when the entry has been deleted.
type CartLineView struct {
	CartItem
	MenuItem  *MenuItem       `json:"menu_item"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type CartSummary struct {
	Items         []CartLineView  `json:"items"`
	TotalQuantity int             `json:"total_quantity"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ServiceCharge decimal.Decimal `json:"service_charge"`
	Total         decimal.Decimal `json:"total"`
}
