package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is one cart line frozen at placement time together with the
// catalog name and unit price it had then. Unavailable is set when the menu
// item was already gone; such lines are priced at zero.
type OrderItem struct {
	ID                  string          `json:"order_item_id"`
	MenuItemID          string          `json:"menu_item_id"`
	Name                string          `json:"name"`
	Quantity            int             `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unit_price"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
	Unavailable         bool            `json:"unavailable,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
