package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is a placed order. Items is a copy of the cart taken at placement
// and is never touched again; only Status changes afterwards.
type Order struct {
	ID           string          `json:"order_id"`
	CustomerName string          `json:"customer_name"`
	TableNumber  string          `json:"table_number"`
	Items        []OrderItem     `json:"order_items"`
	Status       OrderStatus     `json:"status"`
	Total        decimal.Decimal `json:"total"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ComputeTotal sums the snapshot lines. It does not look at the catalog, so
// editing or deleting menu items never changes the result.
func (o Order) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

func (o Order) TotalQuantity() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

type PlaceOrderRequest struct {
	CustomerName string `json:"customer_name" validate:"required,max=100"`
	TableNumber  string `json:"table_number" validate:"required,max=20"`
}

type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required,eq=pending|eq=confirmed|eq=completed|eq=cancelled"`
}
