package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is a bill derived from an order snapshot. It is computed on request
// and never stored.
type Invoice struct {
	InvoiceNumber string          `json:"invoice_number"`
	OrderID       string          `json:"order_id"`
	CustomerName  string          `json:"customer_name"`
	TableNumber   string          `json:"table_number"`
	Items         []OrderItem     `json:"order_items"`
	Status        OrderStatus     `json:"status"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ServiceCharge decimal.Decimal `json:"service_charge"`
	Total         decimal.Decimal `json:"total"`
	IssuedAt      time.Time       `json:"issued_at"`
}
