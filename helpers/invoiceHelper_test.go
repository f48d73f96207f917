package helpers

import (
	"testing"
	"time"

	"go-hotel-ordering/models"

	"github.com/shopspring/decimal"
	"gopkg.in/go-playground/assert.v1"
)

func TestInvoiceNumberCountsWithinTheDay(t *testing.T) {
	day1 := time.Date(2024, 3, 9, 23, 50, 0, 0, time.UTC)
	day2 := day1.Add(20 * time.Minute)
	orders := []models.Order{
		{ID: "a", CreatedAt: day1},
		{ID: "b", CreatedAt: day1.Add(time.Minute)},
		{ID: "c", CreatedAt: day2},
		{ID: "d", CreatedAt: day2.Add(time.Minute)},
	}

	tests := []struct {
		id   string
		want string
	}{
		{"a", "INV-20240309-0001"},
		{"b", "INV-20240309-0002"},
		{"c", "INV-20240310-0001"},
		{"d", "INV-20240310-0002"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			var order models.Order
			for _, o := range orders {
				if o.ID == tt.id {
					order = o
				}
			}
			got, ok := InvoiceNumber(order, orders)
			assert.Equal(t, ok, true)
			assert.Equal(t, got, tt.want)
		})
	}

	_, ok := InvoiceNumber(models.Order{ID: "zz", CreatedAt: day1}, orders)
	assert.Equal(t, ok, false)
}

func TestBuildInvoice(t *testing.T) {
	order := models.Order{
		ID:           "o1",
		CustomerName: "Guest",
		TableNumber:  "12",
		Status:       models.OrderStatusCompleted,
		Total:        decimal.RequireFromString("455.50"),
		CreatedAt:    time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC),
	}
	invoice, ok := BuildInvoice(order, []models.Order{order}, decimal.RequireFromString("0.10"))
	assert.Equal(t, ok, true)
	assert.Equal(t, invoice.InvoiceNumber, "INV-20240309-0001")
	assert.Equal(t, invoice.Subtotal.Equal(order.Total), true)
	assert.Equal(t, invoice.ServiceCharge.Equal(decimal.RequireFromString("45.55")), true)
	assert.Equal(t, invoice.Total.Equal(decimal.RequireFromString("501.05")), true)
	assert.Equal(t, invoice.Status, models.OrderStatusCompleted)
}
