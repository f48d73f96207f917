package helpers

import (
	"go-hotel-ordering/models"

	"github.com/shopspring/decimal"
)

// SummarizeCart prices the cart against the live catalog. Lines whose menu
// item no longer exists come back with a nil MenuItem and a zero subtotal.
func SummarizeCart(menu []models.MenuItem, cart []models.CartItem, serviceChargeRate decimal.Decimal) models.CartSummary {
	byID := make(map[string]models.MenuItem, len(menu))
	for _, item := range menu {
		byID[item.ID] = item
	}

	summary := models.CartSummary{
		Items:    make([]models.CartLineView, 0, len(cart)),
		Subtotal: decimal.Zero,
	}
	for _, line := range cart {
		view := models.CartLineView{CartItem: line, LineTotal: decimal.Zero}
		if item, ok := byID[line.MenuItemID]; ok {
			item := item
			view.MenuItem = &item
			view.LineTotal = item.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		}
		summary.Items = append(summary.Items, view)
		summary.Subtotal = summary.Subtotal.Add(view.LineTotal)
		summary.TotalQuantity += line.Quantity
	}
	summary.ServiceCharge = summary.Subtotal.Mul(serviceChargeRate).Round(2)
	summary.Total = summary.Subtotal.Add(summary.ServiceCharge)
	return summary
}
