package helpers

import (
	"fmt"

	"go-hotel-ordering/models"

	"github.com/shopspring/decimal"
)

const invoicePrefix = "INV"

// InvoiceNumber numbers an order within the day it was placed:
// INV-YYYYMMDD-NNNN, where NNNN counts that day's orders in placement order.
// ok is false when order is not in orders.
func InvoiceNumber(order models.Order, orders []models.Order) (number string, ok bool) {
	date := order.CreatedAt.Format("20060102")
	sequence := 0
	for _, o := range orders {
		if o.CreatedAt.Format("20060102") == date {
			sequence++
		}
		if o.ID == order.ID {
			return fmt.Sprintf("%s-%s-%04d", invoicePrefix, date, sequence), true
		}
	}
	return "", false
}

// BuildInvoice bills an order at its placed total plus the service charge.
func BuildInvoice(order models.Order, orders []models.Order, serviceChargeRate decimal.Decimal) (models.Invoice, bool) {
	number, ok := InvoiceNumber(order, orders)
	if !ok {
		return models.Invoice{}, false
	}
	serviceCharge := order.Total.Mul(serviceChargeRate).Round(2)
	return models.Invoice{
		InvoiceNumber: number,
		OrderID:       order.ID,
		CustomerName:  order.CustomerName,
		TableNumber:   order.TableNumber,
		Items:         order.Items,
		Status:        order.Status,
		Subtotal:      order.Total,
		ServiceCharge: serviceCharge,
		Total:         order.Total.Add(serviceCharge),
		IssuedAt:      order.UpdatedAt,
	}, true
}
