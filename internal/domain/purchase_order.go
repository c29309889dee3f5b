package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of a purchase order.
// The only transition is pending -> received.
type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusReceived OrderStatus = "received"
)

// OrderItem is one line of a purchase order. ProductName and Cost are
// snapshots taken at creation time; later product edits do not affect them.
type OrderItem struct {
	ProductID   string
	ProductName string
	Quantity    int
	Cost        decimal.Decimal
}

// PurchaseOrder records an intent to restock specific products.
// Once received, items and totals are immutable history.
type PurchaseOrder struct {
	ID           string
	PONumber     string
	Items        []OrderItem
	TotalCost    decimal.Decimal
	Status       OrderStatus
	DeliveryDate string
	Notes        string
	CreatedAt    time.Time
	ReceivedAt   *time.Time
}

// NewPurchaseOrder builds a pending order and computes its total cost
// from the item snapshots.
func NewPurchaseOrder(poNumber string, items []OrderItem, deliveryDate, notes string) *PurchaseOrder {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Cost.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	return &PurchaseOrder{
		PONumber:     poNumber,
		Items:        items,
		TotalCost:    total,
		Status:       OrderStatusPending,
		DeliveryDate: deliveryDate,
		Notes:        notes,
	}
}
