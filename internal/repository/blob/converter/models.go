package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductModel is the stored JSON form of a product.
type ProductModel struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Stock        int             `json:"stock"`
	Threshold    int             `json:"threshold"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Supplier     string          `json:"supplier,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// OrderItemModel is the stored JSON form of a purchase-order line.
type OrderItemModel struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Cost        decimal.Decimal `json:"cost"`
}

// OrderModel is the stored JSON form of a purchase order.
type OrderModel struct {
	ID           string           `json:"id"`
	PONumber     string           `json:"poNumber"`
	Items        []OrderItemModel `json:"items"`
	TotalCost    decimal.Decimal  `json:"totalCost"`
	Status       string           `json:"status"`
	DeliveryDate string           `json:"deliveryDate,omitempty"`
	Notes        string           `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	ReceivedAt   *time.Time       `json:"receivedAt,omitempty"`
}
