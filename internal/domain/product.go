package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product describes a catalogue item
type Product struct {
	ID           string
	Name         string
	Category     string // category name, validated against the category set at write time
	Stock        int
	Threshold    int // minimum desired stock
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	Supplier     string
	CreatedAt    time.Time
}

func NewProduct(name, category string, stock, threshold int, costPrice, sellingPrice decimal.Decimal, supplier string) *Product {
	return &Product{
		Name:         name,
		Category:     category,
		Stock:        stock,
		Threshold:    threshold,
		CostPrice:    costPrice,
		SellingPrice: sellingPrice,
		Supplier:     supplier,
	}
}

// Margin returns (sellingPrice-costPrice)/costPrice. ok is false when the
// cost price is not positive and no margin can be computed.
func (p Product) Margin() (margin decimal.Decimal, ok bool) {
	if p.CostPrice.Sign() <= 0 {
		return decimal.Zero, false
	}

	return p.SellingPrice.Sub(p.CostPrice).Div(p.CostPrice), true
}

// InventoryValue is the on-hand value of the product at cost price.
func (p Product) InventoryValue() decimal.Decimal {
	return p.CostPrice.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// RetailValue is the on-hand value of the product at selling price.
func (p Product) RetailValue() decimal.Decimal {
	return p.SellingPrice.Mul(decimal.NewFromInt(int64(p.Stock)))
}
