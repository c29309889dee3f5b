package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMargin(t *testing.T) {
	p := Product{
		CostPrice:    decimal.NewFromInt(250),
		SellingPrice: decimal.NewFromInt(450),
	}

	margin, ok := p.Margin()
	require.True(t, ok)
	assert.True(t, decimal.NewFromFloat(0.8).Equal(margin))
}

func TestMarginWithoutCostPrice(t *testing.T) {
	p := Product{
		CostPrice:    decimal.Zero,
		SellingPrice: decimal.NewFromInt(100),
	}

	_, ok := p.Margin()
	assert.False(t, ok)
}

func TestInventoryAndRetailValue(t *testing.T) {
	p := Product{
		Stock:        4,
		CostPrice:    decimal.NewFromInt(250),
		SellingPrice: decimal.NewFromInt(450),
	}

	assert.True(t, decimal.NewFromInt(1000).Equal(p.InventoryValue()))
	assert.True(t, decimal.NewFromInt(1800).Equal(p.RetailValue()))
}

func TestNewPurchaseOrderTotalsItems(t *testing.T) {
	po := NewPurchaseOrder("PO-000001", []OrderItem{
		{ProductID: "a", Quantity: 25, Cost: decimal.NewFromInt(250)},
		{ProductID: "b", Quantity: 10, Cost: decimal.NewFromInt(80)},
	}, "2026-09-15", "restock")

	assert.Equal(t, OrderStatusPending, po.Status)
	assert.True(t, decimal.NewFromInt(7050).Equal(po.TotalCost))
	assert.Nil(t, po.ReceivedAt)
}
