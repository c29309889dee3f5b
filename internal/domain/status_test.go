package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		threshold int
		want      StockStatus
	}{
		{"zero stock is out of stock", 0, 10, StatusOutOfStock},
		{"zero stock wins over zero threshold", 0, 0, StatusOutOfStock},
		{"below threshold is low stock", 4, 10, StatusLowStock},
		{"at threshold is low stock", 10, 10, StatusLowStock},
		{"just above threshold needs reorder", 11, 10, StatusNeedsReorder},
		{"at reorder ceiling needs reorder", 15, 10, StatusNeedsReorder},
		{"above reorder ceiling is in stock", 16, 10, StatusInStock},
		{"odd threshold ceiling rounds up", 8, 5, StatusNeedsReorder},
		{"odd threshold above ceiling", 9, 5, StatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(Product{Stock: tt.stock, Threshold: tt.threshold})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggestedQuantity(t *testing.T) {
	tests := []struct {
		name      string
		stock     int
		threshold int
		want      int
	}{
		{"refills to twice the ceiling", 5, 10, 25},
		{"empty stock gets the full buffer", 0, 20, 60},
		{"overstocked still suggests one unit", 100, 10, 1},
		{"odd threshold uses rounded ceiling", 3, 5, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestedQuantity(Product{Stock: tt.stock, Threshold: tt.threshold})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAlertPriority(t *testing.T) {
	assert.Equal(t, 0, StatusOutOfStock.AlertPriority())
	assert.Equal(t, 1, StatusLowStock.AlertPriority())
	assert.Equal(t, 2, StatusNeedsReorder.AlertPriority())
	assert.Equal(t, 3, StatusInStock.AlertPriority())
}
