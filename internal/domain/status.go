package domain

// StockStatus classifies the stock health of a product.
type StockStatus string

const (
	StatusInStock      StockStatus = "in-stock"
	StatusLowStock     StockStatus = "low-stock"
	StatusNeedsReorder StockStatus = "needs-reorder"
	StatusOutOfStock   StockStatus = "out-of-stock"
)

// AlertPriority orders statuses by urgency, most urgent first.
// Used for the status sort and for alert counters.
func (s StockStatus) AlertPriority() int {
	switch s {
	case StatusOutOfStock:
		return 0
	case StatusLowStock:
		return 1
	case StatusNeedsReorder:
		return 2
	default:
		return 3
	}
}

// reorderCeiling returns ceil(threshold * 1.5) without touching floats.
func reorderCeiling(threshold int) int {
	return (threshold*3 + 1) / 2
}

// Classify derives the stock status of a product.
// Rules are evaluated in order, first match wins.
func Classify(p Product) StockStatus {
	switch {
	case p.Stock == 0:
		return StatusOutOfStock
	case p.Stock <= p.Threshold:
		return StatusLowStock
	case p.Stock <= reorderCeiling(p.Threshold):
		return StatusNeedsReorder
	default:
		return StatusInStock
	}
}

// SuggestedQuantity computes the replenishment quantity for a product:
// enough to reach a buffer of twice the reorder ceiling from the current
// stock, never less than one unit.
func SuggestedQuantity(p Product) int {
	qty := reorderCeiling(p.Threshold)*2 - p.Stock
	if qty < 1 {
		return 1
	}

	return qty
}
