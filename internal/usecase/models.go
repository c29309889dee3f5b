package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/inventory-pro/backend/internal/domain"
)

// PRODUCT USECASE

// ProductReq carries the fields of the add/edit product form.
type ProductReq struct {
	Name         string
	Category     string
	Stock        int
	Threshold    int
	CostPrice    decimal.Decimal
	SellingPrice decimal.Decimal
	Supplier     string
	// ConfirmNegativeMargin acknowledges a selling price below cost price.
	// Without it such a request fails with e.ErrNegativeMargin so the caller
	// can ask the user before retrying.
	ConfirmNegativeMargin bool
}

// SortKey selects the comparator for the product list.
type SortKey string

const (
	SortNameAsc    SortKey = "name-asc"
	SortNameDesc   SortKey = "name-desc"
	SortStockAsc   SortKey = "stock-asc"
	SortStockDesc  SortKey = "stock-desc"
	SortValueDesc  SortKey = "value-desc"
	SortMarginDesc SortKey = "margin-desc"
	SortStatus     SortKey = "status"
)

// Filters is the product list query: all provided predicates are ANDed.
type Filters struct {
	Search   string
	Category string
	Status   string
	Sort     SortKey
}

// ProductView is a product enriched with its derived fields for rendering.
type ProductView struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Category          string             `json:"category"`
	Stock             int                `json:"stock"`
	Threshold         int                `json:"threshold"`
	CostPrice         decimal.Decimal    `json:"costPrice"`
	SellingPrice      decimal.Decimal    `json:"sellingPrice"`
	Supplier          string             `json:"supplier,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	Status            domain.StockStatus `json:"status"`
	SuggestedQuantity int                `json:"suggestedQuantity"`
}

// ProductListRes is the filtered, sorted product list plus its counters.
type ProductListRes struct {
	Products []ProductView `json:"products"`
	Total    int           `json:"total"`
	Shown    int           `json:"shown"`
}

// StatsRes are the dashboard counters.
type StatsRes struct {
	TotalProducts  int             `json:"totalProducts"`
	OutOfStock     int             `json:"outOfStock"`
	LowStock       int             `json:"lowStock"`
	NeedsReorder   int             `json:"needsReorder"`
	InventoryValue decimal.Decimal `json:"inventoryValue"`
	AlertCount     int             `json:"alertCount"`
	PendingOrders  int             `json:"pendingOrders"`
}

// ORDER USECASE

// CreateOrderReq is a purchase-order creation request.
type CreateOrderReq struct {
	ProductIDs   []string
	DeliveryDate string
	Notes        string
}

// OrderItemRecord is the wire form of a purchase-order line.
type OrderItemRecord struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Cost        decimal.Decimal `json:"cost"`
}

// OrderRecord is the wire form of a purchase order.
type OrderRecord struct {
	ID           string            `json:"id"`
	PONumber     string            `json:"poNumber"`
	Items        []OrderItemRecord `json:"items"`
	TotalCost    decimal.Decimal   `json:"totalCost"`
	Status       string            `json:"status"`
	DeliveryDate string            `json:"deliveryDate,omitempty"`
	Notes        string            `json:"notes,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	ReceivedAt   *time.Time        `json:"receivedAt,omitempty"`
}

// BACKUP USECASE

// ProductRecord is the wire form of a product for backup documents.
type ProductRecord struct {
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

// BackupDocument is the full-state export. Restoring it replaces all three
// collections; absent fields default to empty collections.
type BackupDocument struct {
	Products       []ProductRecord `json:"products"`
	Categories     []string        `json:"categories"`
	PurchaseOrders []OrderRecord   `json:"purchaseOrders"`
	ExportedAt     time.Time       `json:"exportedAt"`
}

// MAPPERS

func NewProductView(p domain.Product) ProductView {
	return ProductView{
		ID:                p.ID,
		Name:              p.Name,
		Category:          p.Category,
		Stock:             p.Stock,
		Threshold:         p.Threshold,
		CostPrice:         p.CostPrice,
		SellingPrice:      p.SellingPrice,
		Supplier:          p.Supplier,
		CreatedAt:         p.CreatedAt,
		Status:            domain.Classify(p),
		SuggestedQuantity: domain.SuggestedQuantity(p),
	}
}

func NewProductRecord(p domain.Product) ProductRecord {
	return ProductRecord{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Stock:        p.Stock,
		Threshold:    p.Threshold,
		CostPrice:    p.CostPrice,
		SellingPrice: p.SellingPrice,
		Supplier:     p.Supplier,
		CreatedAt:    p.CreatedAt,
	}
}

func (r ProductRecord) ToEntity() domain.Product {
	return domain.Product{
		ID:           r.ID,
		Name:         r.Name,
		Category:     r.Category,
		Stock:        r.Stock,
		Threshold:    r.Threshold,
		CostPrice:    r.CostPrice,
		SellingPrice: r.SellingPrice,
		Supplier:     r.Supplier,
		CreatedAt:    r.CreatedAt,
	}
}

func NewOrderRecord(po domain.PurchaseOrder) OrderRecord {
	items := make([]OrderItemRecord, 0, len(po.Items))
	for _, it := range po.Items {
		items = append(items, OrderItemRecord{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Cost:        it.Cost,
		})
	}

	return OrderRecord{
		ID:           po.ID,
		PONumber:     po.PONumber,
		Items:        items,
		TotalCost:    po.TotalCost,
		Status:       string(po.Status),
		DeliveryDate: po.DeliveryDate,
		Notes:        po.Notes,
		CreatedAt:    po.CreatedAt,
		ReceivedAt:   po.ReceivedAt,
	}
}

func (r OrderRecord) ToEntity() domain.PurchaseOrder {
	items := make([]domain.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, domain.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Cost:        it.Cost,
		})
	}

	return domain.PurchaseOrder{
		ID:           r.ID,
		PONumber:     r.PONumber,
		Items:        items,
		TotalCost:    r.TotalCost,
		Status:       domain.OrderStatus(r.Status),
		DeliveryDate: r.DeliveryDate,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
		ReceivedAt:   r.ReceivedAt,
	}
}

func NewBackupDocument(snap domain.Snapshot, exportedAt time.Time) *BackupDocument {
	products := make([]ProductRecord, 0, len(snap.Products))
	for _, p := range snap.Products {
		products = append(products, NewProductRecord(p))
	}

	orders := make([]OrderRecord, 0, len(snap.PurchaseOrders))
	for _, po := range snap.PurchaseOrders {
		orders = append(orders, NewOrderRecord(po))
	}

	return &BackupDocument{
		Products:       products,
		Categories:     append([]string(nil), snap.Categories...),
		PurchaseOrders: orders,
		ExportedAt:     exportedAt,
	}
}

// ToSnapshot converts the document back to domain state, defaulting any
// absent collection to an empty one.
func (d *BackupDocument) ToSnapshot() domain.Snapshot {
	snap := domain.Snapshot{
		Products:       make([]domain.Product, 0, len(d.Products)),
		Categories:     make([]string, 0, len(d.Categories)),
		PurchaseOrders: make([]domain.PurchaseOrder, 0, len(d.PurchaseOrders)),
	}

	for _, r := range d.Products {
		snap.Products = append(snap.Products, r.ToEntity())
	}
	snap.Categories = append(snap.Categories, d.Categories...)
	for _, r := range d.PurchaseOrders {
		snap.PurchaseOrders = append(snap.PurchaseOrders, r.ToEntity())
	}

	return snap
}
