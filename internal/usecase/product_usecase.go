package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/inventory-pro/backend/internal/domain"
	"github.com/inventory-pro/backend/pkg/e"
	"github.com/inventory-pro/backend/pkg/logger"
)

const defaultThreshold = 10

// ProductUseCase implements the product CRUD operations and the product
// list projection.
type ProductUseCase struct {
	products   ProductRepository
	categories CategoryRepository
	orders     OrderRepository
	snapshots  *SnapshotWriter
	logger     logger.Logger
}

func NewProductUC(
	products ProductRepository,
	categories CategoryRepository,
	orders OrderRepository,
	snapshots *SnapshotWriter,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		products:   products,
		categories: categories,
		orders:     orders,
		snapshots:  snapshots,
		logger:     logger,
	}
}

// ListProducts applies search, category and status filters plus the selected
// sort to the product collection and returns the enriched views.
func (u *ProductUseCase) ListProducts(ctx context.Context, filters Filters) (*ProductListRes, error) {
	const op = "ProductUseCase.ListProducts"

	products, err := u.products.ListProducts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	filtered := sortProducts(filterProducts(products, filters), filters.Sort)

	views := make([]ProductView, 0, len(filtered))
	for _, p := range filtered {
		views = append(views, NewProductView(p))
	}

	return &ProductListRes{
		Products: views,
		Total:    len(products),
		Shown:    len(views),
	}, nil
}

// AddProduct validates the request and appends a new product.
func (u *ProductUseCase) AddProduct(ctx context.Context, req *ProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.AddProduct"

	fields, err := u.normalize(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.NewProduct(
		fields.Name, fields.Category,
		fields.Stock, fields.Threshold,
		fields.CostPrice, fields.SellingPrice,
		fields.Supplier,
	)
	product.ID = uuid.NewString()
	product.CreatedAt = time.Now()

	if err := u.products.InsertProduct(ctx, product); err != nil {
		return nil, e.Wrap(op, err)
	}
	u.snapshots.Persist(ctx)

	u.logger.Infof("product %q added", product.Name)
	return product, nil
}

// UpdateProduct validates the request and replaces the product's fields.
// ID and creation timestamp are immutable.
func (u *ProductUseCase) UpdateProduct(ctx context.Context, id string, req *ProductReq) (*domain.Product, error) {
	const op = "ProductUseCase.UpdateProduct"

	existing, err := u.products.GetProduct(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	fields, err := u.normalize(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	existing.Name = fields.Name
	existing.Category = fields.Category
	existing.Stock = fields.Stock
	existing.Threshold = fields.Threshold
	existing.CostPrice = fields.CostPrice
	existing.SellingPrice = fields.SellingPrice
	existing.Supplier = fields.Supplier

	if err := u.products.UpdateProduct(ctx, existing); err != nil {
		return nil, e.Wrap(op, err)
	}
	u.snapshots.Persist(ctx)

	return existing, nil
}

// RemoveProduct deletes a product unconditionally. Asking the user first is
// the View's responsibility.
func (u *ProductUseCase) RemoveProduct(ctx context.Context, id string) error {
	const op = "ProductUseCase.RemoveProduct"

	if err := u.products.DeleteProduct(ctx, id); err != nil {
		return e.Wrap(op, err)
	}
	u.snapshots.Persist(ctx)

	return nil
}

// AdjustStock applies a stock delta, rejecting any change that would drive
// the stock negative.
func (u *ProductUseCase) AdjustStock(ctx context.Context, id string, delta int) (*domain.Product, error) {
	const op = "ProductUseCase.AdjustStock"

	product, err := u.products.GetProduct(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if product.Stock+delta < 0 {
		return nil, e.Wrap(op, e.ErrNegativeStock)
	}

	product.Stock += delta
	if err := u.products.UpdateProduct(ctx, product); err != nil {
		return nil, e.Wrap(op, err)
	}
	u.snapshots.Persist(ctx)

	return product, nil
}

// DuplicateProduct copies a product under a new id with " (Copy)" appended
// to its name and stock reset to zero.
func (u *ProductUseCase) DuplicateProduct(ctx context.Context, id string) (*domain.Product, error) {
	const op = "ProductUseCase.DuplicateProduct"

	source, err := u.products.GetProduct(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	duplicate := *source
	duplicate.ID = uuid.NewString()
	duplicate.Name = source.Name + " (Copy)"
	duplicate.Stock = 0
	duplicate.CreatedAt = time.Now()

	if err := u.products.InsertProduct(ctx, &duplicate); err != nil {
		return nil, e.Wrap(op, err)
	}
	u.snapshots.Persist(ctx)

	return &duplicate, nil
}

// Stats computes the dashboard counters from the current collections.
func (u *ProductUseCase) Stats(ctx context.Context) (*StatsRes, error) {
	const op = "ProductUseCase.Stats"

	products, err := u.products.ListProducts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	orders, err := u.orders.ListOrders(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	res := &StatsRes{
		TotalProducts:  len(products),
		InventoryValue: decimal.Zero,
	}
	for _, p := range products {
		switch domain.Classify(p) {
		case domain.StatusOutOfStock:
			res.OutOfStock++
		case domain.StatusLowStock:
			res.LowStock++
		case domain.StatusNeedsReorder:
			res.NeedsReorder++
		}
		res.InventoryValue = res.InventoryValue.Add(p.InventoryValue())
	}
	res.AlertCount = res.OutOfStock + res.LowStock + res.NeedsReorder

	for _, po := range orders {
		if po.Status == domain.OrderStatusPending {
			res.PendingOrders++
		}
	}

	return res, nil
}

// LoadSample merges the built-in sample categories and appends the sample
// products under fresh ids.
func (u *ProductUseCase) LoadSample(ctx context.Context) error {
	const op = "ProductUseCase.LoadSample"

	for _, name := range sampleCategories {
		exists, err := u.categories.CategoryExists(ctx, name)
		if err != nil {
			return e.Wrap(op, err)
		}
		if exists {
			continue
		}
		if err := u.categories.InsertCategory(ctx, name); err != nil {
			return e.Wrap(op, err)
		}
	}

	for _, sample := range sampleProducts {
		product := sample
		product.ID = uuid.NewString()
		product.CreatedAt = time.Now()
		if err := u.products.InsertProduct(ctx, &product); err != nil {
			return e.Wrap(op, err)
		}
	}
	u.snapshots.Persist(ctx)

	u.logger.Infof("sample data loaded: %d categories, %d products", len(sampleCategories), len(sampleProducts))
	return nil
}

// normalize validates a product request and applies the form defaults:
// threshold 10 and stock 0 when absent or invalid, negative prices to zero.
func (u *ProductUseCase) normalize(ctx context.Context, req *ProductReq) (*ProductReq, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, e.ErrProductNameRequired
	}
	if req.Category == "" {
		return nil, e.ErrCategoryRequired
	}

	exists, err := u.categories.CategoryExists(ctx, req.Category)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, e.ErrUnknownCategory
	}

	fields := &ProductReq{
		Name:         name,
		Category:     req.Category,
		Stock:        req.Stock,
		Threshold:    req.Threshold,
		CostPrice:    req.CostPrice,
		SellingPrice: req.SellingPrice,
		Supplier:     strings.TrimSpace(req.Supplier),
	}
	if fields.Stock < 0 {
		fields.Stock = 0
	}
	if fields.Threshold < 1 {
		fields.Threshold = defaultThreshold
	}
	if fields.CostPrice.Sign() < 0 {
		fields.CostPrice = decimal.Zero
	}
	if fields.SellingPrice.Sign() < 0 {
		fields.SellingPrice = decimal.Zero
	}

	// Negative margin is a caller-level decision, not a hard rule.
	if fields.SellingPrice.Sign() > 0 &&
		fields.SellingPrice.LessThan(fields.CostPrice) &&
		!req.ConfirmNegativeMargin {
		return nil, e.ErrNegativeMargin
	}

	return fields, nil
}
