package usecase

import (
	"context"

	"github.com/inventory-pro/backend/internal/domain"
)

type ProductUC interface {
	ListProducts(ctx context.Context, filters Filters) (*ProductListRes, error)
	AddProduct(ctx context.Context, req *ProductReq) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, req *ProductReq) (*domain.Product, error)
	RemoveProduct(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, delta int) (*domain.Product, error)
	DuplicateProduct(ctx context.Context, id string) (*domain.Product, error)
	Stats(ctx context.Context) (*StatsRes, error)
	LoadSample(ctx context.Context) error
}

type CategoryUC interface {
	ListCategories(ctx context.Context) ([]string, error)
	AddCategory(ctx context.Context, name string) error
	RemoveCategory(ctx context.Context, name string) error
	ReassignAndRemove(ctx context.Context, name, target string) error
}

type OrderUC interface {
	ListOrders(ctx context.Context) ([]domain.PurchaseOrder, error)
	CreateOrder(ctx context.Context, req *CreateOrderReq) (*domain.PurchaseOrder, error)
	QuickCreateOrder(ctx context.Context, productID string) (*domain.PurchaseOrder, error)
	ReceiveOrder(ctx context.Context, id string) (*domain.PurchaseOrder, error)
	RemoveOrder(ctx context.Context, id string) error
}

type BackupUC interface {
	ExportBackup(ctx context.Context) (*BackupDocument, error)
	RestoreBackup(ctx context.Context, doc *BackupDocument) error
	ExportCSV(ctx context.Context) ([]byte, error)
}
