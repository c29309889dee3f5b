package usecase

import (
	"context"

	"github.com/inventory-pro/backend/internal/domain"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	InsertProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
	CountByCategory(ctx context.Context, category string) (int, error)
	ReassignCategory(ctx context.Context, from, to string) (int, error)
}

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]string, error)
	CategoryExists(ctx context.Context, name string) (bool, error)
	InsertCategory(ctx context.Context, name string) error
	DeleteCategory(ctx context.Context, name string) error
}

type OrderRepository interface {
	ListOrders(ctx context.Context) ([]domain.PurchaseOrder, error)
	GetOrder(ctx context.Context, id string) (*domain.PurchaseOrder, error)
	InsertOrder(ctx context.Context, order *domain.PurchaseOrder) error
	UpdateOrder(ctx context.Context, order *domain.PurchaseOrder) error
	DeleteOrder(ctx context.Context, id string) error
}

// StateContainer exposes the whole state for persistence and restore.
type StateContainer interface {
	Snapshot(ctx context.Context) (domain.Snapshot, error)
	Replace(ctx context.Context, snap domain.Snapshot) error
}

// SnapshotStore is the local key-value blob the state is persisted to.
// found is false when the store holds no previous snapshot.
type SnapshotStore interface {
	Load(ctx context.Context) (snap domain.Snapshot, found bool, err error)
	Save(ctx context.Context, snap domain.Snapshot) error
}
