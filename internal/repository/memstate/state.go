package memstate

import (
	"context"
	"sync"

	"github.com/jimlawless/whereami"

	"github.com/inventory-pro/backend/internal/domain"
	"github.com/inventory-pro/backend/pkg/e"
)

// State is the single owner of the three domain collections. Operations
// mutate it in place; the usecase layer persists a full snapshot after each
// successful mutation. The mutex serializes access for the one logical
// session the application is designed for.
type State struct {
	mu             sync.RWMutex
	products       []domain.Product
	categories     []string
	purchaseOrders []domain.PurchaseOrder
}

func NewState() *State {
	return &State{}
}

// NewStateFromSnapshot seeds the container from a previously persisted
// snapshot.
func NewStateFromSnapshot(snap domain.Snapshot) *State {
	s := NewState()
	s.replace(snap)
	return s
}

// PRODUCTS

func (s *State) ListProducts(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.Product(nil), s.products...), nil
}

func (s *State) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}

	return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
}

func (s *State) InsertProduct(_ context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, *product)
	return nil
}

func (s *State) UpdateProduct(_ context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = *product
			return nil
		}
	}

	return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
}

func (s *State) DeleteProduct(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}

	return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
}

func (s *State) CountByCategory(_ context.Context, category string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, p := range s.products {
		if p.Category == category {
			count++
		}
	}

	return count, nil
}

func (s *State) ReassignCategory(_ context.Context, from, to string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	moved := 0
	for i := range s.products {
		if s.products[i].Category == from {
			s.products[i].Category = to
			moved++
		}
	}

	return moved, nil
}

// CATEGORIES

func (s *State) ListCategories(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.categories...), nil
}

func (s *State) CategoryExists(_ context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.categories {
		if c == name {
			return true, nil
		}
	}

	return false, nil
}

func (s *State) InsertCategory(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.categories = append(s.categories, name)
	return nil
}

func (s *State) DeleteCategory(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.categories {
		if s.categories[i] == name {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}

	return e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
}

// PURCHASE ORDERS

func (s *State) ListOrders(_ context.Context) ([]domain.PurchaseOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]domain.PurchaseOrder, 0, len(s.purchaseOrders))
	for _, po := range s.purchaseOrders {
		orders = append(orders, copyOrder(po))
	}

	return orders, nil
}

func (s *State) GetOrder(_ context.Context, id string) (*domain.PurchaseOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, po := range s.purchaseOrders {
		if po.ID == id {
			found := copyOrder(po)
			return &found, nil
		}
	}

	return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
}

func (s *State) InsertOrder(_ context.Context, order *domain.PurchaseOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purchaseOrders = append(s.purchaseOrders, copyOrder(*order))
	return nil
}

func (s *State) UpdateOrder(_ context.Context, order *domain.PurchaseOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.purchaseOrders {
		if s.purchaseOrders[i].ID == order.ID {
			s.purchaseOrders[i] = copyOrder(*order)
			return nil
		}
	}

	return e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
}

func (s *State) DeleteOrder(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.purchaseOrders {
		if s.purchaseOrders[i].ID == id {
			s.purchaseOrders = append(s.purchaseOrders[:i], s.purchaseOrders[i+1:]...)
			return nil
		}
	}

	return e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
}

// SNAPSHOT

// Snapshot copies the whole state for persistence or export.
func (s *State) Snapshot(_ context.Context) (domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orders := make([]domain.PurchaseOrder, 0, len(s.purchaseOrders))
	for _, po := range s.purchaseOrders {
		orders = append(orders, copyOrder(po))
	}

	return domain.Snapshot{
		Products:       append([]domain.Product(nil), s.products...),
		Categories:     append([]string(nil), s.categories...),
		PurchaseOrders: orders,
	}, nil
}

// Replace swaps in a whole new state, used by backup restore.
func (s *State) Replace(_ context.Context, snap domain.Snapshot) error {
	s.replace(snap)
	return nil
}

func (s *State) replace(snap domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append([]domain.Product(nil), snap.Products...)
	s.categories = append([]string(nil), snap.Categories...)
	s.purchaseOrders = make([]domain.PurchaseOrder, 0, len(snap.PurchaseOrders))
	for _, po := range snap.PurchaseOrders {
		s.purchaseOrders = append(s.purchaseOrders, copyOrder(po))
	}
}

// copyOrder deep-copies an order so callers cannot alias the items slice.
func copyOrder(po domain.PurchaseOrder) domain.PurchaseOrder {
	copied := po
	copied.Items = append([]domain.OrderItem(nil), po.Items...)
	if po.ReceivedAt != nil {
		t := *po.ReceivedAt
		copied.ReceivedAt = &t
	}
	return copied
}
