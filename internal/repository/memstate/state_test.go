package memstate

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventory-pro/backend/internal/domain"
	"github.com/inventory-pro/backend/pkg/e"
)

func TestProductCRUD(t *testing.T) {
	s := NewState()
	ctx := context.Background()

	p := domain.Product{ID: "1", Name: "Mouse", Category: "Electronics", Stock: 5}
	require.NoError(t, s.InsertProduct(ctx, &p))

	got, err := s.GetProduct(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Mouse", got.Name)

	got.Stock = 7
	require.NoError(t, s.UpdateProduct(ctx, got))

	again, err := s.GetProduct(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 7, again.Stock)

	require.NoError(t, s.DeleteProduct(ctx, "1"))

	_, err = s.GetProduct(ctx, "1")
	assert.ErrorIs(t, err, e.ErrProductNotFound)
	assert.ErrorIs(t, s.DeleteProduct(ctx, "1"), e.ErrProductNotFound)
	assert.ErrorIs(t, s.UpdateProduct(ctx, &p), e.ErrProductNotFound)
}

func TestGetProductReturnsCopy(t *testing.T) {
	s := NewState()
	ctx := context.Background()

	require.NoError(t, s.InsertProduct(ctx, &domain.Product{ID: "1", Name: "Mouse"}))

	got, err := s.GetProduct(ctx, "1")
	require.NoError(t, err)
	got.Name = "Mutated"

	fresh, err := s.GetProduct(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Mouse", fresh.Name)
}

func TestCategoryOperations(t *testing.T) {
	s := NewState()
	ctx := context.Background()

	require.NoError(t, s.InsertCategory(ctx, "Electronics"))
	require.NoError(t, s.InsertCategory(ctx, "Accessories"))

	exists, err := s.CategoryExists(ctx, "Electronics")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.CategoryExists(ctx, "electronics") // case-sensitive
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.DeleteCategory(ctx, "Electronics"))
	assert.ErrorIs(t, s.DeleteCategory(ctx, "Electronics"), e.ErrCategoryNotFound)

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Accessories"}, categories)
}

func TestCountAndReassignCategory(t *testing.T) {
	s := NewState()
	ctx := context.Background()

	require.NoError(t, s.InsertProduct(ctx, &domain.Product{ID: "1", Category: "A"}))
	require.NoError(t, s.InsertProduct(ctx, &domain.Product{ID: "2", Category: "A"}))
	require.NoError(t, s.InsertProduct(ctx, &domain.Product{ID: "3", Category: "B"}))

	count, err := s.CountByCategory(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	moved, err := s.ReassignCategory(ctx, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2, moved)

	count, err = s.CountByCategory(ctx, "B")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestOrderCopySemantics(t *testing.T) {
	s := NewState()
	ctx := context.Background()

	received := time.Now()
	order := domain.PurchaseOrder{
		ID:         "o1",
		PONumber:   "PO-000001",
		Items:      []domain.OrderItem{{ProductID: "1", Quantity: 5, Cost: decimal.NewFromInt(100)}},
		Status:     domain.OrderStatusReceived,
		ReceivedAt: &received,
	}
	require.NoError(t, s.InsertOrder(ctx, &order))

	got, err := s.GetOrder(ctx, "o1")
	require.NoError(t, err)

	// mutating the returned order must not leak into the state
	got.Items[0].Quantity = 999
	*got.ReceivedAt = received.Add(time.Hour)

	fresh, err := s.GetOrder(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 5, fresh.Items[0].Quantity)
	assert.True(t, fresh.ReceivedAt.Equal(received))

	_, err = s.GetOrder(ctx, "ghost")
	assert.ErrorIs(t, err, e.ErrOrderNotFound)
}

func TestSnapshotAndReplace(t *testing.T) {
	s := NewState()
	ctx := context.Background()

	require.NoError(t, s.InsertCategory(ctx, "Electronics"))
	require.NoError(t, s.InsertProduct(ctx, &domain.Product{ID: "1", Name: "Mouse", Category: "Electronics"}))
	require.NoError(t, s.InsertOrder(ctx, &domain.PurchaseOrder{ID: "o1", Status: domain.OrderStatusPending}))

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, snap.Products, 1)
	assert.Len(t, snap.Categories, 1)
	assert.Len(t, snap.PurchaseOrders, 1)

	other := NewStateFromSnapshot(snap)
	otherSnap, err := other.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap.Products, otherSnap.Products)
	assert.Equal(t, snap.Categories, otherSnap.Categories)

	require.NoError(t, s.Replace(ctx, domain.Snapshot{Categories: []string{"Fresh"}}))

	replaced, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, replaced.Products)
	assert.Equal(t, []string{"Fresh"}, replaced.Categories)
	assert.Empty(t, replaced.PurchaseOrders)
}
