package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventory-pro/backend/pkg/e"
)

func TestExportCSV(t *testing.T) {
	en := newEnv()
	en.mustAddCategory("Electronics")
	ctx := context.Background()

	req := productReq(`Mouse "Pro"`, "Electronics", 5, 10, 250, 450)
	req.Supplier = "Tech Supplies"
	en.mustAddProduct(req)

	data, err := en.backupUC.ExportCSV(ctx)
	require.NoError(t, err)

	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Name,Category,Stock,Threshold,Cost Price,Selling Price,Supplier,Status", lines[0])
	assert.Equal(t, `"Mouse ""Pro""","Electronics",5,10,250,450,"Tech Supplies",low-stock`, lines[1])

	// no trailing newline
	assert.False(t, strings.HasSuffix(string(data), "\n"))
}

func TestExportCSVEmpty(t *testing.T) {
	en := newEnv()

	data, err := en.backupUC.ExportCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Name,Category,Stock,Threshold,Cost Price,Selling Price,Supplier,Status", string(data))
}

func TestBackupRoundTrip(t *testing.T) {
	source := newEnv()
	source.mustAddCategory("Electronics")
	ctx := context.Background()

	p := source.mustAddProduct(productReq("Mouse", "Electronics", 5, 10, 250, 450))
	order, err := source.orderUC.QuickCreateOrder(ctx, p.ID)
	require.NoError(t, err)

	doc, err := source.backupUC.ExportBackup(ctx)
	require.NoError(t, err)
	assert.False(t, doc.ExportedAt.IsZero())

	target := newEnv()
	require.NoError(t, target.backupUC.RestoreBackup(ctx, doc))

	categories, err := target.categoryUC.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Electronics"}, categories)

	list, err := target.productUC.ListProducts(ctx, Filters{Sort: SortNameAsc})
	require.NoError(t, err)
	require.Len(t, list.Products, 1)
	assert.Equal(t, p.ID, list.Products[0].ID)

	orders, err := target.orderUC.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
	assert.True(t, order.TotalCost.Equal(orders[0].TotalCost))

	// restore persisted the new state
	assert.NotNil(t, target.store.saved)
}

func TestRestoreBackupReplacesEverything(t *testing.T) {
	en := newEnv()
	en.mustAddCategory("Old Category")
	en.mustAddProduct(productReq("Old Product", "Old Category", 5, 10, 1, 2))
	ctx := context.Background()

	require.NoError(t, en.backupUC.RestoreBackup(ctx, &BackupDocument{Categories: []string{"Fresh"}}))

	categories, err := en.categoryUC.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fresh"}, categories)

	list, err := en.productUC.ListProducts(ctx, Filters{Sort: SortNameAsc})
	require.NoError(t, err)
	assert.Zero(t, list.Total)

	orders, err := en.orderUC.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestRestoreBackupNilDocument(t *testing.T) {
	en := newEnv()
	assert.ErrorIs(t, en.backupUC.RestoreBackup(context.Background(), nil), e.ErrInvalidBackup)
}
