package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/inventory-pro/backend/internal/domain"
	"github.com/inventory-pro/backend/internal/repository/memstate"
)

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

// memStore keeps the last saved snapshot in memory and can be switched to
// fail, to exercise the storage-full path.
type memStore struct {
	saved *domain.Snapshot
	saves int
	fail  bool
}

func (m *memStore) Load(_ context.Context) (domain.Snapshot, bool, error) {
	if m.saved == nil {
		return domain.Snapshot{}, false, nil
	}
	return *m.saved, true, nil
}

func (m *memStore) Save(_ context.Context, snap domain.Snapshot) error {
	if m.fail {
		return fmt.Errorf("disk full")
	}
	m.saved = &snap
	m.saves++
	return nil
}

type recordedNote struct {
	message  string
	severity Severity
}

type recordingNotifier struct {
	notes []recordedNote
}

func (r *recordingNotifier) Notify(message string, severity Severity) {
	r.notes = append(r.notes, recordedNote{message: message, severity: severity})
}

// env bundles a fully wired in-memory stack for usecase tests.
type env struct {
	state      *memstate.State
	store      *memStore
	notifier   *recordingNotifier
	productUC  *ProductUseCase
	categoryUC *CategoryUseCase
	orderUC    *OrderUseCase
	backupUC   *BackupUseCase
}

func newEnv() *env {
	state := memstate.NewState()
	store := &memStore{}
	notifier := &recordingNotifier{}
	snapshots := NewSnapshotWriter(state, store, notifier, nopLogger{})

	return &env{
		state:      state,
		store:      store,
		notifier:   notifier,
		productUC:  NewProductUC(state, state, state, snapshots, nopLogger{}),
		categoryUC: NewCategoryUC(state, state, snapshots, nopLogger{}),
		orderUC:    NewOrderUC(state, state, snapshots, nopLogger{}),
		backupUC:   NewBackupUC(state, snapshots, nopLogger{}),
	}
}

func (e *env) mustAddCategory(name string) {
	if err := e.categoryUC.AddCategory(context.Background(), name); err != nil {
		panic(err)
	}
}

func (e *env) mustAddProduct(req *ProductReq) *domain.Product {
	p, err := e.productUC.AddProduct(context.Background(), req)
	if err != nil {
		panic(err)
	}
	return p
}

func productReq(name, category string, stock, threshold int, cost, selling int64) *ProductReq {
	return &ProductReq{
		Name:         name,
		Category:     category,
		Stock:        stock,
		Threshold:    threshold,
		CostPrice:    decimal.NewFromInt(cost),
		SellingPrice: decimal.NewFromInt(selling),
	}
}
