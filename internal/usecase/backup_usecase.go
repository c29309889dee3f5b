package usecase

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/inventory-pro/backend/internal/domain"
	"github.com/inventory-pro/backend/pkg/e"
	"github.com/inventory-pro/backend/pkg/logger"
)

// csvHeader is the fixed column set of the product export.
const csvHeader = "Name,Category,Stock,Threshold,Cost Price,Selling Price,Supplier,Status"

// BackupUseCase exports and restores the full application state.
type BackupUseCase struct {
	state     StateContainer
	snapshots *SnapshotWriter
	logger    logger.Logger
}

func NewBackupUC(state StateContainer, snapshots *SnapshotWriter, logger logger.Logger) *BackupUseCase {
	return &BackupUseCase{
		state:     state,
		snapshots: snapshots,
		logger:    logger,
	}
}

// ExportBackup returns the full state as a backup document.
func (u *BackupUseCase) ExportBackup(ctx context.Context) (*BackupDocument, error) {
	const op = "BackupUseCase.ExportBackup"

	snap, err := u.state.Snapshot(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewBackupDocument(snap, time.Now()), nil
}

// RestoreBackup replaces all three collections with the document contents
// and persists the new state. There is no merge: restore is total.
func (u *BackupUseCase) RestoreBackup(ctx context.Context, doc *BackupDocument) error {
	const op = "BackupUseCase.RestoreBackup"

	if doc == nil {
		return e.Wrap(op, e.ErrInvalidBackup)
	}

	if err := u.state.Replace(ctx, doc.ToSnapshot()); err != nil {
		return e.Wrap(op, err)
	}
	u.snapshots.Persist(ctx)

	u.logger.Infof("backup restored: %d products, %d categories, %d orders",
		len(doc.Products), len(doc.Categories), len(doc.PurchaseOrders))
	return nil
}

// ExportCSV renders the product collection as CSV. String fields are always
// double-quoted with embedded quotes doubled; Status is the derived
// classification.
func (u *BackupUseCase) ExportCSV(ctx context.Context) ([]byte, error) {
	const op = "BackupUseCase.ExportCSV"

	snap, err := u.state.Snapshot(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	lines := make([]string, 0, len(snap.Products)+1)
	lines = append(lines, csvHeader)
	for _, p := range snap.Products {
		lines = append(lines, strings.Join([]string{
			quoteCSV(p.Name),
			quoteCSV(p.Category),
			strconv.Itoa(p.Stock),
			strconv.Itoa(p.Threshold),
			p.CostPrice.String(),
			p.SellingPrice.String(),
			quoteCSV(p.Supplier),
			string(domain.Classify(p)),
		}, ","))
	}

	return []byte(strings.Join(lines, "\n")), nil
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
