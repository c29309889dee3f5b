package usecase

import (
	"context"

	"github.com/inventory-pro/backend/pkg/logger"
)

// SnapshotWriter persists the full state after each successful mutation.
// A failed write is surfaced through the Notifier and does not roll back the
// in-memory state: memory stays authoritative for the session.
type SnapshotWriter struct {
	state    StateContainer
	store    SnapshotStore
	notifier Notifier
	logger   logger.Logger
}

func NewSnapshotWriter(state StateContainer, store SnapshotStore, notifier Notifier, logger logger.Logger) *SnapshotWriter {
	return &SnapshotWriter{
		state:    state,
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Persist writes the current snapshot to the store.
func (w *SnapshotWriter) Persist(ctx context.Context) {
	snap, err := w.state.Snapshot(ctx)
	if err != nil {
		w.logger.Errorf(err, "failed to take state snapshot")
		w.notifier.Notify("Storage full – data not saved", SeverityDanger)
		return
	}

	if err := w.store.Save(ctx, snap); err != nil {
		w.logger.Warnf("failed to persist snapshot: %v", err)
		w.notifier.Notify("Storage full – data not saved", SeverityDanger)
	}
}
