package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/inventory-pro/backend/internal/usecase"
	"github.com/inventory-pro/backend/pkg/e"
	"github.com/inventory-pro/backend/pkg/logger"
)

type BackupHandler struct {
	backupUsecase usecase.BackupUC
	logger        logger.Logger
}

func NewBackupHandler(backupUsecase usecase.BackupUC, logger logger.Logger) *BackupHandler {
	return &BackupHandler{backupUsecase: backupUsecase, logger: logger}
}

// exportBackup downloads the full state as a pretty-printed JSON document.
func (b *BackupHandler) exportBackup(w http.ResponseWriter, r *http.Request) {
	doc, err := b.backupUsecase.ExportBackup(r.Context())
	if err != nil {
		b.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		b.logger.Warnf("%s", err.Error())
		WriteError(w, e.ErrInternalServerError)
		return
	}

	filename := fmt.Sprintf("inventory-backup-%d.json", time.Now().UnixMilli())
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// restoreBackup replaces all current data with the uploaded document.
func (b *BackupHandler) restoreBackup(w http.ResponseWriter, r *http.Request) {
	var doc usecase.BackupDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		WriteError(w, e.Wrap(err.Error(), e.ErrInvalidBackup))
		return
	}

	if err := b.backupUsecase.RestoreBackup(r.Context(), &doc); err != nil {
		b.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"Restored": true,
	})
}

// exportCSV downloads the product list as CSV.
func (b *BackupHandler) exportCSV(w http.ResponseWriter, r *http.Request) {
	data, err := b.backupUsecase.ExportCSV(r.Context())
	if err != nil {
		b.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	filename := fmt.Sprintf("inventory_export_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
