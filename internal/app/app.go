package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"

	config "github.com/inventory-pro/backend/internal/cfg"
	v1Http "github.com/inventory-pro/backend/internal/delivery/v1/http"
	"github.com/inventory-pro/backend/internal/infrastructure/notify"
	"github.com/inventory-pro/backend/internal/repository/blob"
	"github.com/inventory-pro/backend/internal/repository/memstate"
	"github.com/inventory-pro/backend/internal/usecase"
	"github.com/inventory-pro/backend/pkg/closer"
	"github.com/inventory-pro/backend/pkg/e"
	"github.com/inventory-pro/backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	cfg     *config.Config
	logger  logger.Logger
	httpSrv *v1Http.Server
	closer  *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(shutdownTimeout)

	store, err := blob.Open(cfg.Store)
	if err != nil {
		log.Errorf(err, "failed to open store at %s", cfg.Store.Path)
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.Add(func(_ context.Context) error {
		return store.Close()
	})

	snap, found, err := store.Load(context.Background())
	if err != nil {
		log.Errorf(err, "failed to load persisted state")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var state *memstate.State
	if found {
		state = memstate.NewStateFromSnapshot(snap)
		log.Infof("loaded persisted state from %s", cfg.Store.Path)
	} else {
		state = memstate.NewState()
		log.Infof("no persisted state found, starting empty")
	}

	notifier := notify.NewLogNotifier(log)
	snapshots := usecase.NewSnapshotWriter(state, store, notifier, log)

	productUC := usecase.NewProductUC(state, state, state, snapshots, log)
	categoryUC := usecase.NewCategoryUC(state, state, snapshots, log)
	orderUC := usecase.NewOrderUC(state, state, snapshots, log)
	backupUC := usecase.NewBackupUC(state, snapshots, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(productUC, categoryUC, orderUC, backupUC)

	return &App{
		cfg:     cfg,
		logger:  log,
		httpSrv: v1Http.NewServer(r, cfg.Http),
		closer:  cl,
	}, nil
}

func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := a.httpSrv.Stop(shutdownCtx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "resource cleanup error")
	}

	a.logger.Infof("Application shutdown complete")

	return appErr
}
