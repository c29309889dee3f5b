package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/inventory-pro/backend/internal/usecase"
	"github.com/inventory-pro/backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(prUC usecase.ProductUC, catUC usecase.CategoryUC, ordUC usecase.OrderUC, bakUC usecase.BackupUC) {
	r.router.Route("/api/v1", func(v1 chi.Router) {
		prHandler := NewProductHandler(prUC, r.logger)
		catHandler := NewCategoryHandler(catUC, r.logger)
		ordHandler := NewOrderHandler(ordUC, r.logger)
		bakHandler := NewBackupHandler(bakUC, r.logger)

		registerProductRoutes(v1, prHandler, ordHandler)
		registerCategoryRoutes(v1, catHandler)
		registerOrderRoutes(v1, ordHandler)
		registerBackupRoutes(v1, bakHandler)

		v1.Get("/stats", prHandler.stats)
		v1.Post("/sample", prHandler.loadSample)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler, ordHandler *OrderHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Post("/", prHandler.addProduct)
		pr.Put("/{id}", prHandler.updateProduct)
		pr.Delete("/{id}", prHandler.deleteProduct)
		pr.Post("/{id}/duplicate", prHandler.duplicateProduct)
		pr.Post("/{id}/stock", prHandler.adjustStock)
		pr.Post("/{id}/reorder", ordHandler.quickReorder)
	})
}

func registerCategoryRoutes(router chi.Router, catHandler *CategoryHandler) {
	router.Route("/categories", func(cat chi.Router) {
		cat.Get("/", catHandler.listCategories)
		cat.Post("/", catHandler.addCategory)
		cat.Delete("/{name}", catHandler.deleteCategory)
		cat.Post("/{name}/reassign", catHandler.reassignCategory)
	})
}

func registerOrderRoutes(router chi.Router, ordHandler *OrderHandler) {
	router.Route("/orders", func(ord chi.Router) {
		ord.Get("/", ordHandler.listOrders)
		ord.Post("/", ordHandler.createOrder)
		ord.Post("/{id}/receive", ordHandler.receiveOrder)
		ord.Delete("/{id}", ordHandler.deleteOrder)
	})
}

func registerBackupRoutes(router chi.Router, bakHandler *BackupHandler) {
	router.Get("/export/csv", bakHandler.exportCSV)
	router.Get("/backup", bakHandler.exportBackup)
	router.Post("/backup/restore", bakHandler.restoreBackup)
}
