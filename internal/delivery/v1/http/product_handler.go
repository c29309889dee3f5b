package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/inventory-pro/backend/internal/usecase"
	"github.com/inventory-pro/backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// productPayload mirrors the add/edit product form.
type productPayload struct {
	Name                  string          `json:"name"`
	Category              string          `json:"category"`
	Stock                 int             `json:"stock"`
	Threshold             int             `json:"threshold"`
	CostPrice             decimal.Decimal `json:"costPrice"`
	SellingPrice          decimal.Decimal `json:"sellingPrice"`
	Supplier              string          `json:"supplier"`
	ConfirmNegativeMargin bool            `json:"confirmNegativeMargin"`
}

type stockPayload struct {
	Delta int `json:"delta"`
}

func (p *productPayload) toReq() *usecase.ProductReq {
	return &usecase.ProductReq{
		Name:                  p.Name,
		Category:              p.Category,
		Stock:                 p.Stock,
		Threshold:             p.Threshold,
		CostPrice:             p.CostPrice,
		SellingPrice:          p.SellingPrice,
		Supplier:              p.Supplier,
		ConfirmNegativeMargin: p.ConfirmNegativeMargin,
	}
}

func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := usecase.Filters{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		Status:   q.Get("status"),
		Sort:     usecase.SortKey(q.Get("sort")),
	}
	if filters.Sort == "" {
		filters.Sort = usecase.SortNameAsc
	}

	res, err := p.productUsecase.ListProducts(r.Context(), filters)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

func (p *ProductHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	var payload productPayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.AddProduct(r.Context(), payload.toReq())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, usecase.NewProductView(*product))
}

func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var payload productPayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.UpdateProduct(r.Context(), chi.URLParam(r, "id"), payload.toReq())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, usecase.NewProductView(*product))
}

func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := p.productUsecase.RemoveProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"Deleted": true,
	})
}

func (p *ProductHandler) adjustStock(w http.ResponseWriter, r *http.Request) {
	var payload stockPayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	product, err := p.productUsecase.AdjustStock(r.Context(), chi.URLParam(r, "id"), payload.Delta)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, usecase.NewProductView(*product))
}

func (p *ProductHandler) duplicateProduct(w http.ResponseWriter, r *http.Request) {
	product, err := p.productUsecase.DuplicateProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, usecase.NewProductView(*product))
}

func (p *ProductHandler) stats(w http.ResponseWriter, r *http.Request) {
	res, err := p.productUsecase.Stats(r.Context())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, res)
}

func (p *ProductHandler) loadSample(w http.ResponseWriter, r *http.Request) {
	if err := p.productUsecase.LoadSample(r.Context()); err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"Loaded": true,
	})
}
