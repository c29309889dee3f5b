package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inventory-pro/backend/internal/usecase"
	"github.com/inventory-pro/backend/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

type createOrderPayload struct {
	ProductIDs   []string `json:"productIds"`
	DeliveryDate string   `json:"deliveryDate"`
	Notes        string   `json:"notes"`
}

func (o *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := o.orderUsecase.ListOrders(r.Context())
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	records := make([]usecase.OrderRecord, 0, len(orders))
	for _, po := range orders {
		records = append(records, usecase.NewOrderRecord(po))
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"orders": records,
	})
}

func (o *OrderHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var payload createOrderPayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	order, err := o.orderUsecase.CreateOrder(r.Context(), &usecase.CreateOrderReq{
		ProductIDs:   payload.ProductIDs,
		DeliveryDate: payload.DeliveryDate,
		Notes:        payload.Notes,
	})
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, usecase.NewOrderRecord(*order))
}

// quickReorder creates a single-product order from the product alert shortcut.
func (o *OrderHandler) quickReorder(w http.ResponseWriter, r *http.Request) {
	order, err := o.orderUsecase.QuickCreateOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, usecase.NewOrderRecord(*order))
}

func (o *OrderHandler) receiveOrder(w http.ResponseWriter, r *http.Request) {
	order, err := o.orderUsecase.ReceiveOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, usecase.NewOrderRecord(*order))
}

func (o *OrderHandler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := o.orderUsecase.RemoveOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"Deleted": true,
	})
}
