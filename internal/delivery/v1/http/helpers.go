package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/inventory-pro/backend/pkg/e"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ReferencedResponse is the payload of a blocked category deletion: the
// caller needs the count and the reassignment targets to offer the
// reassign-and-delete flow.
type ReferencedResponse struct {
	Code            int      `json:"code"`
	Message         string   `json:"message"`
	Count           int      `json:"count"`
	OtherCategories []string `json:"otherCategories"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrCategoryRequired):
		return http.StatusBadRequest, e.ErrCategoryRequired.Error()
	case errors.Is(err, e.ErrUnknownCategory):
		return http.StatusBadRequest, e.ErrUnknownCategory.Error()
	case errors.Is(err, e.ErrCategoryNameEmpty):
		return http.StatusBadRequest, e.ErrCategoryNameEmpty.Error()
	case errors.Is(err, e.ErrNoProductsSelected):
		return http.StatusBadRequest, e.ErrNoProductsSelected.Error()
	case errors.Is(err, e.ErrInvalidPayload):
		return http.StatusBadRequest, e.ErrInvalidPayload.Error()
	case errors.Is(err, e.ErrInvalidBackup):
		return http.StatusBadRequest, e.ErrInvalidBackup.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrCategoryNotFound):
		return http.StatusNotFound, e.ErrCategoryNotFound.Error()
	case errors.Is(err, e.ErrOrderNotFound):
		return http.StatusNotFound, e.ErrOrderNotFound.Error()
	case errors.Is(err, e.ErrCategoryExists):
		return http.StatusConflict, e.ErrCategoryExists.Error()
	case errors.Is(err, e.ErrNegativeStock):
		return http.StatusConflict, e.ErrNegativeStock.Error()
	case errors.Is(err, e.ErrNegativeMargin):
		return http.StatusConflict, e.ErrNegativeMargin.Error()
	case errors.Is(err, e.ErrOrderNotPending):
		return http.StatusConflict, e.ErrOrderNotPending.Error()
	case errors.Is(err, e.ErrOrderAlreadyReceived):
		return http.StatusConflict, e.ErrOrderAlreadyReceived.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	var refErr *e.ReferencedError
	if errors.As(err, &refErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(&ReferencedResponse{
			Code:            http.StatusConflict,
			Message:         refErr.Error(),
			Count:           refErr.Count,
			OtherCategories: refErr.OtherCategories,
		})
		return
	}

	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrInvalidPayload)
	}
	return nil
}
