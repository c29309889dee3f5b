package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inventory-pro/backend/internal/usecase"
	"github.com/inventory-pro/backend/pkg/logger"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUC
	logger          logger.Logger
}

func NewCategoryHandler(categoryUsecase usecase.CategoryUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase, logger: logger}
}

type categoryPayload struct {
	Name string `json:"name"`
}

type reassignPayload struct {
	Target string `json:"target"`
}

func (c *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.categoryUsecase.ListCategories(r.Context())
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}

func (c *CategoryHandler) addCategory(w http.ResponseWriter, r *http.Request) {
	var payload categoryPayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	if err := c.categoryUsecase.AddCategory(r.Context(), payload.Name); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"Name": payload.Name,
	})
}

// deleteCategory removes an unreferenced category. A referenced category
// answers 409 with the reassignment targets (see ReferencedResponse).
func (c *CategoryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := c.categoryUsecase.RemoveCategory(r.Context(), chi.URLParam(r, "name")); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"Deleted": true,
	})
}

func (c *CategoryHandler) reassignCategory(w http.ResponseWriter, r *http.Request) {
	var payload reassignPayload
	if err := decodeJSON(r, &payload); err != nil {
		WriteError(w, err)
		return
	}

	if err := c.categoryUsecase.ReassignAndRemove(r.Context(), chi.URLParam(r, "name"), payload.Target); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"Deleted": true,
		"Target":  payload.Target,
	})
}
