package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventory-pro/backend/internal/domain"
	"github.com/inventory-pro/backend/internal/repository/memstate"
	"github.com/inventory-pro/backend/internal/usecase"
)

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)         {}
func (nopLogger) Warnf(string, ...any)         {}
func (nopLogger) Errorf(error, string, ...any) {}

type nopStore struct{}

func (nopStore) Load(context.Context) (domain.Snapshot, bool, error) {
	return domain.Snapshot{}, false, nil
}
func (nopStore) Save(context.Context, domain.Snapshot) error { return nil }

type nopNotifier struct{}

func (nopNotifier) Notify(string, usecase.Severity) {}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	state := memstate.NewState()
	snapshots := usecase.NewSnapshotWriter(state, nopStore{}, nopNotifier{}, nopLogger{})

	r := chi.NewRouter()
	router := NewRouter(r, nopLogger{})
	router.Init(
		usecase.NewProductUC(state, state, state, snapshots, nopLogger{}),
		usecase.NewCategoryUC(state, state, snapshots, nopLogger{}),
		usecase.NewOrderUC(state, state, snapshots, nopLogger{}),
		usecase.NewBackupUC(state, snapshots, nopLogger{}),
	)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func TestProductLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/v1"

	resp := doJSON(t, http.MethodPost, base+"/categories/", map[string]any{"name": "Electronics"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, base+"/products/", map[string]any{
		"name":         "Wireless Mouse",
		"category":     "Electronics",
		"stock":        5,
		"threshold":    10,
		"costPrice":    "250",
		"sellingPrice": "450",
		"supplier":     "Tech Supplies",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created usecase.ProductView
	decodeBody(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.StatusLowStock, created.Status)
	assert.Equal(t, 25, created.SuggestedQuantity)

	resp = doJSON(t, http.MethodGet, base+"/products/?status=low-stock", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list usecase.ProductListRes
	decodeBody(t, resp, &list)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, 1, list.Shown)

	resp = doJSON(t, http.MethodPost, base+"/products/"+created.ID+"/stock", map[string]any{"delta": -10})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, base+"/products/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, base+"/products/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNegativeMarginOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/v1"

	resp := doJSON(t, http.MethodPost, base+"/categories/", map[string]any{"name": "Electronics"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	payload := map[string]any{
		"name":         "Loss Leader",
		"category":     "Electronics",
		"stock":        1,
		"threshold":    10,
		"costPrice":    "500",
		"sellingPrice": "300",
	}

	resp = doJSON(t, http.MethodPost, base+"/products/", payload)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	payload["confirmNegativeMargin"] = true
	resp = doJSON(t, http.MethodPost, base+"/products/", payload)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestReferencedCategoryOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/v1"

	for _, name := range []string{"Electronics", "Accessories"} {
		resp := doJSON(t, http.MethodPost, base+"/categories/", map[string]any{"name": name})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, http.MethodPost, base+"/products/", map[string]any{
		"name":     "Mouse",
		"category": "Electronics",
		"stock":    5,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, base+"/categories/Electronics", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	var ref ReferencedResponse
	decodeBody(t, resp, &ref)
	assert.Equal(t, 1, ref.Count)
	assert.Equal(t, []string{"Accessories"}, ref.OtherCategories)

	resp = doJSON(t, http.MethodPost, base+"/categories/Electronics/reassign", map[string]any{"target": "Accessories"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, base+"/categories/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var categories struct {
		Categories []string `json:"categories"`
	}
	decodeBody(t, resp, &categories)
	assert.Equal(t, []string{"Accessories"}, categories.Categories)
}

func TestOrderFlowOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/v1"

	resp := doJSON(t, http.MethodPost, base+"/categories/", map[string]any{"name": "Electronics"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, base+"/products/", map[string]any{
		"name":      "Mouse",
		"category":  "Electronics",
		"stock":     5,
		"threshold": 10,
		"costPrice": "250",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var product usecase.ProductView
	decodeBody(t, resp, &product)

	resp = doJSON(t, http.MethodPost, base+"/products/"+product.ID+"/reorder", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var order usecase.OrderRecord
	decodeBody(t, resp, &order)
	assert.Regexp(t, `^PO-\d{6}$`, order.PONumber)
	assert.Equal(t, "pending", order.Status)

	resp = doJSON(t, http.MethodPost, base+"/orders/"+order.ID+"/receive", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var received usecase.OrderRecord
	decodeBody(t, resp, &received)
	assert.Equal(t, "received", received.Status)
	assert.NotNil(t, received.ReceivedAt)

	resp = doJSON(t, http.MethodPost, base+"/orders/"+order.ID+"/receive", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, base+"/orders/"+order.ID, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestBackupAndCSVOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/v1"

	resp := doJSON(t, http.MethodPost, base+"/sample", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, base+"/export/csv", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	resp = doJSON(t, http.MethodGet, base+"/backup", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc usecase.BackupDocument
	decodeBody(t, resp, &doc)
	assert.Len(t, doc.Products, 6)
	assert.Len(t, doc.Categories, 4)

	resp = doJSON(t, http.MethodPost, base+"/backup/restore", usecase.BackupDocument{Categories: []string{"Fresh"}})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, base+"/products/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list usecase.ProductListRes
	decodeBody(t, resp, &list)
	assert.Zero(t, list.Total)

	resp = doJSON(t, http.MethodPost, base+"/backup/restore", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
