package category

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chloe-app/backend/internal/model/category"
)

func setupRouter() *chi.Mux {
	r := chi.NewRouter()
	New(category.NewMemoryStore(category.Seed())).RegisterRoutes(r)
	return r
}

func TestListCategories(t *testing.T) {
	r := setupRouter()

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/categories", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var got []category.Category
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, category.Seed(), got)
}

func TestListCategoriesAcceptsAnyMethod(t *testing.T) {
	r := setupRouter()

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(method, "/categories", nil))
		assert.Equal(t, http.StatusOK, resp.Code, method)
	}
}

func TestGetCategoryBySlug(t *testing.T) {
	r := setupRouter()

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/categories/travel", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	var got category.Category
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, 16, got.ID)

	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/categories/unknown", nil))
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
