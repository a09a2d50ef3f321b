package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chloe-app/backend/internal/model/category"
	"github.com/chloe-app/backend/pkg/utils"
)

// Handler category服务的HTTP处理器
type Handler struct {
	categories category.Store
}

// New 创建category处理器
func New(categories category.Store) *Handler {
	return &Handler{
		categories: categories,
	}
}

// RegisterRoutes 注册category相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	// The list answers every method.
	r.HandleFunc("/categories", h.handleListCategories)
	r.Get("/categories/{slug}", h.handleGetCategory)
}

// handleListCategories 列出所有category
func (h *Handler) handleListCategories(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.categories.List())
}

func (h *Handler) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	item, ok := h.categories.FindBySlug(chi.URLParam(r, "slug"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "Category not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, item)
}
