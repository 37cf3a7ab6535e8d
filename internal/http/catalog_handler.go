package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Bhuvana30-web/my-waydukaan/internal/catalog"
)

type CatalogHandler struct {
	client  *catalog.Client
	timeout time.Duration
}

func NewCatalogHandler(client *catalog.Client, timeout time.Duration) *CatalogHandler {
	return &CatalogHandler{
		client:  client,
		timeout: timeout,
	}
}

// GET /api/v1/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, catalog.Categories)
}

// GET /api/v1/categories/{category_id}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	cat, ok := catalog.FindCategory(chi.URLParam(r, "category_id"))
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "category not found")
		return
	}
	respondJSON(w, http.StatusOK, cat)
}

// GET /api/v1/categories/{category_id}/subcategories/{subcategory_id}/products
// Subcategory listings come from the local static dataset.
func (h *CatalogHandler) SubcategoryProducts(w http.ResponseWriter, r *http.Request) {
	cat, ok := catalog.FindCategory(chi.URLParam(r, "category_id"))
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "category not found")
		return
	}
	sub, ok := cat.FindSubcategory(chi.URLParam(r, "subcategory_id"))
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "subcategory not found")
		return
	}

	items, ok := catalog.SubcategoryItems(sub.ID)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found", "no products found for this subcategory")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// GET /api/v1/products?category=<id>
// Fetches the full remote catalog and filters it client-side. A fetch
// failure surfaces as a page-level error state, no retry.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	scope := catalog.Scope{CategoryID: r.URL.Query().Get("category")}
	if scope.CategoryID != "" {
		if _, ok := catalog.FindCategory(scope.CategoryID); !ok {
			respondError(w, http.StatusNotFound, "not_found", "category not found")
			return
		}
	}

	snap := h.client.Refresh(ctx, scope)
	if snap.Err != nil {
		respondError(w, http.StatusBadGateway, "catalog_unavailable", "failed to load products, please try again later")
		return
	}

	respondJSON(w, http.StatusOK, snap)
}
