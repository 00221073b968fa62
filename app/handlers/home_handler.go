package handlers

import (
	"net/http"

	"github.com/Rakhulsr/go-storefront/app/helpers"
	"github.com/Rakhulsr/go-storefront/app/models"
	"github.com/Rakhulsr/go-storefront/app/services"
	"github.com/Rakhulsr/go-storefront/app/utils/breadcrumb"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

// ContactFormID identifies the storefront's form at the external form-submission service.
const ContactFormID = "xgvvlrvn"

type HomeHandler struct {
	render  *render.Render
	catalog services.CatalogService
}

func NewHomeHandler(r *render.Render, c services.CatalogService) *HomeHandler {
	return &HomeHandler{
		render:  r,
		catalog: c,
	}
}

// Index renders the product listing for the category, sort and page query parameters.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	selectedCategory := q.Get("category")
	selectedSort := q.Get("sort")

	opts := models.ListingOptions{
		Category: selectedCategory,
		Sort:     models.ParseSortKey(selectedSort),
	}

	result, err := h.catalog.Listing(r.Context(), opts, q.Get("page"))
	if err != nil {
		zap.L().Error("HomeHandler.Index: failed to build listing", zap.Error(err))
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Products":         result.Page,
		"Categories":       result.Categories,
		"SelectedCategory": selectedCategory,
		"SelectedSort":     selectedSort,
		"SliderImages":     result.SliderImages,
		"FeaturedImages":   result.FeaturedImages,
	})

	_ = h.render.HTML(w, http.StatusOK, "index", data)
}

func (h *HomeHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	products, err := h.catalog.Search(r.Context(), query)
	if err != nil {
		zap.L().Error("HomeHandler.Search: search failed", zap.String("q", query), zap.Error(err))
		http.Error(w, "Failed to search products", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "Search",
		"SearchQuery": query,
		"Products":    products,
		"Breadcrumbs": breadcrumb.Trail(breadcrumb.Breadcrumb{Name: "Search", URL: "/search/"}),
	})

	_ = h.render.HTML(w, http.StatusOK, "search", data)
}

func (h *HomeHandler) Contact(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "Contact",
		"FormID":      ContactFormID,
		"Breadcrumbs": breadcrumb.Trail(breadcrumb.Breadcrumb{Name: "Contact", URL: "/contact/"}),
	})

	_ = h.render.HTML(w, http.StatusOK, "contact", data)
}

func (h *HomeHandler) About(w http.ResponseWriter, r *http.Request) {
	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "About",
		"Breadcrumbs": breadcrumb.Trail(breadcrumb.Breadcrumb{Name: "About", URL: "/about/"}),
	})

	_ = h.render.HTML(w, http.StatusOK, "about", data)
}
