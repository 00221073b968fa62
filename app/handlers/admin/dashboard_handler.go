package admin

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/Rakhulsr/go-storefront/app/helpers"
	"github.com/Rakhulsr/go-storefront/app/repositories"
	"github.com/Rakhulsr/go-storefront/app/utils/breadcrumb"
	"github.com/Rakhulsr/go-storefront/app/utils/storage"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

// AdminHandler serves the staff-only catalog management pages.
type AdminHandler struct {
	render       *render.Render
	validator    *validator.Validate
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	imageRepo    repositories.ProductImageRepositoryImpl
	variantRepo  repositories.VariantRepositoryImpl
	media        storage.Storage
}

func NewAdminHandler(
	render *render.Render,
	validator *validator.Validate,
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	imageRepo repositories.ProductImageRepositoryImpl,
	variantRepo repositories.VariantRepositoryImpl,
	media storage.Storage,
) *AdminHandler {
	return &AdminHandler{
		render:       render,
		validator:    validator,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		imageRepo:    imageRepo,
		variantRepo:  variantRepo,
		media:        media,
	}
}

type CategoryForm struct {
	Name  string `validate:"required,max=100"`
	Image string `validate:"max=255"`
}

type ProductForm struct {
	Name            string `validate:"required,max=100"`
	CategoryID      string `validate:"required"`
	Price           int    `validate:"min=0"`
	Description     string
	NewestProduct   bool
	TrendingProduct bool
	ColorIDs        []string
	SizeIDs         []string
}

func adminCrumbs(extra ...breadcrumb.Breadcrumb) []breadcrumb.Breadcrumb {
	return breadcrumb.Trail(append([]breadcrumb.Breadcrumb{{Name: "Admin", URL: "/admin/"}}, extra...)...)
}

func (h *AdminHandler) adminData(r *http.Request, title string, data map[string]interface{}) map[string]interface{} {
	if data == nil {
		data = map[string]interface{}{}
	}
	data["Title"] = title
	data["IsAdminPage"] = true
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	return helpers.GetBaseData(r, data)
}

func redirectWithMessage(w http.ResponseWriter, r *http.Request, target, status, message string) {
	http.Redirect(w, r, fmt.Sprintf("%s?status=%s&message=%s", target, status, url.QueryEscape(message)), http.StatusSeeOther)
}

func (h *AdminHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		zap.L().Error("GetDashboard: failed to load categories", zap.Error(err))
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}
	products, err := h.productRepo.All(r.Context())
	if err != nil {
		zap.L().Error("GetDashboard: failed to load products", zap.Error(err))
		http.Error(w, "Failed to load dashboard", http.StatusInternalServerError)
		return
	}

	data := h.adminData(r, "Admin", map[string]interface{}{
		"CategoryCount": len(categories),
		"ProductCount":  len(products),
		"Breadcrumbs":   adminCrumbs(),
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/dashboard", data)
}
