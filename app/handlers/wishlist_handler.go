package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Rakhulsr/go-storefront/app/helpers"
	"github.com/Rakhulsr/go-storefront/app/repositories"
	"github.com/Rakhulsr/go-storefront/app/utils/breadcrumb"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type WishlistHandler struct {
	render       *render.Render
	wishlistRepo repositories.WishlistRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	variantRepo  repositories.VariantRepositoryImpl
}

func NewWishlistHandler(r *render.Render, w repositories.WishlistRepositoryImpl, p repositories.ProductRepositoryImpl, v repositories.VariantRepositoryImpl) *WishlistHandler {
	return &WishlistHandler{render: r, wishlistRepo: w, productRepo: p, variantRepo: v}
}

func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	user := helpers.CurrentUser(r)

	items, err := h.wishlistRepo.ListByUser(r.Context(), user.ID)
	if err != nil {
		zap.L().Error("WishlistHandler.List: failed to load wishlist", zap.String("user_id", user.ID), zap.Error(err))
		http.Error(w, "Failed to load wishlist", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "Wishlist",
		"Items":       items,
		"Breadcrumbs": breadcrumb.Trail(breadcrumb.Breadcrumb{Name: "Wishlist", URL: "/wishlist/"}),
	})

	_ = h.render.HTML(w, http.StatusOK, "wishlist", data)
}

// Add wishlists the product, optionally for the size named by the form's
// size field. Adding an existing entry redirects without change.
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	user := helpers.CurrentUser(r)
	productSlug := mux.Vars(r)["slug"]

	product, err := h.productRepo.GetBySlug(r.Context(), productSlug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		zap.L().Error("WishlistHandler.Add: failed to load product", zap.String("slug", productSlug), zap.Error(err))
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		redirectWithMessage(w, r, product.URL(), "error", "Could not read the wishlist form.")
		return
	}

	var sizeVariantID *string
	if sizeName := strings.TrimSpace(r.PostFormValue("size")); sizeName != "" {
		size, err := h.variantRepo.GetSizeByName(r.Context(), sizeName)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				redirectWithMessage(w, r, product.URL(), "error", "Selected size is not available.")
				return
			}
			zap.L().Error("WishlistHandler.Add: failed to load size", zap.String("size", sizeName), zap.Error(err))
			http.Error(w, "Failed to update wishlist", http.StatusInternalServerError)
			return
		}
		sizeVariantID = &size.ID
	}

	_, err = h.wishlistRepo.Add(r.Context(), user.ID, product.ID, sizeVariantID)
	switch {
	case errors.Is(err, repositories.ErrAlreadyWishlisted):
		http.Redirect(w, r, "/wishlist/", http.StatusSeeOther)
	case err != nil:
		zap.L().Error("WishlistHandler.Add: failed to add item", zap.String("user_id", user.ID), zap.String("product_id", product.ID), zap.Error(err))
		http.Error(w, "Failed to update wishlist", http.StatusInternalServerError)
	default:
		redirectWithMessage(w, r, "/wishlist/", "success", product.Name+" added to your wishlist.")
	}
}

func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user := helpers.CurrentUser(r)
	id := mux.Vars(r)["id"]

	err := h.wishlistRepo.Remove(r.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		zap.L().Error("WishlistHandler.Remove: failed to remove item", zap.String("id", id), zap.Error(err))
		http.Error(w, "Failed to update wishlist", http.StatusInternalServerError)
		return
	}

	redirectWithMessage(w, r, "/wishlist/", "success", "Removed from your wishlist.")
}
