package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Rakhulsr/go-storefront/app/helpers"
	"github.com/Rakhulsr/go-storefront/app/models"
	"github.com/Rakhulsr/go-storefront/app/repositories"
	"github.com/Rakhulsr/go-storefront/app/utils/breadcrumb"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type ProductHandler struct {
	repo       repositories.ProductRepositoryImpl
	reviewRepo repositories.ReviewRepositoryImpl
	validator  *validator.Validate
	render     *render.Render
}

func NewProductHandler(p repositories.ProductRepositoryImpl, rv repositories.ReviewRepositoryImpl, v *validator.Validate, r *render.Render) *ProductHandler {
	return &ProductHandler{repo: p, reviewRepo: rv, validator: v, render: r}
}

type ReviewForm struct {
	Stars   int    `validate:"required,min=1,max=5"`
	Content string `validate:"max=2000"`
}

func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	productSlug := mux.Vars(r)["slug"]

	product, err := h.repo.GetBySlug(r.Context(), productSlug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		zap.L().Error("ProductHandler.ProductDetail: failed to load product", zap.String("slug", productSlug), zap.Error(err))
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}

	price := product.Price
	selectedSize := r.URL.Query().Get("size")
	sizeError := ""
	if selectedSize != "" {
		price, err = h.repo.PriceBySize(r.Context(), product, selectedSize)
		switch {
		case errors.Is(err, models.ErrSizeNotFound):
			sizeError = fmt.Sprintf("Size %q is not available.", selectedSize)
			price = product.Price
		case err != nil:
			zap.L().Error("ProductHandler.ProductDetail: failed to price size", zap.String("slug", productSlug), zap.String("size", selectedSize), zap.Error(err))
			http.Error(w, "Failed to load product", http.StatusInternalServerError)
			return
		}
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":        product.Name,
		"Product":      product,
		"Price":        price,
		"SelectedSize": selectedSize,
		"SizeError":    sizeError,
		"Rating":       product.Rating(),
		"Breadcrumbs": breadcrumb.Trail(
			breadcrumb.Breadcrumb{Name: product.Category.Name, URL: "/?category=" + url.QueryEscape(product.Category.Name)},
			breadcrumb.Breadcrumb{Name: product.Name, URL: product.URL()},
		),
		"Errors": map[string]string{},
	})

	_ = h.render.HTML(w, http.StatusOK, "product", data)
}

func (h *ProductHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	productSlug := mux.Vars(r)["slug"]
	user := helpers.CurrentUser(r)

	product, err := h.repo.GetBySlug(r.Context(), productSlug)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		zap.L().Error("ProductHandler.AddReview: failed to load product", zap.String("slug", productSlug), zap.Error(err))
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}

	if err := r.ParseForm(); err != nil {
		redirectWithMessage(w, r, product.URL(), "error", "Could not read the review form.")
		return
	}

	form := ReviewForm{Content: r.PostFormValue("content")}
	if stars, err := strconv.Atoi(r.PostFormValue("stars")); err == nil {
		form.Stars = stars
	}

	if err := h.validator.Struct(&form); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			http.Error(w, "Invalid review", http.StatusBadRequest)
			return
		}

		data := helpers.GetBaseData(r, map[string]interface{}{
			"Title":        product.Name,
			"Product":      product,
			"Price":        product.Price,
			"SelectedSize": "",
			"SizeError":    "",
			"Rating":       product.Rating(),
			"Form":         form,
			"Errors":       helpers.FormatValidationErrors(validationErrors),
		})
		_ = h.render.HTML(w, http.StatusUnprocessableEntity, "product", data)
		return
	}

	review := &models.ProductReview{
		ProductID: product.ID,
		UserID:    user.ID,
		Stars:     form.Stars,
	}
	if form.Content != "" {
		review.Content = &form.Content
	}

	if err := h.reviewRepo.Create(r.Context(), review); err != nil {
		zap.L().Error("ProductHandler.AddReview: failed to save review", zap.String("product_id", product.ID), zap.Error(err))
		redirectWithMessage(w, r, product.URL(), "error", "Failed to save your review.")
		return
	}

	redirectWithMessage(w, r, product.URL(), "success", "Thanks for your review!")
}

func (h *ProductHandler) LikeReview(w http.ResponseWriter, r *http.Request) {
	h.voteReview(w, r, h.reviewRepo.Like)
}

func (h *ProductHandler) DislikeReview(w http.ResponseWriter, r *http.Request) {
	h.voteReview(w, r, h.reviewRepo.Dislike)
}

func (h *ProductHandler) voteReview(w http.ResponseWriter, r *http.Request, vote func(ctx context.Context, reviewID string, user *models.User) error) {
	reviewID := mux.Vars(r)["id"]
	back := r.Header.Get("Referer")
	if back == "" {
		back = "/"
	}

	if err := vote(r.Context(), reviewID, helpers.CurrentUser(r)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		zap.L().Error("ProductHandler.voteReview: failed to record vote", zap.String("review_id", reviewID), zap.Error(err))
		http.Error(w, "Failed to record vote", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, back, http.StatusSeeOther)
}

func redirectWithMessage(w http.ResponseWriter, r *http.Request, target, status, message string) {
	http.Redirect(w, r, fmt.Sprintf("%s?status=%s&message=%s", target, status, url.QueryEscape(message)), http.StatusSeeOther)
}
