package admin

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Rakhulsr/go-storefront/app/helpers"
	"github.com/Rakhulsr/go-storefront/app/models"
	"github.com/Rakhulsr/go-storefront/app/repositories"
	"github.com/Rakhulsr/go-storefront/app/utils/breadcrumb"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const categoriesURL = "/admin/categories/"

func (h *AdminHandler) GetCategoriesPage(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		zap.L().Error("GetCategoriesPage: failed to load categories", zap.Error(err))
		http.Error(w, "Failed to load categories", http.StatusInternalServerError)
		return
	}

	data := h.adminData(r, "Categories", map[string]interface{}{
		"Categories":  categories,
		"Breadcrumbs": adminCrumbs(breadcrumb.Breadcrumb{Name: "Categories", URL: categoriesURL}),
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/categories", data)
}

func (h *AdminHandler) AddCategoryPage(w http.ResponseWriter, r *http.Request) {
	h.renderCategoryForm(w, r, http.StatusOK, categoriesURL+"add", &CategoryForm{}, nil)
}

func (h *AdminHandler) AddCategoryPost(w http.ResponseWriter, r *http.Request) {
	form, ok := h.parseCategoryForm(w, r, categoriesURL+"add")
	if !ok {
		return
	}

	category := &models.Category{Name: form.Name, Image: form.Image}
	if err := h.categoryRepo.Create(r.Context(), category); err != nil {
		zap.L().Error("AddCategoryPost: failed to create category", zap.String("name", form.Name), zap.Error(err))
		redirectWithMessage(w, r, categoriesURL+"add", "error", "Failed to add category.")
		return
	}

	redirectWithMessage(w, r, categoriesURL, "success", "Category "+category.Name+" added.")
}

func (h *AdminHandler) EditCategoryPage(w http.ResponseWriter, r *http.Request) {
	category, ok := h.loadCategory(w, r)
	if !ok {
		return
	}
	form := &CategoryForm{Name: category.Name, Image: category.Image}
	h.renderCategoryForm(w, r, http.StatusOK, categoriesURL+category.ID+"/edit", form, nil)
}

// EditCategoryPost renames the category; the slug follows the new name.
func (h *AdminHandler) EditCategoryPost(w http.ResponseWriter, r *http.Request) {
	category, ok := h.loadCategory(w, r)
	if !ok {
		return
	}

	action := categoriesURL + category.ID + "/edit"
	form, ok := h.parseCategoryForm(w, r, action)
	if !ok {
		return
	}

	category.Name = form.Name
	category.Image = form.Image
	if err := h.categoryRepo.Update(r.Context(), category); err != nil {
		zap.L().Error("EditCategoryPost: failed to update category", zap.String("category_id", category.ID), zap.Error(err))
		redirectWithMessage(w, r, action, "error", "Failed to update category.")
		return
	}

	redirectWithMessage(w, r, categoriesURL, "success", "Category "+category.Name+" updated.")
}

// DeleteCategoryPost removes the category along with all of its products.
func (h *AdminHandler) DeleteCategoryPost(w http.ResponseWriter, r *http.Request) {
	category, ok := h.loadCategory(w, r)
	if !ok {
		return
	}

	if err := h.categoryRepo.Delete(r.Context(), category.ID); err != nil {
		zap.L().Error("DeleteCategoryPost: failed to delete category", zap.String("category_id", category.ID), zap.Error(err))
		redirectWithMessage(w, r, categoriesURL, "error", "Failed to delete category.")
		return
	}

	redirectWithMessage(w, r, categoriesURL, "success", "Category "+category.Name+" deleted.")
}

func (h *AdminHandler) loadCategory(w http.ResponseWriter, r *http.Request) (*models.Category, bool) {
	id := mux.Vars(r)["id"]
	category, err := h.categoryRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return nil, false
		}
		zap.L().Error("AdminHandler.loadCategory: failed to load category", zap.String("category_id", id), zap.Error(err))
		http.Error(w, "Failed to load category", http.StatusInternalServerError)
		return nil, false
	}
	return category, true
}

func (h *AdminHandler) parseCategoryForm(w http.ResponseWriter, r *http.Request, action string) (*CategoryForm, bool) {
	if err := r.ParseForm(); err != nil {
		zap.L().Warn("AdminHandler.parseCategoryForm: error parsing form", zap.Error(err))
		redirectWithMessage(w, r, action, "error", "Could not read the form.")
		return nil, false
	}

	form := &CategoryForm{
		Name:  strings.TrimSpace(r.PostFormValue("name")),
		Image: strings.TrimSpace(r.PostFormValue("image")),
	}
	if err := h.validator.Struct(form); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			http.Error(w, "Invalid category", http.StatusBadRequest)
			return nil, false
		}
		h.renderCategoryForm(w, r, http.StatusUnprocessableEntity, action, form, helpers.FormatValidationErrors(validationErrors))
		return nil, false
	}
	return form, true
}

func (h *AdminHandler) renderCategoryForm(w http.ResponseWriter, r *http.Request, status int, action string, form *CategoryForm, errs map[string]string) {
	if errs == nil {
		errs = map[string]string{}
	}
	data := h.adminData(r, "Category", map[string]interface{}{
		"FormAction":   action,
		"CategoryData": form,
		"Errors":       errs,
		"Breadcrumbs":  adminCrumbs(breadcrumb.Breadcrumb{Name: "Categories", URL: categoriesURL}),
	})
	_ = h.render.HTML(w, status, "admin/category_form", data)
}
