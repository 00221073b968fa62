package admin

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/Rakhulsr/go-storefront/app/helpers"
	"github.com/Rakhulsr/go-storefront/app/models"
	"github.com/Rakhulsr/go-storefront/app/repositories"
	"github.com/Rakhulsr/go-storefront/app/utils/breadcrumb"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	productsURL = "/admin/products/"

	maxUploadSize = 10 << 20
)

func (h *AdminHandler) GetProductsPage(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.All(r.Context())
	if err != nil {
		zap.L().Error("GetProductsPage: failed to load products", zap.Error(err))
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	data := h.adminData(r, "Products", map[string]interface{}{
		"Products":    products,
		"Breadcrumbs": adminCrumbs(breadcrumb.Breadcrumb{Name: "Products", URL: productsURL}),
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/products", data)
}

func (h *AdminHandler) AddProductPage(w http.ResponseWriter, r *http.Request) {
	h.renderProductForm(w, r, http.StatusOK, productsURL+"add", nil, &ProductForm{}, nil)
}

func (h *AdminHandler) AddProductPost(w http.ResponseWriter, r *http.Request) {
	action := productsURL + "add"
	form, ok := h.parseProductForm(w, r, action, nil)
	if !ok {
		return
	}

	product := &models.Product{}
	form.apply(product)
	if err := h.productRepo.Create(r.Context(), product); err != nil {
		zap.L().Error("AddProductPost: failed to create product", zap.String("name", form.Name), zap.Error(err))
		redirectWithMessage(w, r, action, "error", "Failed to add product.")
		return
	}
	if err := h.productRepo.SetVariants(r.Context(), product, form.ColorIDs, form.SizeIDs); err != nil {
		zap.L().Error("AddProductPost: failed to attach variants", zap.String("product_id", product.ID), zap.Error(err))
		redirectWithMessage(w, r, productsURL+product.ID+"/edit", "error", "Product added, but its variants could not be saved.")
		return
	}

	redirectWithMessage(w, r, productsURL, "success", "Product "+product.Name+" added.")
}

func (h *AdminHandler) EditProductPage(w http.ResponseWriter, r *http.Request) {
	product, ok := h.loadProduct(w, r)
	if !ok {
		return
	}
	h.renderProductForm(w, r, http.StatusOK, productsURL+product.ID+"/edit", product, productFormFrom(product), nil)
}

// EditProductPost saves the product fields and replaces its variants.
func (h *AdminHandler) EditProductPost(w http.ResponseWriter, r *http.Request) {
	product, ok := h.loadProduct(w, r)
	if !ok {
		return
	}

	action := productsURL + product.ID + "/edit"
	form, ok := h.parseProductForm(w, r, action, product)
	if !ok {
		return
	}

	form.apply(product)
	if err := h.productRepo.Update(r.Context(), product); err != nil {
		zap.L().Error("EditProductPost: failed to update product", zap.String("product_id", product.ID), zap.Error(err))
		redirectWithMessage(w, r, action, "error", "Failed to update product.")
		return
	}
	if err := h.productRepo.SetVariants(r.Context(), product, form.ColorIDs, form.SizeIDs); err != nil {
		zap.L().Error("EditProductPost: failed to replace variants", zap.String("product_id", product.ID), zap.Error(err))
		redirectWithMessage(w, r, action, "error", "Failed to update product variants.")
		return
	}

	redirectWithMessage(w, r, productsURL, "success", "Product "+product.Name+" updated.")
}

func (h *AdminHandler) DeleteProductPost(w http.ResponseWriter, r *http.Request) {
	product, ok := h.loadProduct(w, r)
	if !ok {
		return
	}

	if err := h.productRepo.Delete(r.Context(), product.ID); err != nil {
		zap.L().Error("DeleteProductPost: failed to delete product", zap.String("product_id", product.ID), zap.Error(err))
		redirectWithMessage(w, r, productsURL, "error", "Failed to delete product.")
		return
	}

	redirectWithMessage(w, r, productsURL, "success", "Product "+product.Name+" deleted.")
}

// UploadImagePost stores the uploaded file and attaches it to the product.
// Storage picks a random name that keeps the original extension.
func (h *AdminHandler) UploadImagePost(w http.ResponseWriter, r *http.Request) {
	product, ok := h.loadProduct(w, r)
	if !ok {
		return
	}
	back := productsURL + product.ID + "/edit"

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		zap.L().Warn("UploadImagePost: error parsing upload", zap.Error(err))
		redirectWithMessage(w, r, back, "error", "Could not read the uploaded image.")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		redirectWithMessage(w, r, back, "error", "Please choose an image to upload.")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		zap.L().Error("UploadImagePost: failed to read upload", zap.Error(err))
		redirectWithMessage(w, r, back, "error", "Could not read the uploaded image.")
		return
	}

	stored, err := h.media.Save(r.Context(), header.Filename, content)
	if err != nil {
		zap.L().Error("UploadImagePost: failed to store image", zap.String("product_id", product.ID), zap.Error(err))
		redirectWithMessage(w, r, back, "error", "Failed to store the image.")
		return
	}

	image := &models.ProductImage{
		ProductID:    product.ID,
		Image:        stored,
		IsFeatured:   r.PostFormValue("is_featured") == "on",
		ShowInSlider: r.PostFormValue("show_in_slider") == "on",
	}
	if err := h.imageRepo.Create(r.Context(), image); err != nil {
		zap.L().Error("UploadImagePost: failed to save image", zap.String("product_id", product.ID), zap.Error(err))
		redirectWithMessage(w, r, back, "error", "Failed to save the image.")
		return
	}

	redirectWithMessage(w, r, back, "success", "Image uploaded.")
}

// ImageFlagsPost updates the featured and slider flags of one image.
// Featured wins when both boxes are ticked.
func (h *AdminHandler) ImageFlagsPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	image, err := h.imageRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		zap.L().Error("ImageFlagsPost: failed to load image", zap.String("image_id", id), zap.Error(err))
		http.Error(w, "Failed to load image", http.StatusInternalServerError)
		return
	}

	back := productsURL + image.ProductID + "/edit"
	if err := r.ParseForm(); err != nil {
		redirectWithMessage(w, r, back, "error", "Could not read the form.")
		return
	}

	image.IsFeatured = r.PostFormValue("is_featured") == "on"
	image.ShowInSlider = r.PostFormValue("show_in_slider") == "on"
	if err := h.imageRepo.Save(r.Context(), image); err != nil {
		zap.L().Error("ImageFlagsPost: failed to save image", zap.String("image_id", id), zap.Error(err))
		redirectWithMessage(w, r, back, "error", "Failed to update the image.")
		return
	}

	redirectWithMessage(w, r, back, "success", "Image updated.")
}

func (h *AdminHandler) loadProduct(w http.ResponseWriter, r *http.Request) (*models.Product, bool) {
	id := mux.Vars(r)["id"]
	product, err := h.productRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			http.NotFound(w, r)
			return nil, false
		}
		zap.L().Error("AdminHandler.loadProduct: failed to load product", zap.String("product_id", id), zap.Error(err))
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return nil, false
	}
	return product, true
}

func (h *AdminHandler) parseProductForm(w http.ResponseWriter, r *http.Request, action string, product *models.Product) (*ProductForm, bool) {
	if err := r.ParseForm(); err != nil {
		zap.L().Warn("AdminHandler.parseProductForm: error parsing form", zap.Error(err))
		redirectWithMessage(w, r, action, "error", "Could not read the form.")
		return nil, false
	}

	form := &ProductForm{
		Name:            strings.TrimSpace(r.PostFormValue("name")),
		CategoryID:      r.PostFormValue("category_id"),
		Description:     strings.TrimSpace(r.PostFormValue("description")),
		NewestProduct:   r.PostFormValue("newest_product") == "on",
		TrendingProduct: r.PostFormValue("trending_product") == "on",
		ColorIDs:        r.PostForm["color_ids"],
		SizeIDs:         r.PostForm["size_ids"],
	}

	errs := map[string]string{}
	price, err := strconv.Atoi(strings.TrimSpace(r.PostFormValue("price")))
	if err != nil {
		errs["price"] = "Price must be a whole number."
	}
	form.Price = price

	if err := h.validator.Struct(form); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			http.Error(w, "Invalid product", http.StatusBadRequest)
			return nil, false
		}
		for field, msg := range helpers.FormatValidationErrors(validationErrors) {
			if _, exists := errs[field]; !exists {
				errs[field] = msg
			}
		}
	}

	if form.CategoryID != "" {
		if _, err := h.categoryRepo.GetByID(r.Context(), form.CategoryID); err != nil {
			if !errors.Is(err, repositories.ErrNotFound) {
				zap.L().Error("AdminHandler.parseProductForm: failed to load category", zap.String("category_id", form.CategoryID), zap.Error(err))
				http.Error(w, "Failed to load category", http.StatusInternalServerError)
				return nil, false
			}
			errs["categoryid"] = "Select a valid category."
		}
	}

	if len(errs) > 0 {
		h.renderProductForm(w, r, http.StatusUnprocessableEntity, action, product, form, errs)
		return nil, false
	}
	return form, true
}

func (h *AdminHandler) renderProductForm(w http.ResponseWriter, r *http.Request, status int, action string, product *models.Product, form *ProductForm, errs map[string]string) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		zap.L().Error("AdminHandler.renderProductForm: failed to load categories", zap.Error(err))
		http.Error(w, "Failed to load categories", http.StatusInternalServerError)
		return
	}
	colors, err := h.variantRepo.GetColors(r.Context())
	if err != nil {
		zap.L().Error("AdminHandler.renderProductForm: failed to load colours", zap.Error(err))
		http.Error(w, "Failed to load variants", http.StatusInternalServerError)
		return
	}
	sizes, err := h.variantRepo.GetSizes(r.Context())
	if err != nil {
		zap.L().Error("AdminHandler.renderProductForm: failed to load sizes", zap.Error(err))
		http.Error(w, "Failed to load variants", http.StatusInternalServerError)
		return
	}
	if errs == nil {
		errs = map[string]string{}
	}

	data := h.adminData(r, "Product", map[string]interface{}{
		"FormAction":     action,
		"Product":        product,
		"ProductData":    form,
		"Categories":     categories,
		"Colors":         colors,
		"Sizes":          sizes,
		"SelectedColors": toSet(form.ColorIDs),
		"SelectedSizes":  toSet(form.SizeIDs),
		"Errors":         errs,
		"Breadcrumbs":    adminCrumbs(breadcrumb.Breadcrumb{Name: "Products", URL: productsURL}),
	})
	_ = h.render.HTML(w, status, "admin/product_form", data)
}

func productFormFrom(p *models.Product) *ProductForm {
	form := &ProductForm{
		Name:            p.Name,
		CategoryID:      p.CategoryID,
		Price:           p.Price,
		Description:     p.Description,
		NewestProduct:   p.NewestProduct,
		TrendingProduct: p.TrendingProduct,
	}
	for _, c := range p.ColorVariants {
		form.ColorIDs = append(form.ColorIDs, c.ID)
	}
	for _, s := range p.SizeVariants {
		form.SizeIDs = append(form.SizeIDs, s.ID)
	}
	return form
}

func (f *ProductForm) apply(p *models.Product) {
	p.Name = f.Name
	p.CategoryID = f.CategoryID
	p.Price = f.Price
	p.Description = f.Description
	p.NewestProduct = f.NewestProduct
	p.TrendingProduct = f.TrendingProduct
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
