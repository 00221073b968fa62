package admin

import (
	"net/http"

	"github.com/Rakhulsr/go-storefront/app/utils/breadcrumb"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const variantsURL = "/admin/variants/"

func (h *AdminHandler) GetVariantsPage(w http.ResponseWriter, r *http.Request) {
	colors, err := h.variantRepo.GetColors(r.Context())
	if err != nil {
		zap.L().Error("GetVariantsPage: failed to load colours", zap.Error(err))
		http.Error(w, "Failed to load variants", http.StatusInternalServerError)
		return
	}
	sizes, err := h.variantRepo.GetSizes(r.Context())
	if err != nil {
		zap.L().Error("GetVariantsPage: failed to load sizes", zap.Error(err))
		http.Error(w, "Failed to load variants", http.StatusInternalServerError)
		return
	}

	data := h.adminData(r, "Variants", map[string]interface{}{
		"Colors":      colors,
		"Sizes":       sizes,
		"Breadcrumbs": adminCrumbs(breadcrumb.Breadcrumb{Name: "Variants", URL: variantsURL}),
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/variants", data)
}

// DeleteSizePost removes a size; wishlist entries that used it keep existing
// without a size.
func (h *AdminHandler) DeleteSizePost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.variantRepo.DeleteSize(r.Context(), id); err != nil {
		zap.L().Error("DeleteSizePost: failed to delete size", zap.String("size_id", id), zap.Error(err))
		redirectWithMessage(w, r, variantsURL, "error", "Failed to delete size.")
		return
	}
	redirectWithMessage(w, r, variantsURL, "success", "Size deleted.")
}

func (h *AdminHandler) DeleteColorPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.variantRepo.DeleteColor(r.Context(), id); err != nil {
		zap.L().Error("DeleteColorPost: failed to delete colour", zap.String("color_id", id), zap.Error(err))
		redirectWithMessage(w, r, variantsURL, "error", "Failed to delete colour.")
		return
	}
	redirectWithMessage(w, r, variantsURL, "success", "Colour deleted.")
}
