package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/Rakhulsr/go-storefront/app/db/testdb"
	"github.com/Rakhulsr/go-storefront/app/models"
	"github.com/Rakhulsr/go-storefront/app/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProductHandler(db *gorm.DB) *ProductHandler {
	return NewProductHandler(repositories.NewProductRepository(db), repositories.NewReviewRepository(db), validator.New(), newRender())
}

func TestProductDetail(t *testing.T) {
	db := testdb.New(t)
	fx := seedCatalog(t, db)
	h := newProductHandler(db)

	w := serve(h.ProductDetail, httptest.NewRequest(http.MethodGet, "/products/blue-jeans", nil), map[string]string{"slug": fx.product.Slug})

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Blue Jeans")
	assert.Contains(t, body, "₹1,000")
	assert.Contains(t, body, "Rating: 0.0 / 5")
	assert.Contains(t, body, "No reviews yet.")
}

func TestProductDetailSizePrice(t *testing.T) {
	db := testdb.New(t)
	fx := seedCatalog(t, db)
	h := newProductHandler(db)

	w := serve(h.ProductDetail, httptest.NewRequest(http.MethodGet, "/products/blue-jeans?size=Large", nil), map[string]string{"slug": fx.product.Slug})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "₹1,100")

	w = serve(h.ProductDetail, httptest.NewRequest(http.MethodGet, "/products/blue-jeans?size=XXL", nil), map[string]string{"slug": fx.product.Slug})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "is not available.")
	assert.Contains(t, w.Body.String(), "₹1,000")
}

func TestProductDetailUnknownSlug(t *testing.T) {
	db := testdb.New(t)
	h := newProductHandler(db)

	w := serve(h.ProductDetail, httptest.NewRequest(http.MethodGet, "/products/nope", nil), map[string]string{"slug": "nope"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddReview(t *testing.T) {
	db := testdb.New(t)
	fx := seedCatalog(t, db)
	h := newProductHandler(db)

	r := withUser(postForm("/products/blue-jeans/reviews", url.Values{"stars": {"5"}, "content": {"Fits well"}}), fx.user)
	w := serve(h.AddReview, r, map[string]string{"slug": fx.product.Slug})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/products/blue-jeans?status=success")

	var reviews []models.ProductReview
	require.NoError(t, db.Find(&reviews).Error)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Stars)
	require.NotNil(t, reviews[0].Content)
	assert.Equal(t, "Fits well", *reviews[0].Content)
	assert.Equal(t, fx.user.ID, reviews[0].UserID)
}

func TestAddReviewRejectsInvalidStars(t *testing.T) {
	db := testdb.New(t)
	fx := seedCatalog(t, db)
	h := newProductHandler(db)

	for _, stars := range []string{"0", "6", "abc"} {
		r := withUser(postForm("/products/blue-jeans/reviews", url.Values{"stars": {stars}}), fx.user)
		w := serve(h.AddReview, r, map[string]string{"slug": fx.product.Slug})
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, stars)
	}

	var n int64
	require.NoError(t, db.Model(&models.ProductReview{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestLikeAndDislikeReview(t *testing.T) {
	db := testdb.New(t)
	fx := seedCatalog(t, db)
	h := newProductHandler(db)

	review := &models.ProductReview{ProductID: fx.product.ID, UserID: fx.user.ID, Stars: 4}
	require.NoError(t, repositories.NewReviewRepository(db).Create(ctx(), review))

	r := withUser(httptest.NewRequest(http.MethodPost, "/reviews/"+review.ID+"/like", nil), fx.user)
	r.Header.Set("Referer", "/products/blue-jeans")
	w := serve(h.LikeReview, r, map[string]string{"id": review.ID})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/products/blue-jeans", w.Header().Get("Location"))

	r = withUser(httptest.NewRequest(http.MethodPost, "/reviews/"+review.ID+"/dislike", nil), fx.user)
	w = serve(h.DislikeReview, r, map[string]string{"id": review.ID})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	r = withUser(httptest.NewRequest(http.MethodPost, "/reviews/missing/like", nil), fx.user)
	w = serve(h.LikeReview, r, map[string]string{"id": "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	page := serve(h.ProductDetail, withUser(httptest.NewRequest(http.MethodGet, "/products/blue-jeans", nil), fx.user), map[string]string{"slug": fx.product.Slug})
	assert.Contains(t, page.Body.String(), "Like (1)")
	assert.Contains(t, page.Body.String(), "Dislike (1)")
	assert.Contains(t, page.Body.String(), "Rating: 4.0 / 5")
}
