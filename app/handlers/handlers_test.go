package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Rakhulsr/go-storefront/app/helpers"
	"github.com/Rakhulsr/go-storefront/app/models"
	"github.com/Rakhulsr/go-storefront/app/utils/renderer"
	"github.com/Rakhulsr/go-storefront/app/utils/storage"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

func newRender() *render.Render {
	return renderer.New("../../templates", storage.NewLocalStorage("media", "/media/"), true)
}

func withUser(r *http.Request, user *models.User) *http.Request {
	ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, user.ID)
	ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)
	return r.WithContext(ctx)
}

func postForm(target string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func serve(h http.HandlerFunc, r *http.Request, vars map[string]string) *httptest.ResponseRecorder {
	if vars != nil {
		r = mux.SetURLVars(r, vars)
	}
	w := httptest.NewRecorder()
	h(w, r)
	return w
}

type catalogFixture struct {
	category *models.Category
	product  *models.Product
	user     *models.User
}

func seedCatalog(t *testing.T, db *gorm.DB) catalogFixture {
	t.Helper()

	category := &models.Category{Name: "Clothing"}
	require.NoError(t, db.Create(category).Error)

	product := &models.Product{Name: "Blue Jeans", CategoryID: category.ID, Price: 1000, Description: "Straight fit."}
	require.NoError(t, db.Create(product).Error)

	for _, s := range []models.SizeVariant{{Name: "Small", Order: 1}, {Name: "Medium", Price: 50, Order: 2}, {Name: "Large", Price: 100, Order: 3}} {
		size := s
		require.NoError(t, db.Create(&size).Error)
		require.NoError(t, db.Model(product).Association("SizeVariants").Append(&size))
	}

	user := &models.User{Username: "asha", Password: "hash"}
	require.NoError(t, db.Create(user).Error)

	return catalogFixture{category: category, product: product, user: user}
}
