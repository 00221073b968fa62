package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rakhulsr/go-storefront/app/helpers"
	"github.com/Rakhulsr/go-storefront/app/models"
	"github.com/Rakhulsr/go-storefront/app/repositories"
	"github.com/stretchr/testify/assert"
)

type fakeSessionStore struct {
	userID string
}

func (f *fakeSessionStore) GetUserID(*http.Request) string { return f.userID }

func (f *fakeSessionStore) SetUserID(_ http.ResponseWriter, _ *http.Request, userID string) error {
	f.userID = userID
	return nil
}

func (f *fakeSessionStore) ClearSession(http.ResponseWriter, *http.Request) error {
	f.userID = ""
	return nil
}

type fakeUserRepo struct {
	repositories.UserRepositoryImpl
	users map[string]*models.User
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrNotFound
}

func captureUser(seen **models.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = helpers.CurrentUser(r)
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestSessionUserMiddleware(t *testing.T) {
	asha := &models.User{ID: "u1", Username: "asha"}
	users := &fakeUserRepo{users: map[string]*models.User{"u1": asha}}

	tests := []struct {
		name   string
		userID string
		want   *models.User
	}{
		{"anonymous", "", nil},
		{"known user", "u1", asha},
		{"stale session", "deleted", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen *models.User
			h := SessionUserMiddleware(&fakeSessionStore{userID: tt.userID}, users)(captureUser(&seen))

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, tt.want, seen)
		})
	}
}

func TestRequireUser(t *testing.T) {
	var seen *models.User
	h := RequireUser("/accounts/login/")(captureUser(&seen))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/wishlist/?x=1", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/accounts/login/?next=%2Fwishlist%2F%3Fx%3D1", w.Header().Get("Location"))

	asha := &models.User{ID: "u1", Username: "asha"}
	r := httptest.NewRequest(http.MethodGet, "/wishlist/", nil)
	r = r.WithContext(context.WithValue(r.Context(), helpers.ContextKeyUser, asha))

	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, asha, seen)
}

func TestRequestLoggerKeepsStatus(t *testing.T) {
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestStaffOnly(t *testing.T) {
	var seen *models.User
	h := StaffOnly("/accounts/login/")(captureUser(&seen))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/", nil))
	assert.Equal(t, http.StatusFound, w.Code)

	customer := &models.User{ID: "u1", Username: "asha"}
	r := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), helpers.ContextKeyUser, customer)))
	assert.Equal(t, http.StatusForbidden, w.Code)

	staff := &models.User{ID: "u2", Username: "ravi", IsStaff: true}
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), helpers.ContextKeyUser, staff)))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, staff, seen)
}
