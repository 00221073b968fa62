package middlewares

import (
	"net/http"
	"net/url"

	"github.com/Rakhulsr/go-storefront/app/helpers"
	"go.uber.org/zap"
)

// StaffOnly lets staff users through. Anonymous requests are sent to
// loginURL, signed-in non-staff users get 403.
func StaffOnly(loginURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := helpers.CurrentUser(r)
			if user == nil {
				http.Redirect(w, r, loginURL+"?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusFound)
				return
			}

			if !user.IsStaff {
				zap.L().Warn("StaffOnly: non-staff user attempted to access admin",
					zap.String("user_id", user.ID),
					zap.String("path", r.URL.Path))
				http.Error(w, "You do not have permission to access this page.", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
