package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/Rakhulsr/go-storefront/app/helpers"
	"github.com/Rakhulsr/go-storefront/app/repositories"
	"github.com/Rakhulsr/go-storefront/app/utils/breadcrumb"
	"github.com/Rakhulsr/go-storefront/app/utils/sessions"
	"github.com/unrolled/render"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	render       *render.Render
	userRepo     repositories.UserRepositoryImpl
	sessionStore sessions.SessionStore
	loginURL     string
}

func NewAuthHandler(r *render.Render, userRepo repositories.UserRepositoryImpl, sessionStore sessions.SessionStore, loginURL string) *AuthHandler {
	return &AuthHandler{
		render:       r,
		userRepo:     userRepo,
		sessionStore: sessionStore,
		loginURL:     loginURL,
	}
}

func (h *AuthHandler) LoginGetHandler(w http.ResponseWriter, r *http.Request) {
	if helpers.CurrentUser(r) != nil {
		http.Redirect(w, r, safeNext(r.URL.Query().Get("next")), http.StatusSeeOther)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       "Login",
		"Next":        r.URL.Query().Get("next"),
		"Breadcrumbs": breadcrumb.Trail(breadcrumb.Breadcrumb{Name: "Login", URL: h.loginURL}),
	})
	_ = h.render.HTML(w, http.StatusOK, "login", data)
}

func (h *AuthHandler) LoginPostHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		zap.L().Warn("LoginPostHandler: error parsing form", zap.Error(err))
		redirectWithMessage(w, r, h.loginURL, "error", "Could not read the login form.")
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	next := r.PostFormValue("next")

	user, err := h.userRepo.FindByUsername(r.Context(), username)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			zap.L().Error("LoginPostHandler: failed to load user", zap.String("username", username), zap.Error(err))
			http.Error(w, "Failed to sign in", http.StatusInternalServerError)
			return
		}
		redirectWithMessage(w, r, h.loginURL, "error", "Invalid username or password.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		redirectWithMessage(w, r, h.loginURL, "error", "Invalid username or password.")
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		zap.L().Error("LoginPostHandler: failed to save session", zap.String("user_id", user.ID), zap.Error(err))
		http.Error(w, "Failed to sign in", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, safeNext(next), http.StatusSeeOther)
}

func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		zap.L().Error("LogoutHandler: failed to clear session", zap.Error(err))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// safeNext only follows local paths. Browsers read a backslash as a slash,
// so "/\host" would leave the site.
func safeNext(next string) string {
	if next == "" || strings.Contains(next, `\`) || strings.HasPrefix(next, "//") {
		return "/"
	}
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return "/"
	}
	return next
}
