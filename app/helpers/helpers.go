package helpers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Rakhulsr/go-storefront/app/models"
	"github.com/Rakhulsr/go-storefront/app/utils/breadcrumb"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
	ContextKeyUser   contextKey = "userObject"
)

const SiteTitle = "Storefront"

// CurrentUser returns the user loaded by the session middleware, if any.
func CurrentUser(r *http.Request) *models.User {
	user, _ := r.Context().Value(ContextKeyUser).(*models.User)
	return user
}

func GetBaseData(r *http.Request, pageSpecificData map[string]interface{}) map[string]interface{} {
	if pageSpecificData == nil {
		pageSpecificData = make(map[string]interface{})
	}

	if _, exists := pageSpecificData["Title"]; !exists {
		pageSpecificData["Title"] = SiteTitle
	}
	if _, exists := pageSpecificData["Breadcrumbs"]; !exists {
		pageSpecificData["Breadcrumbs"] = []breadcrumb.Breadcrumb{}
	}

	pageSpecificData["Query"] = r.URL.Query()
	pageSpecificData["CurrentPath"] = r.URL.Path
	pageSpecificData["csrfField"] = csrf.TemplateField(r)

	pageSpecificData["IsLoggedIn"] = false
	pageSpecificData["User"] = nil
	if userVal := r.Context().Value(ContextKeyUser); userVal != nil {
		if user, ok := userVal.(*models.User); ok && user != nil {
			pageSpecificData["User"] = user
			pageSpecificData["IsLoggedIn"] = true
		} else {
			zap.L().Warn("GetBaseData: user in context has unexpected type", zap.Any("value", userVal))
		}
	}

	pageSpecificData["MessageStatus"] = r.URL.Query().Get("status")
	pageSpecificData["Message"] = r.URL.Query().Get("message")

	return pageSpecificData
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", err.Field())
		case "numeric":
			errorMessages[field] = fmt.Sprintf("%s must be a number.", err.Field())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("%s failed the %s check.", err.Field(), err.Tag())
		}
	}
	return errorMessages
}
