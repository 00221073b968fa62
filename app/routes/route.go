package routes

import (
	"net/http"

	"github.com/Rakhulsr/go-storefront/app/configs"
	"github.com/Rakhulsr/go-storefront/app/handlers"
	"github.com/Rakhulsr/go-storefront/app/handlers/admin"
	"github.com/Rakhulsr/go-storefront/app/middlewares"
	"github.com/Rakhulsr/go-storefront/app/repositories"
	"github.com/Rakhulsr/go-storefront/app/services"
	"github.com/Rakhulsr/go-storefront/app/utils/renderer"
	"github.com/Rakhulsr/go-storefront/app/utils/sessions"
	"github.com/Rakhulsr/go-storefront/app/utils/storage"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV, keys *configs.SessionKeys) *mux.Router {
	router := mux.NewRouter()

	media := storage.NewLocalStorage(env.MediaRoot, env.MediaURL)
	render := renderer.New(env.TemplateDir, media, !env.IsProduction())
	sessionStore := sessions.NewCookieSessionStore(env.IsProduction(), keys.AuthKey, keys.EncKey)
	validate := validator.New()

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	imageRepo := repositories.NewProductImageRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	variantRepo := repositories.NewVariantRepository(db)
	wishlistRepo := repositories.NewWishlistRepository(db)
	userRepo := repositories.NewUserRepository(db)

	catalog := services.NewCatalogService(productRepo, categoryRepo, imageRepo)

	homeHandler := handlers.NewHomeHandler(render, catalog)
	productHandler := handlers.NewProductHandler(productRepo, reviewRepo, validate, render)
	wishlistHandler := handlers.NewWishlistHandler(render, wishlistRepo, productRepo, variantRepo)
	authHandler := handlers.NewAuthHandler(render, userRepo, sessionStore, env.LoginURL)
	adminHandler := admin.NewAdminHandler(render, validate, productRepo, categoryRepo, imageRepo, variantRepo, media)

	router.Use(middlewares.RequestLogger)
	if !env.IsProduction() {
		router.Use(middlewares.PlaintextHTTP)
	}
	router.Use(csrf.Protect(keys.CSRFKey, csrf.Secure(env.IsProduction()), csrf.Path("/")))
	router.Use(middlewares.SessionUserMiddleware(sessionStore, userRepo))

	requireUser := middlewares.RequireUser(env.LoginURL)

	router.HandleFunc("/", homeHandler.Index).Methods("GET")
	router.HandleFunc("/search/", homeHandler.Search).Methods("GET")
	router.HandleFunc("/contact/", homeHandler.Contact).Methods("GET")
	router.HandleFunc("/about/", homeHandler.About).Methods("GET")

	router.HandleFunc("/products/{slug}", productHandler.ProductDetail).Methods("GET")
	router.Handle("/products/{slug}/reviews", requireUser(http.HandlerFunc(productHandler.AddReview))).Methods("POST")
	router.Handle("/reviews/{id}/like", requireUser(http.HandlerFunc(productHandler.LikeReview))).Methods("POST")
	router.Handle("/reviews/{id}/dislike", requireUser(http.HandlerFunc(productHandler.DislikeReview))).Methods("POST")

	wishlist := router.PathPrefix("/wishlist").Subrouter()
	wishlist.Use(requireUser)
	wishlist.HandleFunc("/", wishlistHandler.List).Methods("GET")
	wishlist.HandleFunc("/add/{slug}", wishlistHandler.Add).Methods("POST")
	wishlist.HandleFunc("/remove/{id}", wishlistHandler.Remove).Methods("POST")

	router.HandleFunc(env.LoginURL, authHandler.LoginGetHandler).Methods("GET")
	router.HandleFunc(env.LoginURL, authHandler.LoginPostHandler).Methods("POST")
	router.HandleFunc("/accounts/logout/", authHandler.LogoutHandler).Methods("POST")

	adminRouter := router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.StaffOnly(env.LoginURL))
	adminRouter.HandleFunc("/", adminHandler.GetDashboard).Methods("GET")

	adminRouter.HandleFunc("/categories/", adminHandler.GetCategoriesPage).Methods("GET")
	adminRouter.HandleFunc("/categories/add", adminHandler.AddCategoryPage).Methods("GET")
	adminRouter.HandleFunc("/categories/add", adminHandler.AddCategoryPost).Methods("POST")
	adminRouter.HandleFunc("/categories/{id}/edit", adminHandler.EditCategoryPage).Methods("GET")
	adminRouter.HandleFunc("/categories/{id}/edit", adminHandler.EditCategoryPost).Methods("POST")
	adminRouter.HandleFunc("/categories/{id}/delete", adminHandler.DeleteCategoryPost).Methods("POST")

	adminRouter.HandleFunc("/products/", adminHandler.GetProductsPage).Methods("GET")
	adminRouter.HandleFunc("/products/add", adminHandler.AddProductPage).Methods("GET")
	adminRouter.HandleFunc("/products/add", adminHandler.AddProductPost).Methods("POST")
	adminRouter.HandleFunc("/products/{id}/edit", adminHandler.EditProductPage).Methods("GET")
	adminRouter.HandleFunc("/products/{id}/edit", adminHandler.EditProductPost).Methods("POST")
	adminRouter.HandleFunc("/products/{id}/delete", adminHandler.DeleteProductPost).Methods("POST")
	adminRouter.HandleFunc("/products/{id}/images", adminHandler.UploadImagePost).Methods("POST")
	adminRouter.HandleFunc("/images/{id}/flags", adminHandler.ImageFlagsPost).Methods("POST")

	adminRouter.HandleFunc("/variants/", adminHandler.GetVariantsPage).Methods("GET")
	adminRouter.HandleFunc("/variants/sizes/{id}/delete", adminHandler.DeleteSizePost).Methods("POST")
	adminRouter.HandleFunc("/variants/colors/{id}/delete", adminHandler.DeleteColorPost).Methods("POST")

	router.PathPrefix(env.MediaURL).Handler(http.StripPrefix(env.MediaURL, http.FileServer(http.Dir(env.MediaRoot))))
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir(env.StaticDir))))

	return router
}
