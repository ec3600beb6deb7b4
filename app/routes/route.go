package routes

import (
	"net/http"

	"github.com/Rakhulsr/cloth-cafe/app/handlers"
	"github.com/Rakhulsr/cloth-cafe/app/handlers/admin"
	"github.com/Rakhulsr/cloth-cafe/app/logger"
	"github.com/Rakhulsr/cloth-cafe/app/metrics"
	"github.com/Rakhulsr/cloth-cafe/app/middlewares"
	"github.com/Rakhulsr/cloth-cafe/app/services"
	"github.com/Rakhulsr/cloth-cafe/app/store"
	"github.com/Rakhulsr/cloth-cafe/app/utils/sessions"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

type Dependencies struct {
	Store    *store.Store
	Relay    services.NotificationRelay
	Auth     services.Authenticator
	Sessions sessions.SessionStore
	Metrics  *metrics.Metrics
	Logger   *zap.Logger
	Render   *render.Render
}

func NewRouter(deps Dependencies) *mux.Router {
	router := mux.NewRouter()
	router.Use(middlewares.RecoverMiddleware, logger.Middleware(deps.Logger), deps.Metrics.Middleware)

	catalogSvc := services.NewCatalogService(deps.Store, deps.Logger)
	cartSvc := services.NewCartService(deps.Store, deps.Logger)
	orderSvc := services.NewOrderService(deps.Store, deps.Relay, deps.Metrics, deps.Logger)
	membershipSvc := services.NewMembershipService(deps.Store, deps.Relay, deps.Metrics, deps.Logger)
	newsletterSvc := services.NewNewsletterService(deps.Relay, deps.Metrics, deps.Logger)
	siteSvc := services.NewSiteService(deps.Store, deps.Logger)

	productHandler := handlers.NewProductHandler(catalogSvc, siteSvc, deps.Render)
	cartHandler := handlers.NewCartHandler(cartSvc, deps.Render)
	checkoutHandler := handlers.NewCheckoutHandler(orderSvc, deps.Render)
	orderHandler := handlers.NewOrderHandler(orderSvc, deps.Render)
	membershipHandler := handlers.NewMembershipHandler(membershipSvc, newsletterSvc, deps.Render)
	authHandler := handlers.NewAuthHandler(deps.Auth, deps.Sessions, deps.Metrics, deps.Render)
	adminHandler := admin.NewAdminHandler(deps.Render, catalogSvc, orderSvc, membershipSvc, siteSvc)

	router.Handle("/metrics", deps.Metrics.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		deps.Render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/products", productHandler.Products).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", productHandler.Product).Methods(http.MethodGet)
	api.HandleFunc("/categories", productHandler.Categories).Methods(http.MethodGet)
	api.HandleFunc("/site-config", productHandler.SiteConfig).Methods(http.MethodGet)

	api.HandleFunc("/cart", cartHandler.GetCart).Methods(http.MethodGet)
	api.HandleFunc("/cart/items", cartHandler.AddItem).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{key}", cartHandler.UpdateItem).Methods(http.MethodPatch)
	api.HandleFunc("/cart/items/{key}", cartHandler.RemoveItem).Methods(http.MethodDelete)

	api.HandleFunc("/checkout/quote", checkoutHandler.Quote).Methods(http.MethodPost)
	api.HandleFunc("/checkout", checkoutHandler.Checkout).Methods(http.MethodPost)
	api.HandleFunc("/membership-codes/validate", checkoutHandler.ValidateMembershipCode).Methods(http.MethodPost)

	api.HandleFunc("/orders", orderHandler.Orders).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", orderHandler.Order).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}/shipping", orderHandler.UpdateShipping).Methods(http.MethodPut)
	api.HandleFunc("/orders/{id}/cancel", orderHandler.Cancel).Methods(http.MethodPost)
	api.HandleFunc("/orders/{id}/invoice", orderHandler.Invoice).Methods(http.MethodGet)

	api.HandleFunc("/profile", membershipHandler.Profile).Methods(http.MethodGet)
	api.HandleFunc("/profile/membership-code", membershipHandler.ActivateCode).Methods(http.MethodPost)
	api.HandleFunc("/membership/requests", membershipHandler.RequestMembership).Methods(http.MethodPost)
	api.HandleFunc("/newsletter", membershipHandler.Subscribe).Methods(http.MethodPost)

	api.HandleFunc("/admin/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/admin/logout", authHandler.Logout).Methods(http.MethodPost)

	adminRouter := api.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middlewares.AdminAuthMiddleware(deps.Sessions, deps.Render))

	adminRouter.HandleFunc("/dashboard", adminHandler.Dashboard).Methods(http.MethodGet)

	adminRouter.HandleFunc("/products", adminHandler.GetProducts).Methods(http.MethodGet)
	adminRouter.HandleFunc("/products", adminHandler.AddProduct).Methods(http.MethodPost)
	adminRouter.HandleFunc("/products/{id}", adminHandler.EditProduct).Methods(http.MethodPut)
	adminRouter.HandleFunc("/products/{id}", adminHandler.DeleteProduct).Methods(http.MethodDelete)

	adminRouter.HandleFunc("/categories", adminHandler.GetCategories).Methods(http.MethodGet)
	adminRouter.HandleFunc("/categories", adminHandler.AddCategory).Methods(http.MethodPost)
	adminRouter.HandleFunc("/categories/{id}", adminHandler.EditCategory).Methods(http.MethodPut)
	adminRouter.HandleFunc("/categories/{id}", adminHandler.DeleteCategory).Methods(http.MethodDelete)

	adminRouter.HandleFunc("/orders", adminHandler.GetOrders).Methods(http.MethodGet)
	adminRouter.HandleFunc("/orders/{id}/status", adminHandler.UpdateOrderStatus).Methods(http.MethodPut)

	adminRouter.HandleFunc("/membership-requests", adminHandler.GetMembershipRequests).Methods(http.MethodGet)
	adminRouter.HandleFunc("/membership-requests/{id}/approve", adminHandler.ApproveMembership).Methods(http.MethodPost)
	adminRouter.HandleFunc("/membership-requests/{id}/reject", adminHandler.RejectMembership).Methods(http.MethodPost)
	adminRouter.HandleFunc("/members", adminHandler.GetMembers).Methods(http.MethodGet)
	adminRouter.HandleFunc("/members/{id}", adminHandler.RevokeMember).Methods(http.MethodDelete)

	adminRouter.HandleFunc("/site-config", adminHandler.UpdateSiteConfig).Methods(http.MethodPut)

	return router
}
