package api

import (
	"net/http"

	"soyhub-be/internal/announcement"
	"soyhub-be/internal/cart"
	"soyhub-be/internal/logger"
	"soyhub-be/internal/metrics"
	"soyhub-be/internal/middleware"
	"soyhub-be/internal/order"
	"soyhub-be/internal/product"
	"soyhub-be/internal/user"
	"soyhub-be/internal/utils"

	"github.com/go-chi/chi/v5"
)

// Deps collects the services the router exposes.
type Deps struct {
	UserSvc     user.Service
	ProductSvc  product.Service
	CartSvc     cart.Service
	OrderSvc    order.Service
	AnnSvc      announcement.Service
	DeliveryFee float64
}

func NewRouter(deps Deps) http.Handler {
	authH := NewAuthHandler(deps.UserSvc)
	productH := NewProductHandler(deps.ProductSvc)
	cartH := NewCartHandler(deps.CartSvc, deps.DeliveryFee)
	orderH := NewOrderHandler(deps.OrderSvc)
	annH := NewAnnouncementHandler(deps.AnnSvc)

	r := chi.NewRouter()

	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(middleware.AuthMiddleware)
	r.Use(middleware.RateLimitMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/signup", authH.SignUp)
		r.Post("/auth/login", authH.Login)

		r.Get("/products", productH.List)
		r.Get("/announcements", annH.ListActive)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/me", authH.Me)

			r.Get("/cart", cartH.Get)
			r.Post("/cart/items", cartH.Add)
			r.Put("/cart/items/{productID}", cartH.SetQuantity)
			r.Delete("/cart/items/{productID}", cartH.Remove)

			r.Post("/orders", orderH.Checkout)
			r.Get("/orders", orderH.ListMine)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Get("/orders", orderH.ListAll)
			r.Get("/orders/stats", orderH.Stats)
			r.Put("/orders/{orderID}/status", orderH.SetStatus)

			r.Put("/products/{productID}/availability", productH.SetAvailability)

			r.Get("/announcements", annH.ListAll)
			r.Post("/announcements", annH.Create)
			r.Put("/announcements/{announcementID}", annH.Update)
			r.Delete("/announcements/{announcementID}", annH.Delete)
		})
	})

	return r
}
