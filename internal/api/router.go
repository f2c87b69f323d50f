package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/example/secureshop/internal/metrics"
)

func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/products", h.GetProducts)
	r.Get("/products/{id}", h.GetProduct)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)
		r.Post("/items", h.AddToCart)
		r.Put("/items/{productId}", h.UpdateCartItem)
		r.Delete("/items/{productId}", h.RemoveFromCart)
	})

	r.Post("/checkout", h.Checkout)

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}
