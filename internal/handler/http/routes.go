package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// health endpoint stays outside every limiter
	router.Get("/health", h.health)

	// routes without authorization, throttled harder
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit(h.authLimiter))

		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	// rate check runs before token validation so that unauthenticated floods
	// never reach the parser
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit(h.apiLimiter))
		r.Use(h.auth)

		r.Get("/me", h.me)

		r.Route("/clientes", func(r chi.Router) {
			r.Post("/", h.createCliente)
			r.Get("/", h.searchClientes)
			r.Get("/todos", h.getAllClientes)
			r.Get("/{id}", h.getCliente)
			r.Put("/{id}", h.updateCliente)
			r.Delete("/{id}", h.deleteCliente)
		})
	})

	return router
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
