package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/hello", h.hello)
		r.Post("/api/signup", h.signup)
		r.Post("/api/login", h.login)
	})

	// routes protected by a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/profile", h.profile)
		r.Post("/api/logout", h.logout)
	})

	return router
}
