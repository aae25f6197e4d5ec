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
		r.Get("/api/health", h.health)

		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/refresh", h.refresh)
		r.Post("/api/auth/password-reset/request", h.requestPasswordReset)
		r.Post("/api/auth/password-reset/confirm", h.confirmPasswordReset)

		// validate-token reports validity in the body instead of failing at
		// the middleware, so it performs its own token check.
		r.Get("/api/auth/validate-token", h.validateToken)
	})

	// routes that require a valid access token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)
		r.Put("/api/auth/me", h.updateMe)
		r.Post("/api/auth/change-password", h.changePassword)

		r.Get("/api/todos", h.listTodos)
		r.Post("/api/todos", h.createTodo)
		r.Get("/api/todos/{todoID}", h.getTodo)
		r.Put("/api/todos/{todoID}", h.updateTodo)
		r.Delete("/api/todos/{todoID}", h.deleteTodo)

		r.Post("/api/ai/generate-description", h.generateDescription)
		r.Post("/api/ai/improve-title", h.improveTitle)
		r.Post("/api/ai/suggestions", h.generateSuggestions)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
