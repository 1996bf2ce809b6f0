package tasks

import (
	"net/http"

	"github.com/QuickTask/QT-Backend/internal/auth"
	"github.com/QuickTask/QT-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(cookieName string) http.Handler {
	r := chi.NewRouter()
	sessionFetcher := auth.SessionInfo{}

	// Every task route needs a logged-in caller, though the handlers still
	// trust the request's userId for scoping.
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(cookieName, sessionFetcher))
		r.Get("/", ListHandler)
		r.Post("/", CreateHandler)
		r.Put("/", UpdateHandler)
		r.Delete("/", DeleteHandler)
	})

	return r
}
