package auth

import (
	"github.com/QuickTask/QT-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes attaches the auth surface to the parent router. The paths
// live at the root (/signup, not /auth/signup), so this registers on the
// parent instead of mounting a subrouter.
func RegisterRoutes(r chi.Router) {
	sessionFetcher := SessionInfo{}

	r.Post("/signup", SignupHandler)
	r.Post("/signin", SigninHandler)

	// validate-user inspects the cookie itself so it can answer with its
	// own unauthenticated envelope instead of the middleware's.
	r.Get("/validate-user", ValidateUserHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(cfg.SessionCookieName, sessionFetcher))
		r.Get("/logout", LogoutHandler)
	})
}
