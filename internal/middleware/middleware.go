package middleware

import (
	"net/http"
	"time"

	"github.com/QuickTask/QT-Backend/internal/utils"
)

// SessionData is what a SessionFetcher resolves a cookie token into.
type SessionData struct {
	UserID    string
	ExpiresAt time.Time
}

type SessionFetcher interface {
	FindSessionByID(id string) (SessionData, error)
}

// SessionMiddleware rejects requests that do not carry a valid, unexpired
// session cookie and stores the owning account id on the request context.
func SessionMiddleware(cookieName string, fetcher SessionFetcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				utils.WriteJSON(w, http.StatusUnauthorized, map[string]any{
					"success": false,
					"error":   "Couldn't find cookie",
				})
				return
			}

			session, err := fetcher.FindSessionByID(cookie.Value)
			if err != nil {
				utils.WriteJSON(w, http.StatusUnauthorized, map[string]any{
					"success": false,
					"error":   "Couldn't find session",
				})
				return
			}

			if session.ExpiresAt.Before(time.Now()) {
				utils.WriteJSON(w, http.StatusUnauthorized, map[string]any{
					"success": false,
					"error":   "Session expired",
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), session.UserID)))
		})
	}
}

// CORSMiddleware echoes the origin back only if it is on the allow-list.
func CORSMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if _, ok := allowed[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin") // important for caches
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods",
					"GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers",
					"Content-Type, Authorization")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
