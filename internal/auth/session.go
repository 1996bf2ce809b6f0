package auth

import (
	"net/http"
	"time"

	"github.com/QuickTask/QT-Backend/internal/db"
	"github.com/google/uuid"
)

// CreateSession persists a fresh opaque session for the account and returns
// the cookie that carries it. TTL and cookie flags come from Init's config.
func CreateSession(userID string) (*http.Cookie, error) {
	session := Session{
		SessionID: uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(cfg.SessionTTL),
	}

	if err := db.DB.Create(&session).Error; err != nil {
		return nil, err
	}

	return sessionCookie(session.SessionID, session.ExpiresAt), nil
}

// InvalidateSession revokes the session outright. Revoked sessions are
// terminal; a later login issues a new token instead of reviving this one.
func InvalidateSession(sessionID string) error {
	return db.DB.Where("session_id = ?", sessionID).Delete(&Session{}).Error
}

// ValidateSession resolves a cookie token to its owning user. Absent and
// expired sessions both come back as (nil, nil); expired rows are deleted on
// sight rather than waiting for a background sweep.
func ValidateSession(sessionID string) (*User, error) {
	var session Session
	if err := db.DB.First(&session, "session_id = ?", sessionID).Error; err != nil {
		return nil, nil
	}

	if session.ExpiresAt.Before(time.Now()) {
		db.DB.Delete(&session)
		return nil, nil
	}

	var user User
	if err := db.DB.First(&user, "user_id = ?", session.UserID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   cfg.SecureCookies,
	}
}

// expiredCookie overwrites the session cookie in the browser on logout.
func expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     cfg.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   cfg.SecureCookies,
	}
}
