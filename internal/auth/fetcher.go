package auth

import (
	"github.com/QuickTask/QT-Backend/internal/db"
	"github.com/QuickTask/QT-Backend/internal/middleware"
)

// SessionInfo adapts the sessions table to middleware.SessionFetcher.
type SessionInfo struct{}

func (si SessionInfo) FindSessionByID(id string) (middleware.SessionData, error) {
	var session Session

	err := db.DB.First(&session, "session_id = ?", id).Error
	if err != nil {
		return middleware.SessionData{}, err
	}

	return middleware.SessionData{
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
	}, nil
}
