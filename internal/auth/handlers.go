package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/QuickTask/QT-Backend/internal/db"
	"github.com/QuickTask/QT-Backend/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func SignupHandler(w http.ResponseWriter, r *http.Request) {
	var creds credentials

	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request format"})
		return
	}

	// Validate shape before touching storage or the hasher.
	if !ValidEmail(creds.Email) {
		utils.WriteJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid email"})
		return
	}
	if !ValidPassword(creds.Password) {
		utils.WriteJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid password"})
		return
	}

	hashed, err := HashPassword(creds.Password)
	if err != nil {
		log.Println("Failed to hash password: ", err)
		utils.WriteJSON(w, http.StatusInternalServerError, map[string]any{"error": "Signup failed"})
		return
	}

	user := User{
		UserID:         uuid.NewString(),
		Email:          creds.Email,
		HashedPassword: hashed,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		// The unique index on email turns a duplicate signup into a
		// distinguishable error rather than a generic failure.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.WriteJSON(w, http.StatusConflict, map[string]any{"error": "Email already registered"})
			return
		}
		log.Println("Failed to create user: ", err)
		utils.WriteJSON(w, http.StatusInternalServerError, map[string]any{"error": "Signup failed"})
		return
	}

	cookie, err := CreateSession(user.UserID)
	if err != nil {
		log.Println("Failed to create session: ", err)
		utils.WriteJSON(w, http.StatusInternalServerError, map[string]any{"error": "Signup failed"})
		return
	}

	http.SetCookie(w, cookie)
	utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

func SigninHandler(w http.ResponseWriter, r *http.Request) {
	var creds credentials

	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid request format"})
		return
	}

	if !ValidEmail(creds.Email) {
		utils.WriteJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid email"})
		return
	}
	if !ValidPassword(creds.Password) {
		utils.WriteJSON(w, http.StatusBadRequest, map[string]any{"error": "Invalid password"})
		return
	}

	// The not-found and wrong-password branches answer identically so a
	// caller can't probe which emails are registered.
	var user User
	if err := db.DB.First(&user, "email = ?", creds.Email).Error; err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, map[string]any{"error": "Incorrect email or password"})
		return
	}

	match, err := VerifyPassword(user.HashedPassword, creds.Password)
	if err != nil {
		log.Println("Failed to verify password: ", err)
		utils.WriteJSON(w, http.StatusInternalServerError, map[string]any{"error": "Signin failed"})
		return
	}
	if !match {
		utils.WriteJSON(w, http.StatusBadRequest, map[string]any{"error": "Incorrect email or password"})
		return
	}

	cookie, err := CreateSession(user.UserID)
	if err != nil {
		log.Println("Failed to create session: ", err)
		utils.WriteJSON(w, http.StatusInternalServerError, map[string]any{"error": "Signin failed"})
		return
	}

	http.SetCookie(w, cookie)
	utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	// Session middleware has already vouched for the cookie.
	cookie, err := r.Cookie(cfg.SessionCookieName)
	if err != nil {
		utils.WriteJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "error": "Couldn't find cookie"})
		return
	}

	if err := InvalidateSession(cookie.Value); err != nil {
		log.Println("Failed to invalidate session: ", err)
		utils.WriteJSON(w, http.StatusInternalServerError, map[string]any{"success": false, "error": "Logout failed"})
		return
	}

	http.SetCookie(w, expiredCookie())
	utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

func ValidateUserHandler(w http.ResponseWriter, r *http.Request) {
	// Not being logged in is an expected outcome here, never an error.
	cookie, err := r.Cookie(cfg.SessionCookieName)
	if err != nil {
		utils.WriteJSON(w, http.StatusUnauthorized, map[string]any{"isAuthenticated": false})
		return
	}

	user, err := ValidateSession(cookie.Value)
	if err != nil {
		log.Println("Failed to validate session: ", err)
		utils.WriteJSON(w, http.StatusInternalServerError, map[string]any{"isAuthenticated": false, "error": "Validation failed"})
		return
	}
	if user == nil {
		utils.WriteJSON(w, http.StatusUnauthorized, map[string]any{"isAuthenticated": false})
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"isAuthenticated": true,
		"user": map[string]string{
			"id":    user.UserID,
			"email": user.Email,
		},
	})
}
