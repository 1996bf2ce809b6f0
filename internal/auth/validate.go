package auth

import "regexp"

// Same shape rule the signup form applies: non-whitespace local and domain
// parts around a single @, with a dotted domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(email string) bool {
	if len(email) < 3 || len(email) > 255 {
		return false
	}
	return emailPattern.MatchString(email)
}

func ValidPassword(password string) bool {
	return len(password) >= 6 && len(password) <= 255
}
