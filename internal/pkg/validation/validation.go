package validation

import (
	"regexp"
)

// emailRe matches the client-side rule: /^[^\s@]+@[^\s@]+\.[^\s@]+$/
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidPassword requires at least 6 characters (register form rule).
func IsValidPassword(password string) bool {
	return len(password) >= 6
}

// IsValidScoreRate bounds a scorer's adjustment rate to [-1, 1].
// Out-of-range rates are rejected at the boundary, never clamped.
func IsValidScoreRate(rate float64) bool {
	return rate >= -1 && rate <= 1
}
