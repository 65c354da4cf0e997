// Package password enforces the registration password policy.
package password

import (
	"strings"
	"unicode"
)

const MinLength = 8

// Symbol set accepted as the required special character.
const specialChars = "!@#$%^&*()-_+=<>?/|{}[]~`"

// Check returns every rule the password fails to meet, phrased so the
// caller can join them into a single "Password must include ..." message.
// An empty slice means the password passes the policy.
func Check(password string) []string {
	var missing []string

	if len(password) < MinLength {
		missing = append(missing, "at least 8 characters")
	}

	var hasDigit, hasUpper, hasLower, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsDigit(c):
			hasDigit = true
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsLower(c):
			hasLower = true
		}
		if strings.ContainsRune(specialChars, c) {
			hasSpecial = true
		}
	}

	if !hasDigit {
		missing = append(missing, "a number")
	}
	if !hasUpper {
		missing = append(missing, "an uppercase letter")
	}
	if !hasLower {
		missing = append(missing, "a lowercase letter")
	}
	if !hasSpecial {
		missing = append(missing, "a special character")
	}

	return missing
}
