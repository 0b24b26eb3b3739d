package validators

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	gmailRe = regexp.MustCompile(`(?i)^[\w.%+-]+@gmail\.com$`)
	phoneRe = regexp.MustCompile(`^09\d{9}$`)
)

// IsGmail reports whether the address is a Gmail one. Accounts are
// restricted to Gmail because OTP mail goes out through a Gmail relay.
func IsGmail(email string) bool {
	return gmailRe.MatchString(strings.TrimSpace(email))
}

// IsPhilippineMobile matches the local 09xxxxxxxxx mobile format.
func IsPhilippineMobile(phone string) bool {
	return phoneRe.MatchString(CleanPhone(phone))
}

// CleanPhone strips spaces and dashes so stored numbers stay uniform.
func CleanPhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, phone)
}

// IsStrongPassword requires at least 8 characters with a lowercase, an
// uppercase, a digit and a symbol.
func IsStrongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}
	return lower && upper && digit && special
}
