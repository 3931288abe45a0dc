package utils

import "strings"

// IsValidEmail checks if the email string looks like an address. Real
// validation happens when mail is actually sent; this only catches obvious
// typos at intake.
func IsValidEmail(email string) bool {
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

// IsValidName checks the client name constraint: non-blank, at most 100
// characters.
func IsValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return trimmed != "" && len(name) <= 100
}
