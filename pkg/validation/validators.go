package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Two-part address shape: something@domain.tld with no whitespace.
	// Deliberately loose compared to full RFC 5322 - the relay rejects
	// anything undeliverable, this only guards against obvious typos.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("contact_email", ContactEmail)
}

// ContactEmail validates the simple local@domain.tld address shape
func ContactEmail(fl validator.FieldLevel) bool {
	return ValidEmail(fl.Field().String())
}

// ValidEmail reports whether addr matches local@domain.tld:
// at least one character before the @, between the @ and the last
// dot, and after the last dot, with no embedded whitespace.
func ValidEmail(addr string) bool {
	return emailRegex.MatchString(addr)
}
