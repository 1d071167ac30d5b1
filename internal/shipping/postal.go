package shipping

import (
	"fmt"
	"strings"

	pkgerrors "github.com/mercadoviva/shipping-backend/pkg/errors"
)

// NormalizePostalCode strips everything but digits, so "01310-100" and
// "01310100" normalize to the same code.
func NormalizePostalCode(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePostalCode normalizes and checks the 8-digit format, returning the
// normalized code. Format errors fail the whole request before any seller
// work starts.
func ValidatePostalCode(raw string) (string, error) {
	code := NormalizePostalCode(raw)
	if len(code) != 8 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "postal code must have exactly 8 digits")
	}
	return code, nil
}

// FormatPostalCode renders a normalized code as "01310-100". Codes that are
// not 8 digits come back unchanged.
func FormatPostalCode(code string) string {
	normalized := NormalizePostalCode(code)
	if len(normalized) != 8 {
		return code
	}
	return fmt.Sprintf("%s-%s", normalized[:5], normalized[5:])
}
