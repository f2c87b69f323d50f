// Package validate contains the contact-input checks used by checkout.
package validate

import (
	"html"
	"regexp"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	moneroPattern = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]+$`)
)

// IsValidEmail reports whether s looks like local@domain.tld: no whitespace,
// exactly one @, and at least one dot after it.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidMoneroAddress performs a syntactic sanity check on a Monero address:
// length 90-106 and Base58 alphabet (no 0, O, I or l). No checksum
// verification.
func IsValidMoneroAddress(s string) bool {
	if len(s) < 90 || len(s) > 106 {
		return false
	}
	return moneroPattern.MatchString(s)
}

// SanitizeText escapes <, >, &, and quotes so user-supplied text is safe to
// embed in rendered markup.
func SanitizeText(s string) string {
	return html.EscapeString(s)
}
