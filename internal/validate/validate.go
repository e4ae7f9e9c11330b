// Package validate holds the pure input predicates shared by the web and
// mobile surfaces. All checks are side-effect free string matches.
package validate

import "regexp"

var (
	// A ledger address is "xrb_" followed by exactly 60 alphanumerics.
	addressRe = regexp.MustCompile(`^xrb_[A-Za-z0-9]{60}$`)

	// Absolute URL: http/https/ftp/ftps scheme, hostname, IP or localhost,
	// optional port and path.
	webhookRe = regexp.MustCompile(`(?i)^(https?|ftps?)://([a-z0-9]([a-z0-9-]*[a-z0-9])?\.)*([a-z0-9]([a-z0-9-]*[a-z0-9])?)(:\d+)?(/[^\s]*)?$`)

	// Single @, non-empty local part, domain with at least one dot.
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// IsValidAddress reports whether s is a well-formed ledger address.
func IsValidAddress(s string) bool {
	return addressRe.MatchString(s)
}

// IsValidWebhook reports whether s is a well-formed absolute URL.
func IsValidWebhook(s string) bool {
	return webhookRe.MatchString(s)
}

// IsValidEmail reports whether s is a well-formed email address.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsValidPassword reports whether s is non-empty and at least 8 characters.
func IsValidPassword(s string) bool {
	return len(s) >= 8
}
