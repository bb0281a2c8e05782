package catalog

import (
	"net"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CustomSymbol marks companies added during the session, as opposed to seed
// entries that carry a real ticker symbol.
const CustomSymbol = "CUSTOM"

// Company is a single catalog entry. Domain is always stored in normalized
// form (see NormalizeDomain) and acts as the identity key for deduplication.
type Company struct {
	Name     string   `json:"name" yaml:"name"`
	Symbol   string   `json:"symbol" yaml:"symbol"`
	Domain   string   `json:"domain" yaml:"domain"`
	Provider Provider `json:"provider" yaml:"provider"`
}

// Custom reports whether the entry was added at runtime rather than seeded.
func (c Company) Custom() bool {
	return c.Symbol == CustomSymbol
}

// NormalizeDomain reduces raw user input to a bare lowercase domain:
// surrounding whitespace and any http/https scheme plus path are removed,
// a leading "www." and a trailing port are stripped. The result is the
// canonical identity used for duplicate detection, detection requests and
// logo lookups.
func NormalizeDomain(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	lower := strings.ToLower(s)
	for _, scheme := range []string{"http://", "https://"} {
		if !strings.HasPrefix(lower, scheme) {
			continue
		}
		if u, err := url.Parse(s); err == nil && u.Host != "" {
			s = u.Host
		} else {
			s = s[len(scheme):]
		}
		break
	}
	// Drop any path fragment pasted alongside a bare domain.
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	if host, _, err := net.SplitHostPort(s); err == nil && host != "" {
		s = host
	}
	s = strings.TrimPrefix(strings.ToLower(s), "www.")
	return s
}

// DisplayName derives a company name from a normalized domain: the label
// before the first dot, with its first letter uppercased. "stripe.com"
// becomes "Stripe".
func DisplayName(domain string) string {
	label := domain
	if i := strings.IndexByte(label, '.'); i > 0 {
		label = label[:i]
	}
	if label == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(label)
	return string(unicode.ToUpper(r)) + label[size:]
}
