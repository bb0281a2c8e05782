// Package avatar resolves company logo URLs through an ordered fallback
// chain: a primary logo provider, then a favicon service keyed by domain,
// then a generated-initials avatar keyed by display name. The chain is pure
// URL derivation; fetching and failure detection belong to the caller.
package avatar

import (
	"fmt"
	"net/url"
)

// Source identifies a stage of the fallback chain.
type Source int

const (
	SourcePrimary Source = iota
	SourceFavicon
	SourceGenerated
)

// String names the stage for logs.
func (s Source) String() string {
	switch s {
	case SourcePrimary:
		return "primary"
	case SourceFavicon:
		return "favicon"
	case SourceGenerated:
		return "generated"
	default:
		return "unknown"
	}
}

// URL builds the image URL for one stage.
func (s Source) URL(domain, name string) string {
	switch s {
	case SourcePrimary:
		return fmt.Sprintf("https://logo.clearbit.com/%s", url.PathEscape(domain))
	case SourceFavicon:
		return fmt.Sprintf("https://www.google.com/s2/favicons?domain=%s&sz=64", url.QueryEscape(domain))
	case SourceGenerated:
		q := url.Values{}
		q.Set("name", name)
		q.Set("background", "random")
		return "https://ui-avatars.com/api/?" + q.Encode()
	default:
		return ""
	}
}

// FirstSource returns the chain's entry point for a company.
func FirstSource(domain, name string) (string, Source) {
	return SourcePrimary.URL(domain, name), SourcePrimary
}

// NextFallback advances the chain after a load failure at current. The third
// return is false once the chain is exhausted; the caller then renders no
// image.
func NextFallback(current Source, domain, name string) (string, Source, bool) {
	switch current {
	case SourcePrimary:
		return SourceFavicon.URL(domain, name), SourceFavicon, true
	case SourceFavicon:
		return SourceGenerated.URL(domain, name), SourceGenerated, true
	default:
		return "", current, false
	}
}
