package catalog

import "strings"

// Filter applies the search query and the selected provider pill to the
// catalog. Both narrow independently: the query matches case-insensitive
// substrings of the company name, and a non-nil provider keeps only that
// provider's rows. An empty query matches everything. Order is preserved.
func Filter(companies []Company, query string, provider *Provider) []Company {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]Company, 0, len(companies))
	for _, c := range companies {
		if provider != nil && c.Provider != *provider {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(c.Name), q) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ByProvider keeps only rows for one provider, ignoring query and selection.
func ByProvider(companies []Company, p Provider) []Company {
	out := make([]Company, 0, len(companies))
	for _, c := range companies {
		if c.Provider == p {
			out = append(out, c)
		}
	}
	return out
}

// Displayed resolves what the grid shows. A hover preview takes precedence
// over the filtered result set and always previews against the full catalog,
// so hovering a pill shows every company on that provider even while a query
// or pill selection is active.
func Displayed(hovered *Provider, filtered, all []Company) []Company {
	if hovered != nil {
		return ByProvider(all, *hovered)
	}
	return filtered
}
