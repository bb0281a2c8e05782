package catalog

import (
	"fmt"
	"strings"
)

// Provider identifies the cloud vendor hosting a company, with Other as the
// bucket for anything outside the five tracked clouds.
type Provider int

const (
	ProviderAWS Provider = iota
	ProviderAzure
	ProviderGCP
	ProviderOracle
	ProviderAlibaba
	ProviderOther
)

// Providers returns all providers in canonical display order. The ordering
// is also the tie-breaker for equal chart slice values.
func Providers() []Provider {
	return []Provider{
		ProviderAWS,
		ProviderAzure,
		ProviderGCP,
		ProviderOracle,
		ProviderAlibaba,
		ProviderOther,
	}
}

// String provides the human-readable provider name.
func (p Provider) String() string {
	switch p {
	case ProviderAWS:
		return "AWS"
	case ProviderAzure:
		return "Azure"
	case ProviderGCP:
		return "GCP"
	case ProviderOracle:
		return "Oracle"
	case ProviderAlibaba:
		return "Alibaba"
	default:
		return "Other"
	}
}

// ChartColor returns the hex color used for this provider in the share chart,
// legend and pills. Unrecognized values fall back to the Other color.
func (p Provider) ChartColor() string {
	switch p {
	case ProviderAWS:
		return "#FF9900"
	case ProviderAzure:
		return "#0078D4"
	case ProviderGCP:
		return "#4285F4"
	case ProviderOracle:
		return "#C74634"
	case ProviderAlibaba:
		return "#FF6A00"
	default:
		return "#8B949E"
	}
}

// ParseProvider maps a provider name (as returned by the detection endpoint
// or written in a catalog file) onto the enum. Matching is case-insensitive
// and accepts the common vendor aliases; anything unrecognized lands in the
// Other bucket rather than failing.
func ParseProvider(s string) Provider {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "aws", "amazon", "amazon web services":
		return ProviderAWS
	case "azure", "microsoft", "microsoft azure":
		return ProviderAzure
	case "gcp", "google", "google cloud":
		return ProviderGCP
	case "oracle", "oci", "oracle cloud":
		return ProviderOracle
	case "alibaba", "aliyun", "alibaba cloud":
		return ProviderAlibaba
	default:
		return ProviderOther
	}
}

// MarshalJSON writes the provider as its display name.
func (p Provider) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", p.String())), nil
}

// UnmarshalJSON reads a provider from its display name (or alias).
func (p *Provider) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	*p = ParseProvider(s)
	return nil
}

// MarshalYAML writes the provider as its display name.
func (p Provider) MarshalYAML() (interface{}, error) {
	return p.String(), nil
}

// UnmarshalYAML reads a provider from its display name (or alias).
func (p *Provider) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	*p = ParseProvider(s)
	return nil
}
