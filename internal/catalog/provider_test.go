package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseProvider(t *testing.T) {
	tests := []struct {
		input string
		want  Provider
	}{
		{"AWS", ProviderAWS},
		{"aws", ProviderAWS},
		{"Amazon Web Services", ProviderAWS},
		{"Azure", ProviderAzure},
		{"microsoft azure", ProviderAzure},
		{"GCP", ProviderGCP},
		{"Google Cloud", ProviderGCP},
		{"Oracle", ProviderOracle},
		{"OCI", ProviderOracle},
		{"Alibaba", ProviderAlibaba},
		{"aliyun", ProviderAlibaba},
		{"Other", ProviderOther},
		{"DigitalOcean", ProviderOther},
		{"", ProviderOther},
		{"  gcp  ", ProviderGCP},
	}
	for _, tt := range tests {
		if got := ParseProvider(tt.input); got != tt.want {
			t.Errorf("ParseProvider(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestProviderStringRoundTrip(t *testing.T) {
	for _, p := range Providers() {
		assert.Equal(t, p, ParseProvider(p.String()), "String output must parse back to the same provider")
	}
}

func TestProvidersCanonicalOrder(t *testing.T) {
	want := []Provider{ProviderAWS, ProviderAzure, ProviderGCP, ProviderOracle, ProviderAlibaba, ProviderOther}
	assert.Equal(t, want, Providers())
}

func TestProviderChartColors(t *testing.T) {
	seen := map[string]Provider{}
	for _, p := range Providers() {
		color := p.ChartColor()
		require.Regexp(t, `^#[0-9A-F]{6}$`, color)
		prev, dup := seen[color]
		assert.False(t, dup, "color %s reused by %v and %v", color, prev, p)
		seen[color] = p
	}
}

func TestProviderJSONRoundTrip(t *testing.T) {
	c := Company{Name: "Spotify", Symbol: "SPOT", Domain: "spotify.com", Provider: ProviderGCP}
	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"provider":"GCP"`)

	var back Company
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, ProviderGCP, back.Provider)
}

func TestProviderYAMLUnmarshalAlias(t *testing.T) {
	var c Company
	src := "name: Zoom\nsymbol: ZM\ndomain: zoom.us\nprovider: oracle cloud\n"
	require.NoError(t, yaml.Unmarshal([]byte(src), &c))
	assert.Equal(t, ProviderOracle, c.Provider)
}
