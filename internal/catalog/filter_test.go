package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCompanies() []Company {
	return []Company{
		{Name: "Netflix", Symbol: "NFLX", Domain: "netflix.com", Provider: ProviderAWS},
		{Name: "Spotify", Symbol: "SPOT", Domain: "spotify.com", Provider: ProviderGCP},
		{Name: "Adobe", Symbol: "ADBE", Domain: "adobe.com", Provider: ProviderAzure},
		{Name: "Airbnb", Symbol: "ABNB", Domain: "airbnb.com", Provider: ProviderAWS},
		{Name: "Zoom", Symbol: "ZM", Domain: "zoom.us", Provider: ProviderOracle},
	}
}

func TestFilterQueryOnly(t *testing.T) {
	all := testCompanies()
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query keeps all", "", []string{"Netflix", "Spotify", "Adobe", "Airbnb", "Zoom"}},
		{"matches name", "net", []string{"Netflix"}},
		{"case insensitive", "NETFLIX", []string{"Netflix"}},
		{"name only, not symbol", "abnb", []string{}},
		{"name only, not domain", "zoom.us", []string{}},
		{"substring across rows", "a", []string{"Adobe", "Airbnb"}},
		{"no match", "zzz", []string{}},
		{"whitespace trimmed", "  net  ", []string{"Netflix"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(all, tt.query, nil)
			names := make([]string, 0, len(got))
			for _, c := range got {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestFilterProviderAndQueryCombine(t *testing.T) {
	all := testCompanies()
	aws := ProviderAWS

	got := Filter(all, "", &aws)
	assert.Len(t, got, 2)

	// Both narrow at once: AWS rows containing "air".
	got = Filter(all, "air", &aws)
	assert.Len(t, got, 1)
	assert.Equal(t, "Airbnb", got[0].Name)

	// A query that only matches outside the selected provider yields nothing.
	got = Filter(all, "spotify", &aws)
	assert.Empty(t, got)
}

func TestFilterPreservesOrder(t *testing.T) {
	all := testCompanies()
	got := Filter(all, "o", nil)
	names := make([]string, 0, len(got))
	for _, c := range got {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Spotify", "Adobe", "Zoom"}, names)
}

func TestDisplayedHoverPrecedence(t *testing.T) {
	all := testCompanies()
	gcp := ProviderGCP
	aws := ProviderAWS

	// With a hover active, the filtered set is ignored and the preview runs
	// against the full catalog.
	filtered := Filter(all, "netflix", &aws)
	shown := Displayed(&gcp, filtered, all)
	assert.Len(t, shown, 1)
	assert.Equal(t, "Spotify", shown[0].Name)

	// No hover: the filtered set is shown as-is.
	shown = Displayed(nil, filtered, all)
	assert.Len(t, shown, 1)
	assert.Equal(t, "Netflix", shown[0].Name)
}

func TestByProvider(t *testing.T) {
	all := testCompanies()
	assert.Len(t, ByProvider(all, ProviderAWS), 2)
	assert.Len(t, ByProvider(all, ProviderOracle), 1)
	assert.Empty(t, ByProvider(all, ProviderAlibaba))
}
