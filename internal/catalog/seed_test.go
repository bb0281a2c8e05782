package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeedIsClean(t *testing.T) {
	seed := DefaultSeed()
	require.NotEmpty(t, seed)

	seen := map[string]bool{}
	for _, c := range seed {
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Symbol)
		assert.NotEqual(t, CustomSymbol, c.Symbol, "seed entries must carry real symbols")
		assert.Equal(t, NormalizeDomain(c.Domain), c.Domain, "%s: seed domains are stored pre-normalized", c.Name)
		assert.False(t, seen[c.Domain], "duplicate seed domain %s", c.Domain)
		seen[c.Domain] = true
	}

	// Netflix on AWS anchors the dashboard's canonical example.
	netflix, ok := NewStore(seed).Get("netflix.com")
	require.True(t, ok)
	assert.Equal(t, "NFLX", netflix.Symbol)
	assert.Equal(t, ProviderAWS, netflix.Provider)
}

func TestDefaultSeedCoversAllProviders(t *testing.T) {
	counts := Counts(DefaultSeed())
	for _, p := range Providers() {
		assert.Greater(t, counts[p], 0, "seed should include at least one %s company", p)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := `- name: Stripe
  symbol: STRP
  domain: stripe.com
  provider: aws
- name: Shopify
  symbol: SHOP
  domain: shopify.com
  provider: Google Cloud
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	companies, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, ProviderAWS, companies[0].Provider)
	assert.Equal(t, ProviderGCP, companies[1].Provider)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFileMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not: [valid"), 0644))
	_, err := LoadFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing catalog file")
}
