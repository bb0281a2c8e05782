package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultSeed returns the built-in catalog used when no catalog file is
// configured. The list is a snapshot of well-known companies and their
// primary cloud, biased toward recognizable names so the dashboard is useful
// out of the box.
func DefaultSeed() []Company {
	return []Company{
		{Name: "Netflix", Symbol: "NFLX", Domain: "netflix.com", Provider: ProviderAWS},
		{Name: "Airbnb", Symbol: "ABNB", Domain: "airbnb.com", Provider: ProviderAWS},
		{Name: "Slack", Symbol: "WORK", Domain: "slack.com", Provider: ProviderAWS},
		{Name: "Pinterest", Symbol: "PINS", Domain: "pinterest.com", Provider: ProviderAWS},
		{Name: "Lyft", Symbol: "LYFT", Domain: "lyft.com", Provider: ProviderAWS},
		{Name: "Robinhood", Symbol: "HOOD", Domain: "robinhood.com", Provider: ProviderAWS},
		{Name: "Coinbase", Symbol: "COIN", Domain: "coinbase.com", Provider: ProviderAWS},
		{Name: "Adobe", Symbol: "ADBE", Domain: "adobe.com", Provider: ProviderAzure},
		{Name: "Walmart", Symbol: "WMT", Domain: "walmart.com", Provider: ProviderAzure},
		{Name: "FedEx", Symbol: "FDX", Domain: "fedex.com", Provider: ProviderAzure},
		{Name: "ASOS", Symbol: "ASC", Domain: "asos.com", Provider: ProviderAzure},
		{Name: "Spotify", Symbol: "SPOT", Domain: "spotify.com", Provider: ProviderGCP},
		{Name: "Snap", Symbol: "SNAP", Domain: "snap.com", Provider: ProviderGCP},
		{Name: "PayPal", Symbol: "PYPL", Domain: "paypal.com", Provider: ProviderGCP},
		{Name: "Twitter", Symbol: "TWTR", Domain: "twitter.com", Provider: ProviderGCP},
		{Name: "Zoom", Symbol: "ZM", Domain: "zoom.us", Provider: ProviderOracle},
		{Name: "8x8", Symbol: "EGHT", Domain: "8x8.com", Provider: ProviderOracle},
		{Name: "TikTok", Symbol: "BDNCE", Domain: "tiktok.com", Provider: ProviderAlibaba},
		{Name: "Lazada", Symbol: "LZD", Domain: "lazada.com", Provider: ProviderAlibaba},
		{Name: "Dropbox", Symbol: "DBX", Domain: "dropbox.com", Provider: ProviderOther},
		{Name: "Cloudflare", Symbol: "NET", Domain: "cloudflare.com", Provider: ProviderOther},
	}
}

// LoadFile reads a seed catalog from a YAML file. The file is a list of
// companies; provider names accept the same aliases as ParseProvider.
func LoadFile(path string) ([]Company, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	var companies []Company
	if err := yaml.Unmarshal(data, &companies); err != nil {
		return nil, fmt.Errorf("parsing catalog file %s: %w", path, err)
	}
	return companies, nil
}
