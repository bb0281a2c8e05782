package catalog

import "testing"

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare domain", "stripe.com", "stripe.com"},
		{"uppercase", "Stripe.COM", "stripe.com"},
		{"https with www", "https://www.stripe.com", "stripe.com"},
		{"http scheme", "http://example.org", "example.org"},
		{"trailing path", "https://shopify.com/pricing", "shopify.com"},
		{"bare domain with path", "shopify.com/pricing", "shopify.com"},
		{"query string", "datadog.com?ref=x", "datadog.com"},
		{"port stripped", "localhost:8080", "localhost"},
		{"scheme host port", "https://www.example.com:443/x", "example.com"},
		{"surrounding whitespace", "  netflix.com  ", "netflix.com"},
		{"www only prefix", "www.nytimes.com", "nytimes.com"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"subdomain kept", "blog.cloudflare.com", "blog.cloudflare.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDomain(tt.input); got != tt.want {
				t.Errorf("NormalizeDomain(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		domain string
		want   string
	}{
		{"stripe.com", "Stripe"},
		{"netflix.com", "Netflix"},
		{"8x8.com", "8x8"},
		{"blog.cloudflare.com", "Blog"},
		{"über.com", "Über"},
		{"日本.jp", "日本"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.domain); got != tt.want {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.domain, got, tt.want)
		}
	}
}

func TestCompanyCustom(t *testing.T) {
	seeded := Company{Name: "Netflix", Symbol: "NFLX", Domain: "netflix.com", Provider: ProviderAWS}
	added := Company{Name: "Stripe", Symbol: CustomSymbol, Domain: "stripe.com", Provider: ProviderOther}
	if seeded.Custom() {
		t.Error("seed entry should not be custom")
	}
	if !added.Custom() {
		t.Error("session entry should be custom")
	}
}
