package components

import (
	"fmt"

	"cloudboard/internal/catalog"
	"cloudboard/internal/tui/design"

	"github.com/charmbracelet/lipgloss"
)

// ProviderBadge renders a provider name in its chart color, either as plain
// colored text or as an inverse badge.
type ProviderBadge struct {
	Provider catalog.Provider
	Text     string
	Inverse  bool
}

// NewProviderBadge creates a badge for the given provider
func NewProviderBadge(p catalog.Provider) *ProviderBadge {
	return &ProviderBadge{Provider: p}
}

// WithText overrides the provider name
func (b *ProviderBadge) WithText(text string) *ProviderBadge {
	b.Text = text
	return b
}

// AsInverse renders the badge with the provider color as background
func (b *ProviderBadge) AsInverse() *ProviderBadge {
	b.Inverse = true
	return b
}

// Render returns the styled badge
func (b *ProviderBadge) Render() string {
	text := b.Text
	if text == "" {
		text = b.Provider.String()
	}
	return b.getStyle().Render(text)
}

func (b *ProviderBadge) getStyle() lipgloss.Style {
	if b.Inverse {
		return design.ProviderBadgeStyle(b.Provider.ChartColor())
	}
	return design.ProviderStyle(b.Provider.ChartColor())
}

// CustomTag renders the marker shown next to companies added this session.
func CustomTag() string {
	return design.GridCustomTagStyle.Render(catalog.CustomSymbol)
}

// Pill renders one provider pill with its company count. selected marks the
// sticky filter, hovered the transient preview.
func Pill(label string, count int, selected, hovered bool) string {
	text := fmt.Sprintf("%s %s", label, design.PillCountStyle.Render(fmt.Sprintf("%d", count)))

	switch {
	case selected:
		return design.PillSelectedStyle.Render(text)
	case hovered:
		return design.PillHoveredStyle.Render(text)
	default:
		return design.PillStyle.Render(text)
	}
}
