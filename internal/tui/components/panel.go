package components

import (
	"strings"

	"cloudboard/internal/tui/design"
	"cloudboard/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// PanelType defines the visual style of a panel
type PanelType int

const (
	PanelTypeDefault PanelType = iota
	PanelTypeSuccess
	PanelTypeError
	PanelTypeWarning
	PanelTypeInfo
)

// Panel represents a reusable panel component
type Panel struct {
	Title   string
	Content string
	Width   int
	Height  int
	Focused bool
	Type    PanelType
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title:  title,
		Width:  design.MinPanelWidth,
		Height: design.MinPanelHeight,
		Type:   PanelTypeDefault,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithDimensions sets the panel dimensions
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// WithType sets the panel type for styling
func (p *Panel) WithType(panelType PanelType) *Panel {
	p.Type = panelType
	return p
}

// SetFocused updates the focus state
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// Render returns the styled panel
func (p *Panel) Render() string {
	// Ensure minimum dimensions
	if p.Width < design.MinPanelWidth {
		p.Width = design.MinPanelWidth
	}
	if p.Height < design.MinPanelHeight {
		p.Height = design.MinPanelHeight
	}

	style := p.getStyle()

	// Calculate inner dimensions
	innerWidth := p.Width - style.GetHorizontalFrameSize()
	innerHeight := p.Height - style.GetVerticalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	var lines []string

	if p.Title != "" {
		lines = append(lines, p.renderTitle(innerWidth))
		if p.Content != "" {
			lines = append(lines, "") // separator
		}
	}

	if p.Content != "" {
		contentLines := strings.Split(p.Content, "\n")
		availableHeight := innerHeight - len(lines)

		if availableHeight > 0 {
			if len(contentLines) > availableHeight {
				if availableHeight > 1 {
					contentLines = contentLines[:availableHeight-1]
					contentLines = append(contentLines, "...")
				} else {
					contentLines = []string{"..."}
				}
			}

			for _, line := range contentLines {
				if lipgloss.Width(line) > innerWidth {
					line = utils.TruncateWithEllipsis(line, innerWidth)
				}
				lines = append(lines, line)
			}
		}
	}

	// Pad to fill height
	for len(lines) < innerHeight {
		lines = append(lines, "")
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	content := strings.Join(lines, "\n")
	return style.
		Width(p.Width).
		Height(p.Height).
		Render(content)
}

// getStyle returns the appropriate style based on panel state
func (p *Panel) getStyle() lipgloss.Style {
	baseStyle := design.PanelStyle
	if p.Focused {
		baseStyle = design.PanelFocusedStyle
	}

	switch p.Type {
	case PanelTypeSuccess:
		return baseStyle.Copy().BorderForeground(design.ColorSuccess)
	case PanelTypeError:
		return baseStyle.Copy().BorderForeground(design.ColorError)
	case PanelTypeWarning:
		return baseStyle.Copy().BorderForeground(design.ColorWarning)
	case PanelTypeInfo:
		return baseStyle.Copy().BorderForeground(design.ColorInfo)
	default:
		return baseStyle
	}
}

// renderTitle renders the panel title, truncated to the inner width
func (p *Panel) renderTitle(width int) string {
	if p.Title == "" {
		return ""
	}

	titleStyle := design.TitleStyle
	if p.Focused {
		titleStyle = titleStyle.Copy().Foreground(design.ColorPrimary)
	}

	title := p.Title
	if lipgloss.Width(title) > width {
		title = utils.TruncateWithEllipsis(title, width)
	}

	return titleStyle.Render(title)
}
