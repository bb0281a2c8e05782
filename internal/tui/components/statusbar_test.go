package components

import (
	"strings"
	"testing"

	"cloudboard/internal/tui/model"

	"github.com/stretchr/testify/assert"
)

func TestStatusBar_MessageReplacesTexts(t *testing.T) {
	bar := NewStatusBar(60).
		WithLeftText("21 companies").
		WithRightText("q quit").
		WithMessage("Company already exists", model.StatusBarError)

	output := bar.Render()
	assert.Contains(t, output, "Company already exists")
	assert.NotContains(t, output, "21 companies")

	bar.ClearMessage()
	output = bar.Render()
	assert.Contains(t, output, "21 companies")
	assert.Contains(t, output, "q quit")
}

func TestStatusBar_NarrowWidthKeepsLeftText(t *testing.T) {
	bar := NewStatusBar(18).
		WithLeftText("a rather long catalog summary").
		WithRightText("hints")

	// Should not panic and should keep a prefix of the left text.
	output := bar.Render()
	assert.NotEmpty(t, output)
	assert.NotContains(t, output, "hints")
}

func TestStatusBar_MessageTypes(t *testing.T) {
	for _, msgType := range []model.MessageType{
		model.StatusBarInfo,
		model.StatusBarSuccess,
		model.StatusBarError,
		model.StatusBarWarning,
	} {
		bar := NewStatusBar(40).WithMessage("message", msgType)
		assert.NotEmpty(t, bar.Render())
	}
}

func TestFormatCatalogInfo(t *testing.T) {
	tests := []struct {
		total   int
		session int
		want    string
	}{
		{0, 0, "Catalog empty"},
		{1, 0, "1 company"},
		{21, 0, "21 companies"},
		{23, 2, "23 companies (2 added this session)"},
	}
	for _, tt := range tests {
		if got := FormatCatalogInfo(tt.total, tt.session); got != tt.want {
			t.Errorf("FormatCatalogInfo(%d, %d) = %q, want %q", tt.total, tt.session, got, tt.want)
		}
	}
}

func TestPill_StatesRender(t *testing.T) {
	plain := Pill("AWS", 7, false, false)
	selected := Pill("AWS", 7, true, false)
	hovered := Pill("AWS", 7, false, true)

	for _, out := range []string{plain, selected, hovered} {
		assert.True(t, strings.Contains(out, "AWS"))
		assert.True(t, strings.Contains(out, "7"))
	}
}
