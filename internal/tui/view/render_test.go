package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudboard/internal/catalog"
	"cloudboard/internal/tui/components"
	"cloudboard/internal/tui/model"
)

// newTestModel builds a dashboard-ready model around a small fixed catalog.
func newTestModel(t *testing.T) *model.Model {
	t.Helper()

	store := catalog.NewStore([]catalog.Company{
		{Name: "Netflix", Symbol: "NFLX", Domain: "netflix.com", Provider: catalog.ProviderAWS},
		{Name: "Airbnb", Symbol: "ABNB", Domain: "airbnb.com", Provider: catalog.ProviderAWS},
		{Name: "Spotify", Symbol: "SPOT", Domain: "spotify.com", Provider: catalog.ProviderGCP},
		{Name: "Adobe", Symbol: "ADBE", Domain: "adobe.com", Provider: catalog.ProviderAzure},
	})

	m := model.InitialModel(store, nil, false, nil)
	m.Width = 100
	m.Height = 30
	m.CurrentAppMode = model.ModeDashboard
	return m
}

func TestRender_Quitting(t *testing.T) {
	m := newTestModel(t)
	m.CurrentAppMode = model.ModeQuitting
	m.QuittingMessage = "Shutting down. Goodbye!"

	assert.Contains(t, Render(m), "Shutting down. Goodbye!")

	m.QuittingMessage = ""
	assert.Contains(t, Render(m), "Goodbye!")
}

func TestRender_InitializingBeforeWindowSize(t *testing.T) {
	m := newTestModel(t)
	m.CurrentAppMode = model.ModeInitializing
	m.Width = 0
	m.Height = 0

	out := Render(m)
	assert.Contains(t, out, "Loading catalog...")
	// No window size yet, so the frame must not be padded to a canvas.
	assert.LessOrEqual(t, len(strings.Split(out, "\n")), 2)
}

func TestRenderDashboard_ShowsCatalog(t *testing.T) {
	m := newTestModel(t)

	out := Render(m)

	assert.Contains(t, out, "Cloud Provider Dashboard")
	assert.Contains(t, out, "Companies (4)")
	assert.Contains(t, out, "Provider Share")
	assert.Contains(t, out, "Big 3 share:")
	assert.Contains(t, out, "Netflix")
	assert.Contains(t, out, "SPOT")
	assert.Contains(t, out, "adobe.com")
	assert.Contains(t, out, "4 companies")
}

func TestRenderDashboard_FilterNarrowsGrid(t *testing.T) {
	m := newTestModel(t)
	m.SearchInput.SetValue("spotify")

	out := Render(m)

	assert.Contains(t, out, "Companies (1)")
	assert.Contains(t, out, "Spotify")
	assert.NotContains(t, out, "Netflix")
	assert.Contains(t, out, `search "spotify"`)
}

func TestRenderDashboard_HoverPreviewWinsOverFilter(t *testing.T) {
	m := newTestModel(t)
	m.SearchInput.SetValue("netflix")
	m.Focus = model.FocusPills
	m.PillCursor = 3 // GCP
	m.SyncHoverToPill()
	require.NotNil(t, m.HoveredProvider)

	out := Render(m)

	// Preview evaluates against the full catalog, ignoring the query.
	assert.Contains(t, out, "Companies (1)")
	assert.Contains(t, out, "Spotify")
	assert.NotContains(t, out, "Netflix")
	assert.Contains(t, out, "previewing GCP")
}

func TestRenderDashboard_EmptyStates(t *testing.T) {
	m := newTestModel(t)
	m.SearchInput.SetValue("zzz-no-match")
	assert.Contains(t, Render(m), "No companies match the current filter.")

	empty := model.InitialModel(catalog.NewStore(nil), nil, false, nil)
	empty.Width = 100
	empty.Height = 30
	empty.CurrentAppMode = model.ModeDashboard
	out := Render(empty)
	assert.Contains(t, out, "Catalog is empty. Press a to add a company.")
	assert.Contains(t, out, "Catalog empty")
}

func TestRenderDashboard_StatusMessageReplacesInfo(t *testing.T) {
	m := newTestModel(t)
	m.StatusBarMessage = "Company already exists"
	m.StatusBarMessageType = model.StatusBarWarning

	out := Render(m)
	assert.Contains(t, out, "Company already exists")
	assert.NotContains(t, out, "4 companies")
}

func TestRenderAddOverlay(t *testing.T) {
	m := newTestModel(t)
	m.CurrentAppMode = model.ModeAddInput

	out := Render(m)
	assert.Contains(t, out, "Add Company")
	assert.Contains(t, out, "enter submit, esc cancel")

	m.IsDetecting = true
	out = Render(m)
	assert.Contains(t, out, "Detecting cloud provider...")
	assert.NotContains(t, out, "enter submit")
}

func TestRenderHelpOverlay(t *testing.T) {
	m := newTestModel(t)
	m.CurrentAppMode = model.ModeHelpOverlay

	out := Render(m)
	assert.Contains(t, out, "Keyboard Shortcuts")
	assert.Contains(t, out, "search")
	assert.Contains(t, out, "add company")
}

func TestRenderLogOverlay(t *testing.T) {
	m := newTestModel(t)
	m.CurrentAppMode = model.ModeLogOverlay
	model.AddRawLineToActivityLog(m, "12:00:00 [INFO] detect: probing netflix.com")
	model.AddRawLineToActivityLog(m, "12:00:01 [ERROR] detect: lookup failed")

	out := Render(m)

	assert.Contains(t, out, "Activity Log")
	assert.Contains(t, out, "probing netflix.com")
	assert.Contains(t, out, "lookup failed")
	assert.False(t, m.ActivityLogDirty, "render should consume the dirty flag")
}

func TestRenderLogOverlay_Empty(t *testing.T) {
	m := newTestModel(t)
	m.CurrentAppMode = model.ModeLogOverlay

	assert.Contains(t, Render(m), "No activity yet")
}

func TestGridRow_SessionEntryCarriesCustomTag(t *testing.T) {
	c := catalog.Company{
		Name:     "Stripe",
		Symbol:   catalog.CustomSymbol,
		Domain:   "stripe.com",
		Provider: catalog.ProviderOther,
	}

	row := gridRow(c, 10, 14, "  ", false)
	assert.Contains(t, row, components.CustomTag())

	// The cursor row is a single highlighted span, so the tag appears plain.
	cursor := gridRow(c, 10, 14, "  ", true)
	assert.Contains(t, cursor, catalog.CustomSymbol)
}

func TestGridWindow(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		visible   int
		cursor    int
		wantStart int
		wantEnd   int
	}{
		{"all fit", 5, 10, 0, 0, 5},
		{"cursor at top", 100, 10, 0, 0, 10},
		{"cursor centered", 100, 10, 50, 45, 55},
		{"cursor at bottom", 100, 10, 99, 90, 100},
		{"near bottom clamps", 100, 10, 96, 90, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := gridWindow(tt.total, tt.visible, tt.cursor)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
			if tt.total > tt.visible {
				assert.GreaterOrEqual(t, tt.cursor, start)
				assert.Less(t, tt.cursor, end)
			}
		})
	}
}

func TestGridColumnWidths_FitInnerWidth(t *testing.T) {
	for _, innerWidth := range []int{40, 45, 60, 94, 120} {
		nameW, domainW := gridColumnWidths(innerWidth)
		total := nameW + domainW + gridSymbolWidth + gridProviderWidth + 3*gridGap
		assert.LessOrEqual(t, total, max(innerWidth, 8+gridSymbolWidth+gridProviderWidth+3*gridGap),
			"width %d", innerWidth)
		assert.GreaterOrEqual(t, nameW, 4)
		assert.GreaterOrEqual(t, domainW, 4)
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		value, total int
		want         string
	}{
		{0, 0, "0%"},
		{1, 3, "33%"},
		{2, 3, "67%"},
		{5, 10, "50%"},
		{21, 21, "100%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, percent(tt.value, tt.total))
	}
}
