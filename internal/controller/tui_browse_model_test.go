package controller

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/tripsplice/internal/model"
)

func sized(model browseModel) browseModel {
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(browseModel)
}

func update(t *testing.T, model browseModel, msg tea.Msg) browseModel {
	t.Helper()

	updated, _ := model.Update(msg)

	next, ok := updated.(browseModel)
	require.True(t, ok)

	return next
}

func TestAnimateScroll_Edges(t *testing.T) {
	assert.Equal(t, "", animateScroll("hello", 0, 0))
	assert.Equal(t, "hi", animateScroll("hi", 5, 0))
	assert.Equal(t, "ab…", animateScroll("abcdef", 3, 0))

	got := animateScroll("abcdef", 3, 10)
	assert.NotEqual(t, "ab…", got)
	assert.Len(t, []rune(got), 3)
}

func TestTruncateToWidth(t *testing.T) {
	assert.Equal(t, "", truncateToWidth("hello", 0))
	assert.Equal(t, "hello", truncateToWidth("hello", 10))
	assert.Equal(t, "…", truncateToWidth("hello", 1))
	assert.Equal(t, "h…", truncateToWidth("hello", 2))
}

func TestRenderDiff_KeepsLines(t *testing.T) {
	out := renderDiff("--- a/x\n+++ b/x\n@@ -1 +1 @@\n-old\n+new\n", 0)

	assert.Len(t, strings.Split(out, "\n"), 5)
	assert.Contains(t, out, "old")
	assert.Contains(t, out, "new")
}

func TestBrowseModel_Sections(t *testing.T) {
	model := newBrowseModel(ModeSections)
	assert.Equal(t, "Scanning sources…\n", model.View())

	model = sized(model)
	model = update(t, model, sectionsMsg{
		files: 1,
		rows: sectionRows(map[m.Path][]m.SectionSummary{
			"Trip.jsx": {
				{Component: m.ComponentFlights, Ordinal: 0, FieldFound: true, Elements: 1},
				{Component: m.ComponentHotels, Ordinal: 0, FieldFound: true, Elements: 2},
			},
		}),
	})

	require.True(t, model.rendered)
	assert.Equal(t, 0, model.lastSelected)
	assert.Len(t, model.rows.Items(), 2)

	view := model.View()
	assert.Contains(t, view, "Trip Sections")
	assert.Contains(t, view, "Elements")
	assert.Contains(t, view, "AirplaneSection#0")
}

func TestBrowseModel_BatchProgress(t *testing.T) {
	model := sized(newBrowseModel(ModeBatch))
	model = update(t, model, batchInfoMsg{files: 2, edits: 3, threads: 2})

	diff := "--- a/Trip.jsx\n+++ b/Trip.jsx\n"
	model = update(t, model, fileResultMsg{rows: reportRows([]m.Report{
		{Source: m.File{Path: "Trip.jsx"}, Edit: "add flights[1]", Status: m.Applied, Diff: &diff},
		{Source: m.File{Path: "Trip.jsx"}, Edit: "update hotels[3][0]", Status: m.BlockNotFound},
	})})

	assert.Equal(t, 1, model.filesDone)
	assert.Equal(t, 1, model.countOK())
	assert.Len(t, model.rows.Items(), 2)

	view := model.View()
	assert.Contains(t, view, "Batch Edit")
	assert.Contains(t, view, "block not found")
}

func TestBrowseModel_ToggleDiff(t *testing.T) {
	diff := "--- a/Trip.jsx\n+++ b/Trip.jsx\n@@ -1 +1 @@\n-a\n+b\n"

	model := sized(newBrowseModel(ModeReports))
	model = update(t, model, reportsMsg{rows: reportRows([]m.Report{
		{Source: m.File{Path: "Trip.jsx"}, Edit: "remove hotels[0][0]", Status: m.Applied, Diff: &diff},
		{Source: m.File{Path: "Trip.jsx"}, Edit: "remove hotels[0][0]", Status: m.LastElementProtected},
	})})

	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, model.showDiff)
	assert.Contains(t, model.View(), "+b")

	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, model.showDiff)

	// moving to a row without a diff keeps the pane closed
	model = update(t, model, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, model.lastSelected)

	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, model.showDiff)
}

func TestBrowseModel_Error(t *testing.T) {
	model := sized(newBrowseModel(ModeReports))
	model = update(t, model, errorMsg{err: errors.New("disk gone")})

	assert.Contains(t, model.View(), "Error: disk gone")
}

func TestBrowseModel_QuitKey(t *testing.T) {
	model := newBrowseModel(ModeSections)

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestBrowseModel_TickAdvancesAnimation(t *testing.T) {
	model := sized(newBrowseModel(ModeSections))
	model = update(t, model, sectionsMsg{rows: []rowItem{{badge: "1", path: "Trip.jsx", ok: true}}})

	updated, cmd := model.Update(tickMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, updated.(browseModel).animOffset)
}
