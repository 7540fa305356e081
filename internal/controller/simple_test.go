package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/tripsplice/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_DisplaySections_PrintsTable(t *testing.T) {
	ui, buf := newTestSimpleUI()

	sections := map[m.Path][]m.SectionSummary{
		"src/b/Trip.jsx": {
			{Component: m.ComponentHotels, Ordinal: 0, FieldFound: true, Elements: 2},
		},
		"src/a/Trip.jsx": {
			{Component: m.ComponentFlights, Ordinal: 0, FieldFound: true, Elements: 1},
			{Component: m.ComponentFlights, Ordinal: 1, FieldFound: false},
		},
	}

	require.NoError(t, ui.DisplaySections(sections, nil))

	output := buf.String()
	for _, want := range []string{
		"src/a/Trip.jsx",
		"src/b/Trip.jsx",
		"AirplaneSection#0",
		"AirplaneSection#1",
		"HotelsSection#0",
		"-",
		"TOTAL FILES 2",
		"3",
	} {
		assert.Containsf(t, output, want, "output:\n%s", output)
	}

	assert.Less(t, strings.Index(output, "src/a/Trip.jsx"), strings.Index(output, "src/b/Trip.jsx"))
}

func TestSimpleUI_DisplaySections_Error(t *testing.T) {
	ui, buf := newTestSimpleUI()
	boom := errors.New("boom")

	err := ui.DisplaySections(nil, boom)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, buf.String(), "listing error: boom")
}

func TestSimpleUI_DisplayEdit(t *testing.T) {
	ui, buf := newTestSimpleUI()
	edit := m.Edit{Op: m.OpRemove, Component: m.ComponentHotels, SectionIndex: 0, ElementIndex: 1}

	ui.DisplayEdit("Trip.jsx", edit, m.EditResult{Status: m.Applied, Changed: true}, "--- a/Trip.jsx\n+++ b/Trip.jsx\n")

	output := buf.String()
	assert.Contains(t, output, "Trip.jsx: remove hotels[0][1] -> applied")
	assert.Contains(t, output, "+++ b/Trip.jsx")

	buf.Reset()
	ui.DisplayEdit("Trip.jsx", edit, m.EditResult{Status: m.LastElementProtected}, "")
	assert.Equal(t, "Trip.jsx: remove hotels[0][1] -> last element protected\n", buf.String())
}

func TestSimpleUI_DisplayBatch(t *testing.T) {
	ui, buf := newTestSimpleUI()

	ui.DisplayBatchInfo(2, 3, 4)
	ui.DisplayFileResult(m.FileResult{
		Source: m.File{Path: "Trip.jsx"},
		Reports: []m.Report{
			{Edit: "add flights[1]", Status: m.Applied},
			{Edit: "update hotels[3][0]", Status: m.BlockNotFound},
		},
	})

	output := buf.String()
	assert.Contains(t, output, "Applying 3 edit(s) to 2 file(s) with 4 worker(s)")
	assert.Contains(t, output, "Trip.jsx\n")
	assert.Contains(t, output, "applied")
	assert.Contains(t, output, "block not found")
	assert.Contains(t, output, "update hotels[3][0]")
}

func TestSimpleUI_DisplayReports(t *testing.T) {
	t.Run("table with totals", func(t *testing.T) {
		ui, buf := newTestSimpleUI()

		reports := []m.Report{
			{Source: m.File{Path: "a.jsx"}, Edit: "add flights[0]", Status: m.Applied},
			{Source: m.File{Path: "a.jsx"}, Edit: "remove flights[0][0]", Status: m.LastElementProtected},
		}

		require.NoError(t, ui.DisplayReports(reports, nil))

		output := buf.String()
		assert.Contains(t, output, "add flights[0]")
		assert.Contains(t, output, "last element protected")
		assert.Contains(t, output, "TOTAL EDITS 2")
		assert.Contains(t, output, "1 APPLIED")
	})

	t.Run("empty", func(t *testing.T) {
		ui, buf := newTestSimpleUI()

		require.NoError(t, ui.DisplayReports(nil, nil))
		assert.Equal(t, "no reports found\n", buf.String())
	})

	t.Run("error", func(t *testing.T) {
		ui, buf := newTestSimpleUI()

		assert.Error(t, ui.DisplayReports(nil, errors.New("disk")))
		assert.Contains(t, buf.String(), "report error: disk")
	})
}

func TestSimpleUI_Lifecycle(t *testing.T) {
	ui, buf := newTestSimpleUI()

	require.NoError(t, ui.Start(WithReportsMode()))
	ui.Wait()
	ui.Close()

	assert.Empty(t, buf.String())
}

func TestStartOptions(t *testing.T) {
	assert.Equal(t, ModeSections, newStartConfig(nil).mode)
	assert.Equal(t, ModeBatch, newStartConfig([]StartOption{WithBatchMode()}).mode)
	assert.Equal(t, ModeReports, newStartConfig([]StartOption{WithSectionsMode(), WithReportsMode()}).mode)
}
