package adapter

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/tripsplice/internal/model"
)

func sampleReports() []m.Report {
	diff := "--- a/Trip.jsx\n+++ b/Trip.jsx\n"

	return []m.Report{
		{
			Source: m.File{Path: "/trip/b/Trip.jsx", Hash: "bbb"},
			Edit:   "remove hotels[0][1]",
			Status: m.Applied,
			Diff:   &diff,
		},
		{
			Source: m.File{Path: "/trip/a/Trip.jsx", Hash: "aaa"},
			Edit:   "update hotels[3][0]",
			Status: m.BlockNotFound,
		},
		{
			Source: m.File{Path: "/trip/b/Trip.jsx", Hash: "bbb"},
			Edit:   "add flights[1]",
			Status: m.Applied,
		},
	}
}

func TestLocalReportStore_SaveAndLoad(t *testing.T) {
	store := NewReportStore()
	dir := m.Path(filepath.Join(t.TempDir(), "reports"))

	require.NoError(t, store.SaveReports(dir, sampleReports()))

	entries, err := os.ReadDir(string(dir))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	namePattern := regexp.MustCompile(`^[0-9a-f]{16}\.yaml$`)
	for _, entry := range entries {
		assert.Regexp(t, namePattern, entry.Name())
	}

	loaded, err := store.LoadReports(dir)
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	assert.Equal(t, m.Path("/trip/a/Trip.jsx"), loaded[0].Source.Path)
	assert.Equal(t, m.BlockNotFound, loaded[0].Status)
	assert.Nil(t, loaded[0].Diff)

	var withDiff int
	for _, r := range loaded[1:] {
		assert.Equal(t, m.Path("/trip/b/Trip.jsx"), r.Source.Path)
		assert.Equal(t, m.Applied, r.Status)
		if r.Diff != nil {
			withDiff++
		}
	}
	assert.Equal(t, 1, withDiff)
}

func TestLocalReportStore_SaveIsIdempotent(t *testing.T) {
	store := NewReportStore()
	dir := m.Path(t.TempDir())

	require.NoError(t, store.SaveReports(dir, sampleReports()))
	require.NoError(t, store.SaveReports(dir, sampleReports()))

	loaded, err := store.LoadReports(dir)
	require.NoError(t, err)
	assert.Len(t, loaded, 3)
}

func TestLocalReportStore_RegenerateIndex(t *testing.T) {
	store := NewReportStore()
	dir := m.Path(t.TempDir())

	require.NoError(t, store.SaveReports(dir, sampleReports()))
	require.NoError(t, store.RegenerateIndex(dir))

	data, err := os.ReadFile(filepath.Join(string(dir), indexFileName))
	require.NoError(t, err)

	var idx indexEntry
	require.NoError(t, yaml.Unmarshal(data, &idx))

	assert.Equal(t, 3, idx.TotalEdits)
	assert.Equal(t, 2, idx.AppliedEdits)
	assert.Equal(t, 1, idx.SkippedEdits)
	require.Len(t, idx.Result, 2)
	assert.Equal(t, "/trip/a/Trip.jsx", idx.Result[0].Source)
	assert.Equal(t, "aaa", idx.Result[0].SourceHex)
	assert.Len(t, idx.Result[0].Reports, 1)
	assert.Len(t, idx.Result[1].Reports, 2)

	loaded, err := store.LoadReports(dir)
	require.NoError(t, err)
	assert.Len(t, loaded, 3, "index file must not be read back as a report")
}

func TestLocalReportStore_Errors(t *testing.T) {
	store := NewReportStore()

	assert.EqualError(t, store.SaveReports("", nil), "reports directory path is required")

	_, err := store.LoadReports("")
	assert.EqualError(t, err, "reports directory path is required")

	reports, err := store.LoadReports(m.Path(filepath.Join(t.TempDir(), "missing")))
	assert.NoError(t, err)
	assert.Empty(t, reports)

	file := filepath.Join(t.TempDir(), "report.yaml")
	writeTestFile(t, file, "edit: x\n")

	_, err = store.LoadReports(m.Path(file))
	assert.ErrorContains(t, err, "path is not a directory")
}

func TestLocalReportStore_BadReportFile(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "0000000000000000.yaml"), "status: exploded\n")

	_, err := NewReportStore().LoadReports(m.Path(dir))
	assert.ErrorContains(t, err, "unknown edit status")
}
