package domain

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/tripsplice/internal/model"
)

const twoFlights = `<AirplaneSection flights={[
  { date: "2024-01-01" },
  { date: "2024-01-02" }
]} />`

func TestEditor_Apply_LogsApplied(t *testing.T) {
	logger, hook := test.NewNullLogger()
	editor := NewEditor(logger)

	result := editor.Apply(twoFlights, m.Edit{Op: m.OpRemove, Component: m.ComponentFlights, ElementIndex: 1})

	require.Equal(t, m.Applied, result.Status)
	assert.True(t, result.Changed)
	assert.NotContains(t, result.Code, "2024-01-02")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "edit applied", entry.Message)
	assert.Equal(t, "flights", entry.Data["component"])
	assert.Equal(t, 1, entry.Data["element"])
}

func TestEditor_Apply_WarnsOnNoOp(t *testing.T) {
	tests := []struct {
		name       string
		edit       m.Edit
		wantStatus m.EditStatus
		hasElement bool
	}{
		{
			name:       "element out of range",
			edit:       m.Edit{Op: m.OpRemove, Component: m.ComponentFlights, ElementIndex: 5},
			wantStatus: m.ElementOutOfRange,
			hasElement: true,
		},
		{
			name:       "missing block",
			edit:       m.Edit{Op: m.OpAdd, Component: m.ComponentHotels, Hotel: &m.HotelRecord{City: "Oslo"}},
			wantStatus: m.BlockNotFound,
		},
		{
			name:       "missing record",
			edit:       m.Edit{Op: m.OpUpdate, Component: m.ComponentFlights},
			wantStatus: m.InvalidEdit,
			hasElement: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()
			editor := NewEditor(logger)

			result := editor.Apply(twoFlights, tt.edit)

			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, twoFlights, result.Code)
			assert.False(t, result.Changed)

			require.Len(t, hook.Entries, 1)
			entry := hook.LastEntry()
			assert.Equal(t, logrus.WarnLevel, entry.Level)
			assert.Equal(t, tt.wantStatus.String(), entry.Data["status"])
			assert.Equal(t, tt.edit.Component.Name, entry.Data["component"])
			assert.Equal(t, 0, entry.Data["section"])

			_, hasElement := entry.Data["element"]
			assert.Equal(t, tt.hasElement, hasElement)
		})
	}
}

func TestEditor_Sections(t *testing.T) {
	logger, _ := test.NewNullLogger()

	code := twoFlights + "\n<HotelsSection hotels={[]} />\n<HotelsSection title=\"x\" />"
	sections := NewEditor(logger).Sections(code)

	require.Len(t, sections, 3)
	assert.Equal(t, m.ComponentFlights, sections[0].Component)
	assert.Equal(t, 2, sections[0].Elements)
	assert.True(t, sections[1].FieldFound)
	assert.Equal(t, 0, sections[1].Elements)
	assert.False(t, sections[2].FieldFound)
}
