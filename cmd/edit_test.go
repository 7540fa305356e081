package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/tripsplice/internal/domain"
	m "github.com/mouse-blink/tripsplice/internal/model"
)

func TestEditCmd_PassesEditThrough(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want domain.EditArgs
	}{
		{
			name: "remove hotel in place",
			args: []string{"edit", "Trip.jsx", "-c", "hotels", "--op", "remove", "--section", "1", "--element", "2", "-i"},
			want: domain.EditArgs{
				Source:  "Trip.jsx",
				Edit:    m.Edit{Op: m.OpRemove, Component: m.ComponentHotels, SectionIndex: 1, ElementIndex: 2},
				InPlace: true,
			},
		},
		{
			name: "add flight with record and output",
			args: []string{"edit", "Trip.jsx", "--component", "Flights", "--op", "ADD", "-s", "1", "-r", "flight.yaml", "-o", "out.jsx"},
			want: domain.EditArgs{
				Source: "Trip.jsx",
				Edit:   m.Edit{Op: m.OpAdd, Component: m.ComponentFlights, SectionIndex: 1},
				Record: "flight.yaml",
				Output: "out.jsx",
			},
		},
		{
			name: "strict update from stdin",
			args: []string{"edit", "-", "-c", "flights", "--op", "update", "-r", "flight.json", "--strict"},
			want: domain.EditArgs{
				Source: domain.StdinPath,
				Edit:   m.Edit{Op: m.OpUpdate, Component: m.ComponentFlights},
				Record: "flight.json",
				Strict: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockWorkflow := setupMockWorkflow(t)

			mockWorkflow.EXPECT().Edit(tt.want).Return(nil)

			err := executeCmd(newEditCmd(), tt.args...)
			require.NoError(t, err)
		})
	}
}

func TestEditCmd_InvalidFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "unknown component",
			args:    []string{"edit", "Trip.jsx", "-c", "trains", "--op", "remove"},
			wantErr: `unknown component "trains"`,
		},
		{
			name:    "unknown operation",
			args:    []string{"edit", "Trip.jsx", "-c", "hotels", "--op", "swap"},
			wantErr: `unsupported operation: "swap"`,
		},
		{
			name:    "negative index",
			args:    []string{"edit", "Trip.jsx", "-c", "hotels", "--op", "remove", "--element", "-1"},
			wantErr: "must not be negative",
		},
		{
			name:    "missing component",
			args:    []string{"edit", "Trip.jsx", "--op", "remove"},
			wantErr: `required flag(s) "component" not set`,
		},
		{
			name:    "missing file",
			args:    []string{"edit", "-c", "hotels", "--op", "remove"},
			wantErr: "accepts 1 arg(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupMockWorkflow(t)

			err := executeCmd(newEditCmd(), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
