// Package controller provides output adapters for displaying edit results,
// section listings and stored reports.
package controller

import (
	"strconv"

	m "github.com/mouse-blink/tripsplice/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeSections StartMode = iota
	ModeBatch
	ModeReports
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithSectionsMode sets the UI to section listing mode.
func WithSectionsMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSections
	}
}

// WithBatchMode sets the UI to batch progress mode.
func WithBatchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeBatch
	}
}

// WithReportsMode sets the UI to stored report browsing mode.
func WithReportsMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeReports
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeSections}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for presenting tripsplice results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayEdit(path m.Path, edit m.Edit, result m.EditResult, diff string)
	DisplaySections(sections map[m.Path][]m.SectionSummary, err error) error
	DisplayBatchInfo(files int, edits int, threads int)
	DisplayFileResult(result m.FileResult)
	DisplayReports(reports []m.Report, err error) error
}

// sectionLabel renders "AirplaneSection#1" style identifiers.
func sectionLabel(s m.SectionSummary) string {
	return s.Component.Tag + "#" + strconv.Itoa(s.Ordinal)
}

// elementCount renders the element count, or "-" when the prop is missing.
func elementCount(s m.SectionSummary) string {
	if !s.FieldFound {
		return "-"
	}

	return strconv.Itoa(s.Elements)
}
