package domain

import (
	"github.com/sirupsen/logrus"

	"github.com/mouse-blink/tripsplice/internal/domain/splice"
	m "github.com/mouse-blink/tripsplice/internal/model"
)

// Editor applies structural edits to generated source text. Edits that
// cannot be applied leave the text untouched and are logged, never raised.
type Editor interface {
	Apply(code string, edit m.Edit) m.EditResult
	Sections(code string) []m.SectionSummary
}

type editor struct {
	log *logrus.Logger
}

// NewEditor creates an Editor that reports no-op edits through log.
func NewEditor(log *logrus.Logger) Editor {
	return &editor{log: log}
}

// Apply runs the edit and logs its outcome.
func (e *editor) Apply(code string, edit m.Edit) m.EditResult {
	result := splice.Apply(code, edit)

	fields := logrus.Fields{
		"op":        edit.Op,
		"component": edit.Component.Name,
		"section":   edit.SectionIndex,
	}
	if edit.Op != m.OpAdd {
		fields["element"] = edit.ElementIndex
	}

	if result.Status == m.Applied {
		e.log.WithFields(fields).Info("edit applied")
		return result
	}

	fields["status"] = result.Status.String()
	e.log.WithFields(fields).Warn("edit skipped, source left unchanged")

	return result
}

// Sections lists every flights and hotels block in code.
func (e *editor) Sections(code string) []m.SectionSummary {
	return splice.Inspect(code)
}
