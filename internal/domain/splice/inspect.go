package splice

import (
	m "github.com/mouse-blink/tripsplice/internal/model"
)

// Inspect lists every block of the given component types (all known types
// when none are given) with the size of its array prop.
func Inspect(code string, types ...m.ComponentType) []m.SectionSummary {
	if len(types) == 0 {
		types = m.Components()
	}

	var summaries []m.SectionSummary

	for _, ct := range types {
		for _, block := range FindBlocks(code, ct.Tag) {
			summary := m.SectionSummary{
				Component: ct,
				Ordinal:   block.Ordinal,
				Span:      block.Span,
			}

			if field, ok := ExtractArrayField(block.Text, ct.Field); ok {
				summary.FieldFound = true
				summary.Elements = len(field.Elements)
			}

			summaries = append(summaries, summary)
		}
	}

	return summaries
}
