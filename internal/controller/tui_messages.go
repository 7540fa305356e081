package controller

import (
	"time"

	m "github.com/mouse-blink/tripsplice/internal/model"
)

// Message types.
type tickMsg time.Time

type sectionsMsg struct {
	rows  []rowItem
	files int
}

type batchInfoMsg struct {
	files   int
	edits   int
	threads int
}

type fileResultMsg struct {
	rows []rowItem
}

type reportsMsg struct {
	rows []rowItem
}

type errorMsg struct {
	err error
}

// List item types.
type rowItem struct {
	badge  string
	path   string
	label  string
	ok     bool
	detail string
}

func (r rowItem) FilterValue() string {
	return r.path + " " + r.label + " " + r.badge
}

func (r rowItem) text() string {
	if r.label == "" {
		return r.path
	}

	return r.path + "  " + r.label
}

func sectionRows(sections map[m.Path][]m.SectionSummary) []rowItem {
	var rows []rowItem

	for _, path := range sortedPaths(sections) {
		for _, summary := range sections[path] {
			rows = append(rows, rowItem{
				badge: elementCount(summary),
				path:  string(path),
				label: sectionLabel(summary),
				ok:    summary.FieldFound,
			})
		}
	}

	return rows
}

func reportRows(reports []m.Report) []rowItem {
	rows := make([]rowItem, 0, len(reports))

	for _, report := range reports {
		row := rowItem{
			badge: report.Status.String(),
			path:  string(report.Source.Path),
			label: report.Edit,
			ok:    report.Status == m.Applied,
		}

		if report.Diff != nil {
			row.detail = *report.Diff
		}

		rows = append(rows, row)
	}

	return rows
}
