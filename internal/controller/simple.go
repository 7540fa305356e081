package controller

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/tripsplice/internal/model"
)

// SimpleUI implements UI using cobra Command's writers and plain tables.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// Wait returns immediately; there is nothing to dismiss.
func (s *SimpleUI) Wait() {

}

// DisplayEdit prints the edit status followed by the diff, if any.
func (s *SimpleUI) DisplayEdit(path m.Path, edit m.Edit, result m.EditResult, diff string) {
	s.printf("%s: %s -> %s\n", path, edit, result.Status)

	if diff != "" {
		s.printf("\n%s", diff)
	}
}

// DisplaySections prints one row per located component block.
func (s *SimpleUI) DisplaySections(sections map[m.Path][]m.SectionSummary, err error) error {
	if err != nil {
		s.printf("listing error: %v\n", err)
		return err
	}

	paths := sortedPaths(sections)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Section", "Elements"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0

	for _, path := range paths {
		for _, summary := range sections[path] {
			table.Append([]string{string(path), sectionLabel(summary), elementCount(summary)})

			total++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(paths)),
		"",
		fmt.Sprintf("%d", total),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayBatchInfo prints the size of the upcoming batch.
func (s *SimpleUI) DisplayBatchInfo(files int, edits int, threads int) {
	s.printf("Applying %d edit(s) to %d file(s) with %d worker(s)\n", edits, files, threads)
}

// DisplayFileResult prints the outcome of each edit applied to one file.
func (s *SimpleUI) DisplayFileResult(result m.FileResult) {
	s.printf("%s\n", result.Source.Path)

	for _, report := range result.Reports {
		s.printf("  %-24s %s\n", report.Status, report.Edit)
	}
}

// DisplayReports prints stored reports as a table.
func (s *SimpleUI) DisplayReports(reports []m.Report, err error) error {
	if err != nil {
		s.printf("report error: %v\n", err)
		return err
	}

	if len(reports) == 0 {
		s.printf("no reports found\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Edit", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	applied := 0

	for _, report := range reports {
		table.Append([]string{string(report.Source.Path), report.Edit, report.Status.String()})

		if report.Status == m.Applied {
			applied++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Edits %d", len(reports)),
		"",
		fmt.Sprintf("%d applied", applied),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func sortedPaths(sections map[m.Path][]m.SectionSummary) []m.Path {
	paths := make([]m.Path, 0, len(sections))
	for path := range sections {
		paths = append(paths, path)
	}

	sort.Slice(paths, func(i, j int) bool {
		return paths[i] < paths[j]
	})

	return paths
}
