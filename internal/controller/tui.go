package controller

import (
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/tripsplice/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	started bool
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the interactive list for the requested mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)

	var model tea.Model = newBrowseModel(cfg.mode)

	if width, height, ok := terminalSize(t.output); ok {
		model, _ = model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	}

	return t.startWithModel(model)
}

// terminalSize reports the size of w when it is a terminal.
func terminalSize(w io.Writer) (int, int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}

	return width, height, true
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	opts := []tea.ProgramOption{tea.WithOutput(t.output)}
	if IsTTY(t.output) {
		opts = append(opts, tea.WithAltScreen())
	} else {
		opts = append(opts, tea.WithInput(nil))
	}

	t.program = tea.NewProgram(model, opts...)
	t.done = make(chan struct{})
	t.started = true

	go func(p *tea.Program, done chan struct{}) {
		defer close(done)

		_, _ = p.Run()
	}(t.program, t.done)

	return nil
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if !started {
		_ = t.Start()
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Close stops the program and waits for it to restore the terminal.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	t.Wait()
}

// Wait blocks until the user quits the interactive list.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// DisplayEdit prints a styled status line and the colored diff. A single
// edit is not browsable so no program is started.
func (t *TUI) DisplayEdit(path m.Path, edit m.Edit, result m.EditResult, diff string) {
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	_, _ = fmt.Fprintf(t.output, "%s  %s  %s\n",
		statusStyle(result.Status == m.Applied).Render(result.Status.String()),
		edit,
		pathStyle.Render(string(path)),
	)

	if diff != "" {
		_, _ = fmt.Fprintf(t.output, "\n%s\n", renderDiff(diff, 0))
	}
}

// DisplaySections sends the located sections to the list.
func (t *TUI) DisplaySections(sections map[m.Path][]m.SectionSummary, err error) error {
	t.ensureStarted()

	if err != nil {
		t.send(errorMsg{err: err})
		return err
	}

	t.send(sectionsMsg{rows: sectionRows(sections), files: len(sections)})

	return nil
}

// DisplayBatchInfo resets the batch progress.
func (t *TUI) DisplayBatchInfo(files int, edits int, threads int) {
	t.send(batchInfoMsg{files: files, edits: edits, threads: threads})
}

// DisplayFileResult appends one file's edit outcomes.
func (t *TUI) DisplayFileResult(result m.FileResult) {
	t.send(fileResultMsg{rows: reportRows(result.Reports)})
}

// DisplayReports sends stored reports to the list.
func (t *TUI) DisplayReports(reports []m.Report, err error) error {
	t.ensureStarted()

	if err != nil {
		t.send(errorMsg{err: err})
		return err
	}

	t.send(reportsMsg{rows: reportRows(reports)})

	return nil
}
