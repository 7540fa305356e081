// Package domain holds the tripsplice use cases: single edits, section
// listings, batch plans and stored report browsing.
package domain

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/tripsplice/internal/adapter"
	"github.com/mouse-blink/tripsplice/internal/controller"
	"github.com/mouse-blink/tripsplice/internal/domain/splice"
	m "github.com/mouse-blink/tripsplice/internal/model"
)

// StdinPath selects standard input as the edit source.
const StdinPath m.Path = "-"

const defaultFilePerm os.FileMode = 0o644

// EditArgs describes a single edit against one source file.
type EditArgs struct {
	Source m.Path
	Edit   m.Edit
	// Record is a YAML or JSON record file; required for update and add
	// unless Edit already carries a record.
	Record m.Path
	// Output receives the edited code. Empty means stdout unless InPlace.
	Output  m.Path
	InPlace bool
	Strict  bool
}

// ListArgs selects the sources to inspect.
type ListArgs struct {
	Paths      []m.Path
	Extensions []string
	Exclude    []string
}

// BatchArgs configures a plan run.
type BatchArgs struct {
	Plan    m.Path
	Reports m.Path
	Threads int
	DryRun  bool
	Strict  bool
}

// ViewArgs points at a reports directory.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the user-facing tripsplice operations.
type Workflow interface {
	Edit(args EditArgs) error
	List(args ListArgs) error
	Batch(args BatchArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	recordStore adapter.RecordStore
	reportStore adapter.ReportStore
	ui          controller.UI
	editor      Editor
	log         *logrus.Logger
	stdin       io.Reader
	stdout      io.Writer
}

// Option customizes a Workflow.
type Option func(*workflow)

// WithStdio replaces the streams used for "-" sources and stdout output.
func WithStdio(in io.Reader, out io.Writer) Option {
	return func(w *workflow) {
		w.stdin = in
		w.stdout = out
	}
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	recordStore adapter.RecordStore,
	reportStore adapter.ReportStore,
	ui controller.UI,
	editor Editor,
	log *logrus.Logger,
	opts ...Option,
) Workflow {
	w := &workflow{
		fsAdapter:   fsAdapter,
		recordStore: recordStore,
		reportStore: reportStore,
		ui:          ui,
		editor:      editor,
		log:         log,
		stdin:       os.Stdin,
		stdout:      os.Stdout,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Edit applies one edit. The result goes to the source file (InPlace), to
// Output, or to stdout; status and diff are shown through the UI except when
// the code itself is written to stdout.
func (w *workflow) Edit(args EditArgs) error {
	if args.InPlace && args.Output != "" {
		return errors.New("in-place and output path are mutually exclusive")
	}

	if args.InPlace && args.Source == StdinPath {
		return errors.New("cannot edit standard input in place")
	}

	edit, err := w.attachRecord(args.Edit, args.Record)
	if err != nil {
		return err
	}

	before, err := w.readSource(args.Source)
	if err != nil {
		return err
	}

	result := w.editor.Apply(before, edit)

	if args.Strict && result.Status != m.Applied {
		return fmt.Errorf("%s %s: %w: %s", args.Source, edit, ErrNoChange, result.Status)
	}

	switch {
	case args.InPlace:
		if result.Changed {
			if err := w.writeFile(args.Source, result.Code); err != nil {
				return err
			}
		}
	case args.Output != "":
		if err := w.writeFile(args.Output, result.Code); err != nil {
			return err
		}
	default:
		if _, err := io.WriteString(w.stdout, result.Code); err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		return nil
	}

	diff := splice.DiffCode(before, result.Code, filepath.Base(string(args.Source)))
	w.ui.DisplayEdit(args.Source, edit, result, diff)

	return nil
}

// List shows every flights and hotels block found under the given paths.
func (w *workflow) List(args ListArgs) error {
	if err := w.ui.Start(controller.WithSectionsMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	sections, err := w.collectSections(args)
	if displayErr := w.ui.DisplaySections(sections, err); displayErr != nil {
		return displayErr
	}

	w.ui.Wait()

	return nil
}

func (w *workflow) collectSections(args ListArgs) (map[m.Path][]m.SectionSummary, error) {
	files, err := w.fsAdapter.Get(args.Paths, args.Extensions, args.Exclude)
	if err != nil {
		return nil, err
	}

	sections := make(map[m.Path][]m.SectionSummary)

	for _, file := range files {
		content, err := w.fsAdapter.ReadFile(file.Path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file.Path, err)
		}

		summaries := w.editor.Sections(string(content))
		w.log.WithFields(logrus.Fields{"path": file.Path, "sections": len(summaries)}).Debug("inspected source")

		if len(summaries) > 0 {
			sections[file.Path] = summaries
		}
	}

	return sections, nil
}

// Batch applies a plan. Files are edited in memory concurrently, edits within
// a file in order, each consuming the previous edit's output. Every file is
// read and edited before the first write; writes, display and reports then
// follow plan order.
func (w *workflow) Batch(args BatchArgs) error {
	plan, err := w.recordStore.LoadPlan(args.Plan)
	if err != nil {
		return err
	}

	if err := validatePlan(plan); err != nil {
		return err
	}

	plan = mergePlanFiles(plan, filepath.Dir(string(args.Plan)))

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	if err := w.ui.Start(controller.WithBatchMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	w.ui.DisplayBatchInfo(len(plan.Files), plan.EditCount(), threads)

	outcomes := make([]fileOutcome, len(plan.Files))

	var g errgroup.Group

	g.SetLimit(threads)

	for i, planFile := range plan.Files {
		g.Go(func() error {
			outcome, err := w.applyPlanFile(planFile)
			if err != nil {
				return err
			}

			outcomes[i] = outcome

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	var reports []m.Report

	skipped := 0

	for _, outcome := range outcomes {
		if !args.DryRun && outcome.changed {
			if err := w.writeFile(outcome.result.Source.Path, outcome.result.Code); err != nil {
				// Files written so far keep their reports.
				return errors.Join(err, w.saveReports(args.Reports, reports))
			}
		}

		w.ui.DisplayFileResult(outcome.result)

		for _, report := range outcome.result.Reports {
			if report.Status != m.Applied {
				skipped++
			}

			reports = append(reports, report)
		}
	}

	if !args.DryRun {
		if err := w.saveReports(args.Reports, reports); err != nil {
			return err
		}
	}

	w.log.WithFields(logrus.Fields{
		"files":   len(plan.Files),
		"edits":   len(reports),
		"skipped": skipped,
		"dry_run": args.DryRun,
	}).Info("batch finished")

	w.ui.Wait()

	if args.Strict && skipped > 0 {
		return fmt.Errorf("%w: %d of %d edits skipped", ErrNoChange, skipped, len(reports))
	}

	return nil
}

// fileOutcome is one plan file edited in memory.
type fileOutcome struct {
	result  m.FileResult
	changed bool
}

func (w *workflow) applyPlanFile(planFile m.PlanFile) (fileOutcome, error) {
	content, err := w.fsAdapter.ReadFile(planFile.Path)
	if err != nil {
		return fileOutcome{}, fmt.Errorf("read %s: %w", planFile.Path, err)
	}

	hash, err := w.fsAdapter.HashFile(planFile.Path)
	if err != nil {
		return fileOutcome{}, fmt.Errorf("hash error for %s: %w", planFile.Path, err)
	}

	source := m.File{Path: planFile.Path, Hash: hash}
	name := filepath.Base(string(planFile.Path))
	code := string(content)
	reports := make([]m.Report, 0, len(planFile.Edits))

	for _, edit := range planFile.Edits {
		result := w.editor.Apply(code, edit)
		report := m.Report{Source: source, Edit: edit.String(), Status: result.Status}

		if result.Changed {
			diff := splice.DiffCode(code, result.Code, name)
			report.Diff = &diff
		}

		code = result.Code
		reports = append(reports, report)
	}

	return fileOutcome{
		result:  m.FileResult{Source: source, Code: code, Reports: reports},
		changed: code != string(content),
	}, nil
}

func (w *workflow) saveReports(dir m.Path, reports []m.Report) error {
	if dir == "" {
		return nil
	}

	if err := w.reportStore.SaveReports(dir, reports); err != nil {
		return err
	}

	if err := w.reportStore.RegenerateIndex(dir); err != nil {
		return fmt.Errorf("regenerate report index: %w", err)
	}

	return nil
}

// View displays reports stored by previous batch runs.
func (w *workflow) View(args ViewArgs) error {
	if err := w.ui.Start(controller.WithReportsMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	reports, err := w.reportStore.LoadReports(args.Reports)
	if displayErr := w.ui.DisplayReports(reports, err); displayErr != nil {
		return displayErr
	}

	w.ui.Wait()

	return nil
}

func (w *workflow) attachRecord(edit m.Edit, recordPath m.Path) (m.Edit, error) {
	if !edit.Op.NeedsRecord() {
		return edit, nil
	}

	if recordPath != "" {
		switch edit.Component.Name {
		case m.ComponentFlights.Name:
			flight, err := w.recordStore.LoadFlight(recordPath)
			if err != nil {
				return m.Edit{}, err
			}

			edit.Flight = &flight
		case m.ComponentHotels.Name:
			hotel, err := w.recordStore.LoadHotel(recordPath)
			if err != nil {
				return m.Edit{}, err
			}

			edit.Hotel = &hotel
		default:
			return m.Edit{}, fmt.Errorf("unknown component %q", edit.Component.Name)
		}
	}

	record := edit.Record()
	if record == nil {
		return m.Edit{}, fmt.Errorf("%s needs a %s record", edit.Op, edit.Component.Name)
	}

	if err := record.Validate(); err != nil {
		return m.Edit{}, fmt.Errorf("%s record: %w", edit.Component.Name, err)
	}

	return edit, nil
}

func (w *workflow) readSource(path m.Path) (string, error) {
	if path == StdinPath {
		data, err := io.ReadAll(w.stdin)
		if err != nil {
			return "", fmt.Errorf("read standard input: %w", err)
		}

		return string(data), nil
	}

	data, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	return string(data), nil
}

// writeFile keeps the permissions of an existing file.
func (w *workflow) writeFile(path m.Path, code string) error {
	perm := defaultFilePerm
	if info, err := w.fsAdapter.FileInfo(path); err == nil {
		perm = info.Mode().Perm()
	}

	if err := w.fsAdapter.WriteFile(path, []byte(code), perm); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func validatePlan(plan m.Plan) error {
	for _, file := range plan.Files {
		for i, edit := range file.Edits {
			if !edit.Op.NeedsRecord() {
				continue
			}

			record := edit.Record()
			if record == nil {
				return fmt.Errorf("plan file %s edit %d: %s needs a %s record", file.Path, i, edit.Op, edit.Component.Name)
			}

			if err := record.Validate(); err != nil {
				return fmt.Errorf("plan file %s edit %d: %w", file.Path, i, err)
			}
		}
	}

	return nil
}

// mergePlanFiles resolves paths against the plan's directory and folds
// repeated entries for one file together so no file is written twice.
func mergePlanFiles(plan m.Plan, baseDir string) m.Plan {
	index := make(map[m.Path]int)
	merged := m.Plan{}

	for _, file := range plan.Files {
		path := file.Path
		if !filepath.IsAbs(string(path)) {
			path = m.Path(filepath.Join(baseDir, string(path)))
		}

		if i, ok := index[path]; ok {
			merged.Files[i].Edits = append(merged.Files[i].Edits, file.Edits...)
			continue
		}

		index[path] = len(merged.Files)
		merged.Files = append(merged.Files, m.PlanFile{
			Path:  path,
			Edits: append([]m.Edit(nil), file.Edits...),
		})
	}

	return merged
}
