package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/tripsplice/internal/model"
)

const (
	reportExt     = ".yaml"
	indexFileName = "_index.yaml"
	reportDirPerm = 0o750
	reportPerm    = 0o600
)

// ReportStore persists and retrieves edit reports.
type ReportStore interface {
	SaveReports(path m.Path, reports []m.Report) error
	LoadReports(path m.Path) ([]m.Report, error)
	RegenerateIndex(path m.Path) error
}

// LocalReportStore writes one YAML file per report into a directory.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

type reportYAML struct {
	Source m.File       `yaml:"source"`
	Edit   string       `yaml:"edit"`
	Status m.EditStatus `yaml:"status"`
	Diff   *string      `yaml:"diff,omitempty"`
}

type indexEntry struct {
	TotalEdits   int           `yaml:"total_edits"`
	AppliedEdits int           `yaml:"applied_edits"`
	SkippedEdits int           `yaml:"skipped_edits"`
	Result       []resultEntry `yaml:"result"`
}

type resultEntry struct {
	Source    string   `yaml:"source"`
	SourceHex string   `yaml:"source_hash"`
	Reports   []string `yaml:"reports"`
}

// SaveReports writes each report to <dir>/<hash>.yaml, where hash is a
// 16-hex-char digest of the report content.
func (rs *LocalReportStore) SaveReports(path m.Path, reports []m.Report) error {
	if path == "" {
		return errors.New("reports directory path is required")
	}

	if err := os.MkdirAll(string(path), reportDirPerm); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}

	for _, report := range reports {
		data, err := yaml.Marshal(toReportYAML(report))
		if err != nil {
			return fmt.Errorf("encode report for %s: %w", report.Source.Path, err)
		}

		name := rs.computeReportHash(report) + reportExt
		if err := os.WriteFile(filepath.Join(string(path), name), data, reportPerm); err != nil {
			return fmt.Errorf("write report %s: %w", name, err)
		}
	}

	return nil
}

// LoadReports reads every report in the directory, ordered by source path.
// A missing directory yields no reports.
func (rs *LocalReportStore) LoadReports(path m.Path) ([]m.Report, error) {
	named, err := rs.readReports(path)
	if err != nil {
		return nil, err
	}

	reports := make([]m.Report, 0, len(named))
	for _, nr := range named {
		reports = append(reports, nr.report)
	}

	return reports, nil
}

// RegenerateIndex writes <dir>/_index.yaml summarizing all stored reports.
func (rs *LocalReportStore) RegenerateIndex(path m.Path) error {
	named, err := rs.readReports(path)
	if err != nil {
		return err
	}

	idx := indexEntry{}
	bySource := map[string]*resultEntry{}

	var order []string

	for _, nr := range named {
		idx.TotalEdits++
		if nr.report.Status == m.Applied {
			idx.AppliedEdits++
		} else {
			idx.SkippedEdits++
		}

		key := string(nr.report.Source.Path)

		entry, ok := bySource[key]
		if !ok {
			entry = &resultEntry{Source: key, SourceHex: nr.report.Source.Hash}
			bySource[key] = entry
			order = append(order, key)
		}

		entry.Reports = append(entry.Reports, nr.name)
	}

	for _, key := range order {
		idx.Result = append(idx.Result, *bySource[key])
	}

	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}

	return os.WriteFile(filepath.Join(string(path), indexFileName), data, reportPerm)
}

type namedReport struct {
	name   string
	report m.Report
}

func (rs *LocalReportStore) readReports(path m.Path) ([]namedReport, error) {
	if path == "" {
		return nil, errors.New("reports directory path is required")
	}

	info, err := os.Stat(string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", path)
	}

	entries, err := os.ReadDir(string(path))
	if err != nil {
		return nil, err
	}

	var named []namedReport

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == indexFileName || !strings.HasSuffix(name, reportExt) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(string(path), name))
		if err != nil {
			return nil, err
		}

		var decoded reportYAML
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", name, err)
		}

		named = append(named, namedReport{name: name, report: decoded.toReport()})
	}

	sort.SliceStable(named, func(i, j int) bool {
		a, b := named[i].report, named[j].report
		if a.Source.Path != b.Source.Path {
			return a.Source.Path < b.Source.Path
		}

		return named[i].name < named[j].name
	})

	return named, nil
}

func (rs *LocalReportStore) computeReportHash(report m.Report) string {
	h := sha256.New()
	_, _ = fmt.Fprintf(h, "%s\x00%s\x00%s\x00%s", report.Source.Path, report.Source.Hash, report.Edit, report.Status)

	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

func toReportYAML(report m.Report) reportYAML {
	return reportYAML{
		Source: report.Source,
		Edit:   report.Edit,
		Status: report.Status,
		Diff:   report.Diff,
	}
}

func (r reportYAML) toReport() m.Report {
	return m.Report{
		Source: r.Source,
		Edit:   r.Edit,
		Status: r.Status,
		Diff:   r.Diff,
	}
}
