// Package migrate runs the empty-state rewrite over a stage directory.
//
// Files are processed one at a time in scan order: read, rewritten by every
// rule in turn, written back only when the content changed. One status line
// per file goes to the configured writer. The first read, write, or encoding
// failure aborts the run; files already processed stay as written.
package migrate

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"stagefix/internal/diagnostic"
	"stagefix/internal/rewrite"
	"stagefix/internal/rules"
	"stagefix/internal/scan"
)

// ErrInvalidEncoding is returned for files that are not valid UTF-8.
var ErrInvalidEncoding = errors.New("content is not valid UTF-8")

// Config holds migrator configuration.
type Config struct {
	// Pattern selects files inside the directory (doublestar syntax).
	Pattern string
	// Out receives the per-file status lines.
	Out io.Writer
	// Logger receives debug records and rewrite warnings.
	Logger *slog.Logger
}

// DefaultConfig returns the default migrator configuration.
func DefaultConfig() Config {
	return Config{
		Pattern: scan.DefaultPattern,
		Out:     os.Stdout,
		Logger:  slog.Default(),
	}
}

// FileReport describes what happened to one file.
type FileReport struct {
	Name    string
	Path    string
	Outcome Outcome
	Rules   []rewrite.Result
}

// Summary aggregates a directory run.
type Summary struct {
	Scanned   int
	Updated   int
	Unchanged int
	Reports   []FileReport
}

// Diagnostics collects the rewrite diagnostics of every file, stamped with
// the file name.
func (s *Summary) Diagnostics() diagnostic.Diagnostics {
	var all diagnostic.Diagnostics

	for _, r := range s.Reports {
		for _, res := range r.Rules {
			all.Merge(res.Diagnostics.WithFile(r.Name))
		}
	}

	return all
}

// Migrator applies a rule set to component files.
type Migrator struct {
	config Config
	blocks []*rewrite.Block
	write  func(path string, content []byte) error
}

// NewMigrator validates rs and compiles one block per rule.
func NewMigrator(rs *rules.RuleSet, config Config) (*Migrator, error) {
	if diags := rules.Validate(rs); diags.HasErrors() {
		return nil, fmt.Errorf("invalid rules: %w", diags.Error())
	}

	blocks, err := rewrite.NewAll(rs)
	if err != nil {
		return nil, err
	}

	if config.Pattern == "" {
		config.Pattern = scan.DefaultPattern
	}

	if config.Out == nil {
		config.Out = io.Discard
	}

	if config.Logger == nil {
		config.Logger = slog.New(slog.DiscardHandler)
	}

	return &Migrator{config: config, blocks: blocks, write: writeBack}, nil
}

// Run migrates every matching file directly inside dir.
func (m *Migrator) Run(dir string) (*Summary, error) {
	entries, err := scan.List(dir, m.config.Pattern)
	if err != nil {
		return nil, err
	}

	m.config.Logger.Debug("scanned directory", "dir", dir, "pattern", m.config.Pattern, "files", len(entries))

	summary := &Summary{Scanned: len(entries)}

	for _, entry := range entries {
		report, err := m.MigrateFile(entry)
		if err != nil {
			return summary, err
		}

		summary.Reports = append(summary.Reports, *report)

		switch report.Outcome {
		case OutcomeUpdated:
			summary.Updated++
		case OutcomeUnchanged:
			summary.Unchanged++
		}
	}

	return summary, nil
}

// MigrateFile rewrites a single file and prints its status line.
func (m *Migrator) MigrateFile(entry scan.Entry) (*FileReport, error) {
	data, err := os.ReadFile(entry.Path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", entry.Path, err)
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("reading file %s: %w", entry.Path, ErrInvalidEncoding)
	}

	original := string(data)
	content := original
	report := &FileReport{Name: entry.Name, Path: entry.Path}

	for _, b := range m.blocks {
		var res rewrite.Result

		content, res, err = b.Apply(content)
		if err != nil {
			return nil, fmt.Errorf("rewriting file %s: %w", entry.Path, err)
		}

		report.Rules = append(report.Rules, res)
		m.logResult(entry, res)
	}

	if content != original {
		if err := m.write(entry.Path, []byte(content)); err != nil {
			return nil, err
		}

		report.Outcome = OutcomeUpdated
	}

	if _, err := fmt.Fprintln(m.config.Out, report.Outcome.StatusLine(entry.Name)); err != nil {
		return nil, fmt.Errorf("printing status for %s: %w", entry.Name, err)
	}

	return report, nil
}

func (m *Migrator) logResult(entry scan.Entry, res rewrite.Result) {
	m.config.Logger.Debug("applied rule",
		"file", entry.Name, "rule", res.Rule, "matches", res.Matches, "rewritten", res.Rewritten)

	for _, i := range res.Diagnostics.Infos {
		m.config.Logger.Debug(i.Message, "file", entry.Name, "rule", i.Rule, "code", i.Code)
	}

	for _, w := range res.Diagnostics.Warnings {
		m.config.Logger.Warn(w.Message, "file", entry.Name, "rule", w.Rule, "code", w.Code)
	}
}
