package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"stagefix/internal/common"
)

// Diagnostic codes.
const (
	CodeEmptyRuleSet      = "empty_rule_set"
	CodeDuplicateRule     = "duplicate_rule"
	CodeInvalidCollection = "invalid_collection"
	CodeInvalidMessage    = "invalid_message"
	CodeInvalidColumns    = "invalid_columns"
	CodeMissingRowGroup   = "missing_tbody"
	CodeMultipleMatches   = "multiple_matches"
	CodeMultipleRowGroups = "multiple_row_groups"
	CodeRewritten         = "rewritten"
)

// Diagnostics holds all diagnostic information from a validation or rewrite pass.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Rule names the rewrite rule this relates to (if any).
	Rule string
	// File names the component file this relates to (if any).
	File string
	// Suggestions are replacement values that would pass validation.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// AddError adds an error diagnostic, optionally with suggested fixes.
func (d *Diagnostics) AddError(code, message, rule, file string, suggestions ...string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:    DiagnosticError,
		Code:        code,
		Message:     message,
		Rule:        rule,
		File:        file,
		Suggestions: suggestions,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, rule, file string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Rule:     rule,
		File:     file,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, rule, file string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Rule:     rule,
		File:     file,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// WithFile returns a copy with File set on every diagnostic that has none.
func (d Diagnostics) WithFile(file string) Diagnostics {
	stamp := func(in []Diagnostic) []Diagnostic {
		if in == nil {
			return nil
		}

		out := make([]Diagnostic, len(in))
		for i, diag := range in {
			if diag.File == "" {
				diag.File = file
			}

			out[i] = diag
		}

		return out
	}

	return Diagnostics{
		Errors:   stamp(d.Errors),
		Warnings: stamp(d.Warnings),
		Infos:    stamp(d.Infos),
	}
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.File != "" {
		prefix = append(prefix, d.File)
	}

	if d.Rule != "" {
		prefix = append(prefix, "["+d.Rule+"]")
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, " or ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
