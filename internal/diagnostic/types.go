package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"either-generator/internal/common"
)

// Diagnostics holds all diagnostic information from one or more invocations.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code identifies the kind of diagnostic.
	Code Code
	// Message is the human-readable description.
	Message string
	// Pos is the source position the diagnostic points at (may be invalid).
	Pos token.Position
	// Template names the template definition this relates to (if any).
	Template string
	// Hint is an optional suggestion for fixing the problem.
	Hint string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticWarning DiagnosticSeverity = iota
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add appends d to the errors or warnings depending on its code class.
func (d *Diagnostics) Add(diag Diagnostic) {
	if diag.Code.Class() == ClassWarning {
		diag.Severity = DiagnosticWarning
		d.Warnings = append(d.Warnings, diag)

		return
	}

	diag.Severity = DiagnosticError
	d.Errors = append(d.Errors, diag)
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code Code, message string, pos token.Position, template string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Pos:      pos,
		Template: template,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code Code, message string, pos token.Position, template string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Pos:      pos,
		Template: template,
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
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// All returns errors followed by warnings.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings))
	all = append(all, d.Errors...)

	return append(all, d.Warnings...)
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
	if d.Pos.IsValid() {
		prefix = append(prefix, d.Pos.String())
	}

	if d.Template != "" {
		prefix = append(prefix, "["+d.Template+"]")
	}

	msg := d.Message
	if d.Code != 0 {
		msg = fmt.Sprintf("%s: %s", d.Code, msg)
	}

	if d.Hint != "" {
		msg += " (" + d.Hint + ")"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
