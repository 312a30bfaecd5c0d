// Package diag accumulates compiler diagnostics so the engine never has
// to halt on malformed input: every production records and continues.
package diag

import (
	"fmt"
	"io"
)

// Severity classifies a Diagnostic as blocking or informational.
type Severity string

const (
	Error   Severity = "error"
	Warning Severity = "warning"
)

// Diagnostic is a single reported issue, tied to the token index it was
// raised at so a human can locate it in the original source.
type Diagnostic struct {
	File       string
	TokenIndex int
	Severity   Severity
	Message    string
}

// Sink collects diagnostics for one compilation unit. The zero value is
// ready to use.
type Sink struct {
	file  string
	items []Diagnostic
}

// NewSink returns a Sink that tags every diagnostic with file.
func NewSink(file string) *Sink {
	return &Sink{file: file}
}

// AddError records a blocking diagnostic at tokenIndex.
func (s *Sink) AddError(tokenIndex int, format string, args ...any) {
	s.items = append(s.items, Diagnostic{
		File: s.file, TokenIndex: tokenIndex, Severity: Error,
		Message: fmt.Sprintf(format, args...),
	})
}

// AddWarning records a non-blocking diagnostic at tokenIndex.
func (s *Sink) AddWarning(tokenIndex int, format string, args ...any) {
	s.items = append(s.items, Diagnostic{
		File: s.file, TokenIndex: tokenIndex, Severity: Warning,
		Message: fmt.Sprintf(format, args...),
	})
}

// HasIssues reports whether any error or warning was recorded.
func (s *Sink) HasIssues() bool {
	return len(s.items) > 0
}

// Errors returns the number of error-severity diagnostics.
func (s *Sink) Errors() int {
	return s.count(Error)
}

// Warnings returns the number of warning-severity diagnostics.
func (s *Sink) Warnings() int {
	return s.count(Warning)
}

func (s *Sink) count(sev Severity) (n int) {
	for _, d := range s.items {
		if d.Severity == sev {
			n++
		}
	}
	return
}

// All returns every recorded diagnostic, in report order.
func (s *Sink) All() []Diagnostic {
	return s.items
}

// Report pretty-prints every diagnostic, one per line. When nothing was
// recorded it prints a single "No errors or warnings found." line
// instead; no count summary is printed.
func (s *Sink) Report(w io.Writer) {
	for _, d := range s.items {
		switch d.Severity {
		case Error:
			fmt.Fprintf(w, "Error in %s at token %d: %s\n", d.File, d.TokenIndex, d.Message)
		case Warning:
			fmt.Fprintf(w, "Warning in %s at token %d: %s\n", d.File, d.TokenIndex, d.Message)
		}
	}
	if !s.HasIssues() {
		fmt.Fprintln(w, "No errors or warnings found.")
	}
}
