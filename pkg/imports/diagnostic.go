package imports

import (
	"fmt"
	"io"
)

// Severity tells whether a diagnostic affects validity
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Diagnostic is a single issue found on an import line
type Diagnostic struct {
	Filename string
	Line     int // zero-based line index; String prints it one-based
	Message  string
	Severity Severity
	Fixable  bool // whether CheckAndSort can rewrite the line into a valid form
}

// String formats the diagnostic following the pylint convention, with a one-based line number
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d: %s", d.Filename, d.Line+1, d.Message)
}

// Reporter receives diagnostics as they are emitted
type Reporter interface {
	Report(d Diagnostic)
}

type writerReporter struct {
	w io.Writer
}

// NewWriterReporter returns a Reporter printing one diagnostic per line to w
func NewWriterReporter(w io.Writer) Reporter {
	return &writerReporter{w: w}
}

func (r *writerReporter) Report(d Diagnostic) {
	fmt.Fprintln(r.w, d.String())
}

// Collector is a Reporter keeping every diagnostic in memory
type Collector struct {
	Diagnostics []Diagnostic
}

// Report appends d to the collected diagnostics
func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// Messages returns the message of every collected diagnostic, in order
func (c *Collector) Messages() []string {
	msgs := make([]string, 0, len(c.Diagnostics))
	for _, d := range c.Diagnostics {
		msgs = append(msgs, d.Message)
	}
	return msgs
}

type discard struct{}

func (discard) Report(Diagnostic) {}

// Discard drops every diagnostic
var Discard Reporter = discard{}

// Report is the outcome of analyzing one file
type Report struct {
	Filename    string
	Diagnostics []Diagnostic
}

func (r *Report) add(line int, msg string, sev Severity, fixable bool) {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		Filename: r.Filename,
		Line:     line,
		Message:  msg,
		Severity: sev,
		Fixable:  fixable,
	})
}

// Valid reports whether no error was found
func (r *Report) Valid() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			return false
		}
	}
	return true
}

// Fixable reports whether every error can be repaired by sorting and splitting
func (r *Report) Fixable() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError && !d.Fixable {
			return false
		}
	}
	return true
}

// Emit sends every diagnostic to the reporter
func (r *Report) Emit(rep Reporter) {
	for _, d := range r.Diagnostics {
		rep.Report(d)
	}
}
