// Package imports checks and sorts the import statements of a Python source file.
//
// Imports are considered in groups: a group is a run of consecutive top-level
// import lines. Inside a group every `import x` line must come before the
// `from x import y` lines, and lines of the same form must be sorted.
// Each import must bring in a single name on a single line.
package imports

import (
	"strings"
)

// Options tune how imports are rewritten
type Options struct {
	// SplitDirect also splits `import a, b` into one line per module
	SplitDirect bool
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{SplitDirect: true}
}

// Checker validates and sorts import groups
type Checker struct {
	opts Options
}

// New creates a Checker with the given options
func New(opts Options) *Checker {
	return &Checker{opts: opts}
}

// Analyze inspects every line of text and returns the diagnostics found.
// It has no side effects.
func (c *Checker) Analyze(filename, text string) *Report {
	r := &Report{Filename: filename}
	var order orderState
	for i, line := range strings.Split(text, "\n") {
		c.checkStyle(r, i, line)
		order.checkOrder(r, i, line)
	}
	return r
}

// CheckOnly reports every issue of text to rep and tells whether text is valid.
func (c *Checker) CheckOnly(filename, text string, rep Reporter) bool {
	r := c.Analyze(filename, text)
	r.Emit(orDiscard(rep))
	return r.Valid()
}

// CheckAndSort reports every issue of text to rep, then splits and sorts the
// imports when all errors can be fixed. When they cannot, it returns false and
// the unchanged text.
func (c *Checker) CheckAndSort(filename, text string, rep Reporter) (bool, string) {
	r := c.Analyze(filename, text)
	r.Emit(orDiscard(rep))
	if !r.Fixable() {
		return false, text
	}
	return true, c.Sort(text)
}

// Sort splits multi-name imports, sorts each import group and separates
// direct imports from from-imports with a blank line.
// Lines that are not imports are kept in place.
func (c *Checker) Sort(text string) string {
	lines := strings.Split(text, "\n")
	lines = c.explode(lines)
	lines = sortGroups(lines)
	lines = separateShapes(lines)
	return strings.Join(lines, "\n")
}

func orDiscard(rep Reporter) Reporter {
	if rep == nil {
		return Discard
	}
	return rep
}
