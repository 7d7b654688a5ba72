package imports

import (
	"fmt"
	"slices"
	"strings"
)

// explode replaces every splittable import with one line per imported name.
// Names keep their original order; a trailing comment stays on the first line.
// Every produced line keeps the line ending of its source line.
func (c *Checker) explode(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		body, eol := splitEOL(line)
		code, comment := SplitComment(body)
		d := Classify(strings.TrimRight(code, " \t\r"))
		if !d.IsDeclaration() || !c.splittable(d) {
			out = append(out, line)
			continue
		}

		for i, member := range d.Members() {
			var exploded string
			if d.Shape == FromForm {
				exploded = fmt.Sprintf("from %s import %s", d.Namespace, member)
			} else {
				exploded = fmt.Sprintf("import %s", member)
			}
			if i == 0 && comment != "" {
				exploded += "  " + comment
			}
			out = append(out, exploded+eol)
		}
	}
	return out
}

// splitEOL separates the carriage return left by a CRLF line ending
func splitEOL(line string) (body, eol string) {
	if trimmed, ok := strings.CutSuffix(line, "\r"); ok {
		return trimmed, "\r"
	}
	return line, ""
}

// compareLines is Compare for lines already known to be imports
func compareLines(a, b string) int {
	cmp, err := Compare(a, b)
	if err != nil {
		return 0
	}
	return cmp
}

// sortGroups stably sorts every run of consecutive import lines.
// Blank lines and any other statement close the current run.
func sortGroups(lines []string) []string {
	out := make([]string, 0, len(lines))
	start := -1
	flush := func() {
		if start >= 0 {
			slices.SortStableFunc(out[start:], compareLines)
		}
		start = -1
	}

	for _, line := range lines {
		if !IsImportLine(StripComment(line)) {
			flush()
			out = append(out, line)
			continue
		}
		if start < 0 {
			start = len(out)
		}
		out = append(out, line)
	}
	flush()
	return out
}

// separateShapes inserts a blank line wherever a direct import and a
// from-import touch each other. The blank line follows the CRLF convention
// of the import it precedes.
func separateShapes(lines []string) []string {
	out := make([]string, 0, len(lines))
	prev := NotADeclaration
	for _, line := range lines {
		d := Classify(StripComment(line))
		if !d.IsDeclaration() {
			prev = NotADeclaration
			out = append(out, line)
			continue
		}
		if prev != NotADeclaration && prev != d.Shape {
			_, eol := splitEOL(line)
			out = append(out, eol)
		}
		prev = d.Shape
		out = append(out, line)
	}
	return out
}
