package imports

import (
	"errors"
	"regexp"
	"strings"
)

// Shape represents the form of an import declaration
type Shape int

const (
	NotADeclaration Shape = iota
	DirectForm            // import x
	FromForm              // from x import y
)

// String returns the keyword form of the shape
func (s Shape) String() string {
	switch s {
	case DirectForm:
		return "import"
	case FromForm:
		return "from"
	default:
		return "none"
	}
}

// ErrNotDeclaration is returned by Compare when one of the lines is not an import declaration
var ErrNotDeclaration = errors.New("line is not an import declaration")

var (
	directRe = regexp.MustCompile(`^import\s+(.*)$`)
	fromRe   = regexp.MustCompile(`^from\s+([a-zA-Z0-9._]+)\s+import\s+(.*)$`)
)

// Declaration represents a classified import line
type Declaration struct {
	Shape     Shape
	Namespace string // module path of a from-import, empty for direct imports
	Tail      string // everything after the last import keyword
}

// IsDeclaration reports whether the line matched one of the import forms
func (d Declaration) IsDeclaration() bool {
	return d.Shape != NotADeclaration
}

// Members splits the tail into its whitespace-trimmed, non-empty comma-separated entries
func (d Declaration) Members() []string {
	var members []string
	for _, m := range strings.Split(d.Tail, ",") {
		if m = strings.TrimSpace(m); m != "" {
			members = append(members, m)
		}
	}
	return members
}

// Classify determines whether the line is a top-level import declaration.
// Indented lines never match.
func Classify(line string) Declaration {
	if m := directRe.FindStringSubmatch(line); m != nil {
		return Declaration{Shape: DirectForm, Tail: m[1]}
	}
	if m := fromRe.FindStringSubmatch(line); m != nil {
		return Declaration{Shape: FromForm, Namespace: m[1], Tail: m[2]}
	}
	return Declaration{}
}

// IsImportLine reports whether the line is an import declaration
func IsImportLine(line string) bool {
	return Classify(line).IsDeclaration()
}

// SplitComment separates the code part of a line from its trailing comment.
// The comment keeps its leading '#'.
func SplitComment(line string) (code, comment string) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i], line[i:]
	}
	return line, ""
}

// StripComment returns the line without its trailing comment and trailing whitespace
func StripComment(line string) string {
	code, _ := SplitComment(line)
	return strings.TrimRight(code, " \t\r")
}

// Compare orders two import lines: direct imports come before from-imports,
// then lines compare lexically with their comments stripped.
// It returns a negative value, zero or a positive value like strings.Compare.
func Compare(a, b string) (int, error) {
	a, b = StripComment(a), StripComment(b)
	da, db := Classify(a), Classify(b)
	if !da.IsDeclaration() || !db.IsDeclaration() {
		return 0, ErrNotDeclaration
	}
	if da.Shape != db.Shape {
		if da.Shape == DirectForm {
			return -1, nil
		}
		return 1, nil
	}
	return strings.Compare(a, b), nil
}
