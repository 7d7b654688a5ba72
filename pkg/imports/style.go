package imports

import (
	"strings"

	"github.com/siyuan-infoblox/py-imports-check/pkg/errors"
)

// lineStyle lists the anti-patterns found in an import tail
type lineStyle struct {
	separator    bool
	comma        bool
	continuation bool
	parenthesis  bool
}

func inspectTail(tail string) lineStyle {
	return lineStyle{
		separator:    strings.Contains(tail, ";"),
		comma:        strings.Contains(tail, ","),
		continuation: strings.Contains(tail, `\`),
		parenthesis:  strings.Contains(tail, "("),
	}
}

// splittable reports whether the declaration can be exploded into one line per member
func (c *Checker) splittable(d Declaration) bool {
	s := inspectTail(d.Tail)
	if !s.comma || s.separator || s.parenthesis || s.continuation {
		return false
	}
	if len(d.Members()) == 0 {
		return false
	}
	return d.Shape == FromForm || c.opts.SplitDirect
}

// checkStyle records a diagnostic for every anti-pattern found on the line.
// It returns false when the line can never be rewritten automatically.
func (c *Checker) checkStyle(r *Report, lineNb int, line string) bool {
	d := Classify(StripComment(line))
	if !d.IsDeclaration() {
		return true
	}

	s := inspectTail(d.Tail)
	if s.separator {
		r.add(lineNb, errors.MsgMultipleStatements, SeverityError, false)
	}
	if s.comma {
		r.add(lineNb, errors.MsgMultipleMembers, SeverityError, c.splittable(d))
	}
	if s.continuation {
		r.add(lineNb, errors.MsgContinuation, SeverityWarning, true)
	}
	if s.parenthesis {
		r.add(lineNb, errors.MsgParenthesis, SeverityError, false)
	}
	return !s.separator && !s.parenthesis
}
