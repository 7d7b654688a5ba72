package imports

import (
	"github.com/siyuan-infoblox/py-imports-check/pkg/errors"
)

// orderState remembers the previous import of the current group
type orderState struct {
	prev      string
	prevShape Shape
}

func (s *orderState) reset() {
	s.prev = ""
	s.prevShape = NotADeclaration
}

// checkOrder verifies the line is not lower than the previous import of its group.
// Only blank or comment-only lines close a group here; other statements are skipped.
func (s *orderState) checkOrder(r *Report, lineNb int, line string) bool {
	line = StripComment(line)
	if line == "" {
		s.reset()
		return true
	}

	d := Classify(line)
	if !d.IsDeclaration() {
		return true
	}

	if s.prevShape != NotADeclaration && s.prevShape != d.Shape {
		r.add(lineNb, errors.MsgMixedForms, SeverityWarning, true)
	}

	if s.prev == "" {
		s.prev, s.prevShape = line, d.Shape
		return true
	}

	cmp, err := Compare(s.prev, line)
	s.prev, s.prevShape = line, d.Shape
	if err != nil {
		r.add(lineNb, errors.MsgCompareFailed, SeverityError, false)
		return false
	}
	if cmp > 0 {
		r.add(lineNb, errors.MsgBadOrder, SeverityError, true)
		return false
	}
	return true
}
