package tabfile

import (
	"strings"
	"unicode/utf8"
)

// lineFilter decides which raw lines make it to record construction.
//
// The rules apply in order: the header skip counter fires first and
// unconditionally, so a leading line that looks like a comment or is blank
// still consumes one skip. Only then are the comment prefix and the blank
// line policy checked.
type lineFilter struct {
	// Remaining number of leading lines to drop, regardless of content.
	remainingSkips int

	comment        rune
	filterComments bool

	skipEmpty bool
}

func newLineFilter(t *Tabfile) *lineFilter {
	return &lineFilter{
		remainingSkips: t.skipLines,
		comment:        t.comment,
		filterComments: t.filterComments,
		skipEmpty:      t.skipEmptyLines,
	}
}

// keep reports whether the raw line should be turned into a record.
func (f *lineFilter) keep(line string) bool {
	if f.remainingSkips > 0 {
		f.remainingSkips--
		return false
	}
	if f.filterComments {
		// The comment check looks at the first character only, so a
		// separator equal to the comment character loses at position 0.
		if first, _ := utf8.DecodeRuneInString(line); first == f.comment {
			return false
		}
	}
	if f.skipEmpty && strings.TrimSpace(line) == "" {
		return false
	}
	return true
}
