package tabfile

import (
	"io"
	"os"
)

// Tabfile is a read-only handle for a delimited text file.
//
// A freshly opened Tabfile uses a tab separator, treats lines starting with
// '#' as comments, skips no header lines and drops blank lines. Use the
// chainable tuning methods to change any of that, then call [Tabfile.Records]
// to start iterating. Records consumes the handle: tuning it afterwards is a
// programming error and panics.
type Tabfile struct {
	// file is the handle owned by Open. nil when the Tabfile wraps a plain
	// io.Reader, in which case the caller keeps ownership of the source.
	file *os.File
	src  io.Reader

	separator      rune
	comment        rune
	filterComments bool
	skipLines      int
	skipEmptyLines bool

	consumed bool
}

// Open opens an existing delimited text file.
//
// The error, if any, is the *os.PathError from [os.Open], so callers can
// tell a missing file from a permission problem with errors.Is.
func Open(path string) (*Tabfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	t := New(f)
	t.file = f
	return t, nil
}

// New wraps an arbitrary byte stream with the same defaults as [Open].
// Closing the source when iteration is done stays the caller's job.
func New(r io.Reader) *Tabfile {
	return &Tabfile{
		src:            r,
		separator:      '\t',
		comment:        '#',
		filterComments: true,
		skipLines:      0,
		skipEmptyLines: true,
	}
}

// Separator sets the field separator.
//
// The default is '\t'. A multi-byte character is fine; field positions are
// computed from its UTF-8 width.
func (t *Tabfile) Separator(sep rune) *Tabfile {
	t.mustBeTunable("Separator")
	t.separator = sep
	return t
}

// CommentCharacter sets the comment character and enables comment
// filtering.
//
// Every line whose first character is the comment character is dropped.
// The default comment character is '#'. Note that SkipLines is always
// checked first: the first n lines are dropped whether or not they start
// with the comment character.
func (t *Tabfile) CommentCharacter(comment rune) *Tabfile {
	t.mustBeTunable("CommentCharacter")
	t.comment = comment
	t.filterComments = true
	return t
}

// SkipLines sets the number of leading lines to drop unconditionally.
//
// The default is 0.
func (t *Tabfile) SkipLines(n int) *Tabfile {
	t.mustBeTunable("SkipLines")
	if n < 0 {
		n = 0
	}
	t.skipLines = n
	return t
}

// SkipEmptyLines sets whether blank lines are dropped.
//
// A line is blank when trimming Unicode whitespace leaves nothing. The
// default is true. As with comments, the first SkipLines lines are dropped
// regardless of whether they are blank.
func (t *Tabfile) SkipEmptyLines(skip bool) *Tabfile {
	t.mustBeTunable("SkipEmptyLines")
	t.skipEmptyLines = skip
	return t
}

// Close releases the underlying file of a handle that has not been
// consumed by [Tabfile.Records]. After Records, closing is the iterator's
// job. Close is a no-op for a Tabfile built with [New].
func (t *Tabfile) Close() error {
	if t.consumed || t.file == nil {
		return nil
	}
	return t.file.Close()
}

func (t *Tabfile) mustBeTunable(method string) {
	if t.consumed {
		panic("tabfile: " + method + " called after Records; the handle is consumed once iteration begins")
	}
}
