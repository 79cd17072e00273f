package tabfile

import "unicode/utf8"

// fieldRange is a half-open byte range [start, end) into a record's line.
type fieldRange struct {
	start int
	end   int
}

// Record is one line from a delimited text file.
//
// A Record gives access to the original line as well as the individual
// fields of the line. It owns its line buffer, so it stays valid after the
// iterator that produced it has moved on or been closed.
type Record struct {
	// The raw line as delivered by the reader, including the trailing
	// line terminator if the source had one.
	line string

	// Byte ranges of the fields within line, in order. Ranges never
	// include the line terminator.
	ranges []fieldRange
}

// newRecord splits line on separator and precomputes the field ranges.
//
// The walk stops at the first '\n' or '\r'; anything after it stays in the
// line buffer but is not part of any field.
func newRecord(line string, separator rune) *Record {
	sliceStart := 0
	sawTerminator := false
	var ranges []fieldRange
	// i is the byte offset of c, so offsets stay byte-valid even when the
	// line holds invalid UTF-8.
	for i, c := range line {
		if c == separator {
			ranges = append(ranges, fieldRange{sliceStart, i})
			sliceStart = i + utf8.RuneLen(c)
		} else if c == '\n' || c == '\r' {
			// No tolerance for multiline records.
			sawTerminator = true
			ranges = append(ranges, fieldRange{sliceStart, i})
			break
		}
	}
	if !sawTerminator {
		ranges = append(ranges, fieldRange{sliceStart, len(line)})
	}
	return &Record{line: line, ranges: ranges}
}

// Fields returns the individual separated fields of the line.
//
// The slice is built fresh on every call from the precomputed ranges; the
// strings share the record's backing buffer, so no field bytes are copied.
func (r *Record) Fields() []string {
	fields := make([]string, 0, len(r.ranges))
	for _, rng := range r.ranges {
		fields = append(fields, r.line[rng.start:rng.end])
	}
	return fields
}

// Line returns the original line unchanged, including the trailing line
// terminator if the source had one.
func (r *Record) Line() string {
	return r.line
}

// Len returns the number of fields. It is always at least 1: a line with no
// separators is a single field, even if it is empty.
func (r *Record) Len() int {
	return len(r.ranges)
}
