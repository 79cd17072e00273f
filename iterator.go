package tabfile

import (
	"io"

	"github.com/YLivay/tabfile/reader"
)

// RowIterator iterates over the surviving lines of a Tabfile.
//
// A RowIterator owns the Tabfile it came from. Iteration is pull-based:
// nothing is read until [RowIterator.Next] is called.
type RowIterator struct {
	tabfile *Tabfile
	scanner *reader.LineScanner
	filter  *lineFilter
	done    bool
}

// Records consumes the Tabfile and returns an iterator over its records.
//
// Calling Records twice, or tuning the Tabfile afterwards, panics. If the
// Tabfile came from [Open], the returned iterator owns the file handle and
// [RowIterator.Close] releases it.
func (t *Tabfile) Records() *RowIterator {
	if t.consumed {
		panic("tabfile: Records called twice; the handle is consumed once iteration begins")
	}
	t.consumed = true
	return &RowIterator{
		tabfile: t,
		scanner: reader.NewLineScanner(t.src),
		filter:  newLineFilter(t),
	}
}

// Next returns the next record.
//
// At end of input it returns io.EOF. A failed read surfaces its error once
// and ends the iteration; records returned before the failure stay valid.
func (it *RowIterator) Next() (*Record, error) {
	if it.done {
		return nil, io.EOF
	}
	for {
		line, err := it.scanner.ReadLine()
		if err != nil {
			it.done = true
			return nil, err
		}
		if !it.filter.keep(line) {
			continue
		}
		return newRecord(line, it.tabfile.separator), nil
	}
}

// ReadAll drains the iterator and returns every remaining record.
//
// It stops at end of input, returning a nil error, or at the first read
// failure, returning the records collected so far alongside the error.
func (it *RowIterator) ReadAll() ([]*Record, error) {
	var records []*Record
	for {
		rec, err := it.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}

// Close releases the underlying file if the Tabfile was built with [Open].
// It is a no-op otherwise, so deferring it is always safe.
func (it *RowIterator) Close() error {
	it.done = true
	if it.tabfile.file == nil {
		return nil
	}
	return it.tabfile.file.Close()
}
