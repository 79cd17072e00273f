package reader

import (
	"bufio"
	"bytes"
	"io"
)

// LineScanner reads one line at a time from a byte stream, keeping the
// trailing '\n' on each line. That lets callers tell a newline-terminated
// line apart from a final line that simply ran into end of input.
type LineScanner struct {
	s    *bufio.Scanner
	done bool
}

func NewLineScanner(r io.Reader) *LineScanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	s.Split(scanLinesKeepTerminator)
	return &LineScanner{s: s}
}

// ReadLine returns the next line, including its trailing '\n' if the
// source had one. At end of input it returns io.EOF. After any error,
// including io.EOF, subsequent calls return io.EOF.
func (s *LineScanner) ReadLine() (string, error) {
	if s.done {
		return "", io.EOF
	}
	if s.s.Scan() {
		return s.s.Text(), nil
	}
	s.done = true
	if err := s.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Modified from bufio.ScanLines to not drop carriage returns and to return
// the newline character itself. A final line without a newline is returned
// as-is when the input ends.
func scanLinesKeepTerminator(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		// We have a full newline-terminated line.
		return i + 1, data[0 : i+1], nil
	}
	// If we're at EOF, we have a final, non-terminated line. Return it.
	if atEOF {
		return len(data), data, nil
	}
	// Request more data.
	return 0, nil, nil
}
