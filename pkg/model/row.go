// pkg/model/row.go
package model

import (
	"bufio"
	"io"
	"strings"
)

// Row represents a single line of a delimited input file
type Row struct {
	Text   string // Raw line content without its terminator
	Number int64  // 1-based line number within the file
}

// IsBlank reports whether the row has zero fields (the whole line is empty)
func (r Row) IsBlank() bool {
	return r.Text == ""
}

// FieldCount returns the number of delimiter-separated fields in the row.
// An empty line has zero fields. Splitting is naive: quoting and escaping
// are never honored.
func (r Row) FieldCount(delimiter string) int {
	if r.Text == "" {
		return 0
	}
	return strings.Count(r.Text, delimiter) + 1
}

// Fields splits the row into its delimiter-separated fields, or nil for a
// blank row. Same naive semantics as FieldCount.
func (r Row) Fields(delimiter string) []string {
	if r.Text == "" {
		return nil
	}
	return strings.Split(r.Text, delimiter)
}

// LineReader yields the lines of an input stream one at a time, holding only
// the current line in memory. A final line without a trailing newline is
// still returned; carriage returns are left in the line text untouched.
type LineReader struct {
	br     *bufio.Reader
	lineNo int64
}

// NewLineReader creates a LineReader over r
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{br: bufio.NewReader(r)}
}

// Next returns the next row and whether it was terminated by a newline.
// It returns io.EOF once the input is exhausted.
func (lr *LineReader) Next() (Row, bool, error) {
	line, err := lr.br.ReadString('\n')
	if err != nil && err != io.EOF {
		return Row{Number: lr.lineNo + 1}, false, err
	}
	if line == "" {
		return Row{}, false, io.EOF
	}
	lr.lineNo++
	terminated := strings.HasSuffix(line, "\n")
	if terminated {
		line = line[:len(line)-1]
	}
	return Row{Text: line, Number: lr.lineNo}, terminated, nil
}
