package dsv

import (
	"bufio"
	"io"
	"strings"

	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/errors"
)

const maxLineLength = 64 * 1024 * 1024

// lineReader produces the fields of each non-comment line of DSV data. Blank lines are
// skipped unless keepBlank is set, in which case they have a single empty field.
type lineReader struct {
	scanner   *bufio.Scanner
	separator string
	comment   rune
	keepBlank bool
	line      int // 1-based number of the most recently read line
}

func newLineReader(r io.Reader, separator rune, comment rune) *lineReader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return &lineReader{scanner: scanner, separator: string(separator), comment: comment}
}

// next returns the fields of the next line, or io.EOF
func (lr *lineReader) next() ([]string, error) {
	for lr.scanner.Scan() {
		lr.line++
		line := strings.TrimSuffix(lr.scanner.Text(), "\r")
		if len(line) == 0 && !lr.keepBlank {
			continue
		}
		if lr.comment != 0 && strings.HasPrefix(line, string(lr.comment)) {
			continue
		}
		return strings.Split(line, lr.separator), nil
	}
	if err := lr.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

// isNull returns true iff a raw value represents a nil value
func isNull(raw string, nullValues []string) bool {
	if len(raw) == 0 {
		return true
	}
	for _, n := range nullValues {
		if raw == n {
			return true
		}
	}
	return false
}

// scanRow parses a slice of strings into a Row, according to a schema
func scanRow(conf *ParserConf, sourceName string, line int, names []string, colTypes []lazytab.ColumnType, fields []string, row lazytab.Row) error {
	if len(fields) != len(names) {
		return &errors.ParseError{
			Source: sourceName,
			Line:   line,
			Err:    &errors.FieldCountError{Source: sourceName, Line: line, Expected: len(names), Actual: len(fields)},
		}
	}
	for i, raw := range fields {
		// check for a nil value
		if isNull(raw, conf.NilValues) {
			if err := row.SetNil(names[i]); err != nil {
				return err
			}
			continue
		}
		// otherwise, parse type
		colType, ok := colTypes[i].(lazytab.ScalarColumnType)
		if !ok {
			return errors.SchemaError{Column: names[i], Reason: "DSV parsing does not support column type " + colTypes[i].Name()}
		}
		val, err := colType.Parse(raw)
		if err != nil {
			return &errors.ParseError{Source: sourceName, Line: line, Column: names[i], Value: raw, Err: err}
		}
		if err := row.Set(names[i], val); err != nil {
			return err
		}
	}
	return nil
}
