package dsv

import (
	"fmt"
	"io"

	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/errors"
	"github.com/netnote/lazytab/logging"
	"github.com/netnote/lazytab/schema"
)

var logger = logging.CreateLogger("dsv", logging.WarnLevel)

// readSample reads the header (if present) and up to InferSchemaLength rows from the first input
func readSample(sample sampler, conf *LoadConf) (header []string, rows [][]string, err error) {
	r, sourceName, err := sample()
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			logger.Warnf("Unable to close %s: %s", sourceName, cerr)
		}
	}()
	reader := newLineReader(r, conf.Separator, conf.Comment)
	if !conf.NoHeader {
		header, err = reader.next()
		if err == io.EOF {
			return nil, nil, fmt.Errorf("%s has no header", sourceName)
		} else if err != nil {
			return nil, nil, err
		}
		reader.keepBlank = len(header) == 1
	}
	for len(rows) < conf.InferSchemaLength {
		fields, err := reader.next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, nil, err
		}
		rows = append(rows, fields)
	}
	return header, rows, nil
}

// resolveSchema produces the full Schema of the loaded data, in file column order.
// Columns which are not declared have their types inferred from the sample rows.
func resolveSchema(declared lazytab.Schema, header []string, rows [][]string, conf *LoadConf) (lazytab.Schema, error) {
	if conf.NoHeader && declared != nil {
		return declared.Clone(), nil
	}
	names, err := columnNames(header, rows)
	if err != nil {
		return nil, err
	}
	if declared != nil {
		present := make(map[string]bool, len(names))
		for _, name := range names {
			present[name] = true
		}
		for _, name := range declared.ColumnNames() {
			if !present[name] {
				return nil, errors.SchemaError{Column: name, Reason: "declared column is missing from the header"}
			}
		}
	}
	resolved := schema.CreateSchema()
	for i, name := range names {
		var colType lazytab.ColumnType
		if declared != nil && declared.HasColumn(name) {
			offset, err := declared.GetOffset(name)
			if err != nil {
				return nil, err
			}
			colType = offset.Type()
		} else {
			colType = inferType(i, rows, conf.NullValues)
		}
		if _, err := resolved.CreateColumn(name, colType); err != nil {
			return nil, err
		}
	}
	return resolved, nil
}

// columnNames names columns from the header, or column_1..n if there is none
func columnNames(header []string, rows [][]string) ([]string, error) {
	if header == nil {
		width := 0
		if len(rows) > 0 {
			width = len(rows[0])
		}
		header = make([]string, width)
	}
	names := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		if len(name) == 0 {
			name = fmt.Sprintf("column_%d", i+1)
		}
		if seen[name] {
			return nil, errors.SchemaError{Column: name, Reason: "duplicate column name in header"}
		}
		seen[name] = true
		names[i] = name
	}
	return names, nil
}

// boolLiterals are the values inferred as bool. Other forms accepted by BoolColumnType.Parse,
// such as 1 or T, are not.
var boolLiterals = map[string]bool{
	"true": true, "True": true, "TRUE": true,
	"false": true, "False": true, "FALSE": true,
}

// inferType picks the narrowest of int64, float64, bool and string which can hold every
// non-nil sampled value of a column. Columns with no non-nil values are strings.
func inferType(col int, rows [][]string, nullValues []string) lazytab.ColumnType {
	candidates := []lazytab.ScalarColumnType{
		&lazytab.Int64ColumnType{},
		&lazytab.Float64ColumnType{},
		&lazytab.BoolColumnType{},
	}
	found := false
	for _, row := range rows {
		if col >= len(row) || isNull(row[col], nullValues) {
			continue
		}
		found = true
		remaining := candidates[:0]
		for _, c := range candidates {
			if _, isBool := c.(*lazytab.BoolColumnType); isBool {
				if boolLiterals[row[col]] {
					remaining = append(remaining, c)
				}
			} else if _, err := c.Parse(row[col]); err == nil {
				remaining = append(remaining, c)
			}
		}
		candidates = remaining
		if len(candidates) == 0 {
			break
		}
	}
	if !found || len(candidates) == 0 {
		return &lazytab.VarStringColumnType{}
	}
	return candidates[0]
}
