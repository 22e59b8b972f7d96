package jsonl

import (
	"fmt"

	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/errors"
	"github.com/tidwall/gjson"
)

var errInvalidJSON = fmt.Errorf("invalid JSON")

// parseValue converts a single JSON value into a value of the given type. Missing and null values are nil.
func parseValue(val gjson.Result, colType lazytab.ColumnType) (interface{}, error) {
	if !val.Exists() || val.Type == gjson.Null {
		return nil, nil
	}
	switch colType := colType.(type) {
	case *lazytab.ListColumnType:
		if !val.IsArray() {
			return nil, fmt.Errorf("was not an array")
		}
		items := []interface{}{}
		var err error
		val.ForEach(func(_, item gjson.Result) bool {
			var parsed interface{}
			parsed, err = parseValue(item, colType.Inner)
			items = append(items, parsed)
			return err == nil
		})
		if err != nil {
			return nil, err
		}
		return items, nil
	case *lazytab.BoolColumnType:
		if val.Type != gjson.True && val.Type != gjson.False {
			return nil, fmt.Errorf("was not a boolean")
		}
		return val.Bool(), nil
	case *lazytab.VarStringColumnType, *lazytab.VarBytesColumnType, *lazytab.TimeColumnType:
		if val.Type != gjson.String {
			return nil, fmt.Errorf("was not a string")
		}
		return colType.(lazytab.ScalarColumnType).Parse(val.Str)
	case lazytab.ScalarColumnType:
		if val.Type != gjson.Number {
			return nil, fmt.Errorf("was not a number")
		}
		// parsing the raw text preserves integer precision and checks ranges
		return colType.Parse(val.Raw)
	default:
		return nil, fmt.Errorf("unsupported column type %s", colType.Name())
	}
}

// parseJSONRow extracts every column of a schema from a parsed JSON object
func parseJSONRow(sourceName string, line int, colNames []string, colTypes []lazytab.ColumnType, parsed gjson.Result, row lazytab.Row) error {
	for i, name := range colNames {
		val := parsed.Get(name)
		v, err := parseValue(val, colTypes[i])
		if err != nil {
			return &errors.ParseError{Source: sourceName, Line: line, Column: name, Value: val.Raw, Err: err}
		}
		if v == nil {
			err = row.SetNil(name)
		} else {
			err = row.Set(name, v)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
