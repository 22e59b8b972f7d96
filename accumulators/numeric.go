package accumulators

import (
	"fmt"

	"github.com/netnote/lazytab"
)

// numericValue retrieves the value of a column as a float64. List values are measured by their length.
// ok is false iff the value is nil.
func numericValue(row lazytab.Row, colName string) (v float64, ok bool, err error) {
	if row.IsNil(colName) {
		return 0, false, nil
	}
	raw, err := row.Get(colName)
	if err != nil {
		return 0, false, err
	}
	switch val := raw.(type) {
	case int8:
		v = float64(val)
	case int16:
		v = float64(val)
	case int32:
		v = float64(val)
	case int64:
		v = float64(val)
	case uint8:
		v = float64(val)
	case uint16:
		v = float64(val)
	case uint32:
		v = float64(val)
	case uint64:
		v = float64(val)
	case float32:
		v = float64(val)
	case float64:
		v = val
	case bool:
		if val {
			v = 1
		}
	case []interface{}:
		v = float64(len(val))
	default:
		return 0, false, fmt.Errorf("Column %s holds a non-numeric %T", colName, raw)
	}
	return v, true, nil
}
