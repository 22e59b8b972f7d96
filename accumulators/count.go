package accumulators

import (
	"fmt"

	"github.com/netnote/lazytab"
)

// Counter returns a new Count Accumulator, which counts rows
func Counter() lazytab.Accumulator {
	return &Count{}
}

// NullCounter returns a factory for Count Accumulators which also count the nil values of a column
func NullCounter(colName string) lazytab.AccumulatorFactory {
	return func() lazytab.Accumulator {
		return &Count{colName: colName}
	}
}

// Count tallies rows, and optionally the nil values of one column
type Count struct {
	colName string
	rows    uint64
	nulls   uint64
}

// GetCount returns the number of rows seen by this Accumulator
func (a *Count) GetCount() uint64 {
	return a.rows
}

// GetNullCount returns the number of nil values seen in the counted column.
// It is always 0 for a Counter.
func (a *Count) GetNullCount() uint64 {
	return a.nulls
}

// Accumulate adds a row to this Accumulator
func (a *Count) Accumulate(row lazytab.Row) error {
	a.rows++
	if len(a.colName) == 0 {
		return nil
	}
	if !row.Schema().HasColumn(a.colName) {
		return fmt.Errorf("Cannot count nil values of missing column %s", a.colName)
	}
	if row.IsNil(a.colName) {
		a.nulls++
	}
	return nil
}

// Merge merges another Accumulator into this one
func (a *Count) Merge(o lazytab.Accumulator) error {
	ca, ok := o.(*Count)
	if !ok {
		return fmt.Errorf("Incoming accumulator is not a Count Accumulator")
	} else if ca.colName != a.colName {
		return fmt.Errorf("Cannot merge a count of column %q into a count of column %q", ca.colName, a.colName)
	}
	a.rows += ca.rows
	a.nulls += ca.nulls
	return nil
}
