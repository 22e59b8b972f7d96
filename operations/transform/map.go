package transform

import (
	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/errors"
	iutil "github.com/netnote/lazytab/internal/util"
)

// mapTask runs a MapOperation over each Row of a Partition, in place
type mapTask struct {
	fn lazytab.MapOperation
}

func (s *mapTask) RunWorker(previous lazytab.OperablePartition) ([]lazytab.OperablePartition, error) {
	// failed rows are dropped from next, and their errors returned together
	next, err := previous.MapRows(s.fn)
	return []lazytab.OperablePartition{next}, err
}

func mapOperation(fn lazytab.MapOperation) *lazytab.DataFrameOperation {
	return &lazytab.DataFrameOperation{
		TaskType: lazytab.MapTaskType,
		Do: func(d lazytab.DataFrame) (*lazytab.DataFrameOperationResult, error) {
			return &lazytab.DataFrameOperationResult{
				Task:       &mapTask{fn: iutil.SafeMapOperation(fn)},
				DataSchema: d.GetSchema().Clone(),
			}, nil
		},
	}
}

// Map transforms a Row in-place. fn must not change the Row's Schema.
func Map(fn lazytab.MapOperation) *lazytab.DataFrameOperation {
	return mapOperation(fn)
}

// MapColumn replaces each non-nil value of a column with the result of fn, which must be a
// value of the column's type (or nil). Nil values are not passed to fn.
func MapColumn(colName string, fn func(v interface{}) (interface{}, error)) *lazytab.DataFrameOperation {
	op := mapOperation(func(row lazytab.Row) error {
		if row.IsNil(colName) {
			return nil
		}
		v, err := row.Get(colName)
		if err != nil {
			return err
		}
		out, err := fn(v)
		if err != nil {
			return err
		} else if out == nil {
			return row.SetNil(colName)
		}
		return row.Set(colName, out)
	})
	do := op.Do
	op.Do = func(d lazytab.DataFrame) (*lazytab.DataFrameOperationResult, error) {
		if !d.GetSchema().HasColumn(colName) {
			return nil, errors.SchemaError{Column: colName, Reason: "cannot map a missing column"}
		}
		return do(d)
	}
	return op
}
