package transform

import (
	"fmt"

	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/errors"
	"github.com/netnote/lazytab/expr"
)

type withColumnsTask struct {
	exprs []*expr.Expr
}

func (s *withColumnsTask) RunWorker(previous lazytab.OperablePartition) ([]lazytab.OperablePartition, error) {
	results := make([]interface{}, len(s.exprs))
	err := previous.ForEachRow(func(row lazytab.Row) error {
		// every expression sees the values the row had before this task
		for i, e := range s.exprs {
			var in interface{}
			if !row.IsNil(e.Column()) {
				v, err := row.Get(e.Column())
				if err != nil {
					return err
				}
				in = v
			}
			out, err := e.Apply(in)
			if err != nil {
				if perr, ok := err.(*errors.ParseError); ok && len(perr.Column) == 0 {
					perr.Column = e.Column()
				}
				return err
			}
			results[i] = out
		}
		for i, e := range s.exprs {
			if err := row.Set(e.Name(), results[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return []lazytab.OperablePartition{previous}, nil
}

// WithColumns evaluates expressions against every Row, lazily. Each expression writes
// to the column it reads, or to a new column if it has an alias. Type errors in
// expressions are reported immediately, while value errors are reported when
// the DataFrame is run.
func WithColumns(exprs ...*expr.Expr) *lazytab.DataFrameOperation {
	return &lazytab.DataFrameOperation{
		TaskType: lazytab.WithColumnTaskType,
		Do: func(d lazytab.DataFrame) (*lazytab.DataFrameOperationResult, error) {
			inSchema := d.GetSchema()
			newSchema := inSchema.Clone()
			written := make(map[string]bool, len(exprs))
			for _, e := range exprs {
				if len(e.Column()) == 0 {
					return nil, fmt.Errorf("Cannot apply %s to a DataFrame: it does not read a column", e.String())
				}
				if written[e.Name()] {
					return nil, fmt.Errorf("Column %s is written by more than one expression", e.Name())
				}
				written[e.Name()] = true
				offset, err := inSchema.GetOffset(e.Column())
				if err != nil {
					return nil, err
				}
				outType, err := e.OutputType(offset.Type())
				if err != nil {
					return nil, err
				}
				if newSchema.HasColumn(e.Name()) {
					newSchema, err = newSchema.ReplaceColumnType(e.Name(), outType)
				} else {
					newSchema, err = newSchema.CreateColumn(e.Name(), outType)
				}
				if err != nil {
					return nil, err
				}
			}
			return &lazytab.DataFrameOperationResult{
				Task:       &withColumnsTask{exprs: exprs},
				DataSchema: newSchema,
			}, nil
		},
	}
}
