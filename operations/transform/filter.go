package transform

import (
	"github.com/netnote/lazytab"
	iutil "github.com/netnote/lazytab/internal/util"
)

type filterTask struct {
	fn lazytab.FilterOperation
}

func (s *filterTask) RunWorker(previous lazytab.OperablePartition) ([]lazytab.OperablePartition, error) {
	result, err := previous.FilterRows(s.fn)
	return []lazytab.OperablePartition{result}, err
}

// Filter filters Rows out of a Partition, creating a new one. Rows are kept iff fn returns true.
func Filter(fn lazytab.FilterOperation) *lazytab.DataFrameOperation {
	return &lazytab.DataFrameOperation{
		TaskType: lazytab.FilterTaskType,
		Do: func(d lazytab.DataFrame) (*lazytab.DataFrameOperationResult, error) {
			return &lazytab.DataFrameOperationResult{
				Task:       &filterTask{fn: iutil.SafeFilterOperation(fn)},
				DataSchema: d.GetSchema().Clone(),
			}, nil
		},
	}
}
