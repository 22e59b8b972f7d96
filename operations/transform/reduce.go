package transform

import (
	"github.com/netnote/lazytab"
	iutil "github.com/netnote/lazytab/internal/util"
)

type reduceTask struct {
	kfn lazytab.KeyingOperation
	fn  lazytab.ReductionOperation
}

func (s *reduceTask) RunWorker(previous lazytab.OperablePartition) ([]lazytab.OperablePartition, error) {
	// Start by keying the rows in the partition. Merging happens once every partition has been keyed.
	part, err := previous.KeyRows(s.kfn)
	return []lazytab.OperablePartition{part}, err
}

func (s *reduceTask) GetKeyingOperation() lazytab.KeyingOperation {
	return s.kfn
}

func (s *reduceTask) GetReductionOperation() lazytab.ReductionOperation {
	return s.fn
}

// Reduce combines rows sharing a key, which is hashed with xxhash. Output rows appear
// in order of the first appearance of their key.
func Reduce(kfn lazytab.KeyingOperation, fn lazytab.ReductionOperation) *lazytab.DataFrameOperation {
	return &lazytab.DataFrameOperation{
		TaskType: lazytab.ShuffleTaskType,
		Do: func(d lazytab.DataFrame) (*lazytab.DataFrameOperationResult, error) {
			return &lazytab.DataFrameOperationResult{
				Task: &reduceTask{
					kfn: iutil.SafeKeyingOperation(kfn),
					fn:  iutil.SafeReductionOperation(fn),
				},
				DataSchema: d.GetSchema().Clone(),
			}, nil
		},
	}
}
