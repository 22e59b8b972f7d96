package util

import (
	"fmt"

	"github.com/netnote/lazytab"
)

type accumulateTask struct {
	facc lazytab.AccumulatorFactory
}

func (s *accumulateTask) RunWorker(previous lazytab.OperablePartition) ([]lazytab.OperablePartition, error) {
	return []lazytab.OperablePartition{previous}, nil
}

func (s *accumulateTask) GetAccumulatorFactory() lazytab.AccumulatorFactory {
	return s.facc
}

// Accumulate folds every row into a user-provided data structure.
// This also signals the end of a DataFrame's tasks.
func Accumulate(facc lazytab.AccumulatorFactory) *lazytab.DataFrameOperation {
	return &lazytab.DataFrameOperation{
		TaskType: lazytab.AccumulateTaskType,
		Do: func(d lazytab.DataFrame) (*lazytab.DataFrameOperationResult, error) {
			if facc == nil {
				return nil, fmt.Errorf("Cannot accumulate() with a nil AccumulatorFactory")
			}
			return &lazytab.DataFrameOperationResult{
				Task: &accumulateTask{
					facc: facc,
				},
				DataSchema: d.GetSchema().Clone(),
			}, nil
		},
	}
}
