package util

import (
	"fmt"

	"github.com/netnote/lazytab"
)

type collectTask struct {
	collectionLimit int
}

func (s *collectTask) RunWorker(previous lazytab.OperablePartition) ([]lazytab.OperablePartition, error) {
	// do nothing
	return []lazytab.OperablePartition{previous}, nil
}

func (s *collectTask) GetCollectionLimit() int {
	return s.collectionLimit
}

// Collect declares that data should be materialized upon completion
// of the previous stage, up to collectionLimit Partitions (<= 0 means all).
// This also signals the end of a DataFrame's tasks.
func Collect(collectionLimit int) *lazytab.DataFrameOperation {
	return &lazytab.DataFrameOperation{
		TaskType: lazytab.CollectTaskType,
		Do: func(d lazytab.DataFrame) (*lazytab.DataFrameOperationResult, error) {
			if d.GetDataSource().IsStreaming() {
				return nil, fmt.Errorf("Cannot collect() from a streaming DataSource")
			}
			return &lazytab.DataFrameOperationResult{
				Task:       &collectTask{collectionLimit},
				DataSchema: d.GetSchema().Clone(),
			}, nil
		},
	}
}
