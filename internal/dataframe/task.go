package dataframe

import (
	"github.com/netnote/lazytab"
)

// noOpTask is a task that does nothing
type noOpTask struct{}

// RunWorker for noOpTask does nothing
func (s *noOpTask) RunWorker(previous lazytab.OperablePartition) ([]lazytab.OperablePartition, error) {
	return []lazytab.OperablePartition{previous}, nil
}

// shuffleTask is implemented by Tasks which end a Stage with a keyed reduction
type shuffleTask interface {
	lazytab.Task
	GetKeyingOperation() lazytab.KeyingOperation
	GetReductionOperation() lazytab.ReductionOperation
}

// accumulationTask is implemented by Tasks which end a job with an Accumulator
type accumulationTask interface {
	lazytab.Task
	GetAccumulatorFactory() lazytab.AccumulatorFactory
}

// collectionTask is implemented by Tasks which end a job by collecting Partitions
type collectionTask interface {
	lazytab.Task
	GetCollectionLimit() int
}
