package dataframe

import (
	"github.com/hashicorp/go-multierror"
	"github.com/netnote/lazytab"
)

// Stage is a group of tasks which can run against individual
// Partitions without coordination. Stages block the execution
// of further stages until they are complete.
type stageImpl struct {
	id              int
	incomingSchema  lazytab.Schema
	outgoingSchema  lazytab.Schema
	frames          []*dataFrameImpl
	keyFn           lazytab.KeyingOperation
	reduceFn        lazytab.ReductionOperation
	accumulatorFn   lazytab.AccumulatorFactory
	collectionLimit int
}

// createStage is a factory for Stages
func createStage(id int) *stageImpl {
	return &stageImpl{
		id:     id,
		frames: []*dataFrameImpl{},
	}
}

// ID returns the ID for this Stage
func (s *stageImpl) ID() int {
	return s.id
}

// IncomingSchema is the Schema for data entering this Stage
func (s *stageImpl) IncomingSchema() lazytab.Schema {
	return s.incomingSchema
}

// OutgoingSchema is the Schema for data leaving this Stage
func (s *stageImpl) OutgoingSchema() lazytab.Schema {
	return s.outgoingSchema
}

// WorkerExecute runs a stage against a Partition of data, returning
// the modified Partition (which may have been modified in-place, filtered,
// or turned into multiple Partitions). Row errors (*multierror.Error) are
// passed to onRowError, and the affected rows are dropped if it returns nil.
func (s *stageImpl) WorkerExecute(part lazytab.OperablePartition, onRowError func(error) error) ([]lazytab.OperablePartition, error) {
	var prev = []lazytab.OperablePartition{part}
	for _, frame := range s.frames {
		next := make([]lazytab.OperablePartition, 0, len(prev))
		for _, p := range prev {
			out, err := frame.workerExecuteTask(p)
			if err != nil {
				if _, isRowError := err.(*multierror.Error); !isRowError || out == nil {
					return nil, err
				}
				if err = onRowError(err); err != nil {
					return nil, err
				}
			}
			next = append(next, out...)
		}
		prev = next
	}
	return prev, nil
}

func (s *stageImpl) lastTaskType() lazytab.TaskType {
	if len(s.frames) == 0 {
		return lazytab.NoOpTaskType
	}
	return s.frames[len(s.frames)-1].taskType
}

// EndsInAccumulate returns true iff this Stage ends with an accumulation task
func (s *stageImpl) EndsInAccumulate() bool {
	return s.lastTaskType() == lazytab.AccumulateTaskType
}

// EndsInShuffle returns true iff this Stage ends with a reduction task
func (s *stageImpl) EndsInShuffle() bool {
	return s.lastTaskType() == lazytab.ShuffleTaskType
}

// EndsInCollect returns true iff this Stage represents a collect task
func (s *stageImpl) EndsInCollect() bool {
	return s.lastTaskType() == lazytab.CollectTaskType
}

// GetCollectionLimit returns the maximum number of Partitions to collect
func (s *stageImpl) GetCollectionLimit() int {
	return s.collectionLimit
}

// KeyingOperation retrieves the KeyingOperation for this Stage (if it exists)
func (s *stageImpl) KeyingOperation() lazytab.KeyingOperation {
	return s.keyFn
}

// ReductionOperation retrieves the ReductionOperation for this Stage (if it exists)
func (s *stageImpl) ReductionOperation() lazytab.ReductionOperation {
	return s.reduceFn
}

// AccumulatorFactory retrieves the AccumulatorFactory for this Stage (if it exists)
func (s *stageImpl) AccumulatorFactory() lazytab.AccumulatorFactory {
	return s.accumulatorFn
}
