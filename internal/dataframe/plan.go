package dataframe

import (
	"fmt"

	"github.com/netnote/lazytab"
)

// Plan is an optimized execution plan for a DataFrame
type Plan struct {
	stages []*stageImpl
	parser lazytab.DataSourceParser
	source lazytab.DataSource
}

// Size returns the number of stages in this Plan
func (p *Plan) Size() int {
	return len(p.stages)
}

// Parser returns this Plan's DataSourceParser
func (p *Plan) Parser() lazytab.DataSourceParser {
	return p.parser
}

// Source returns this Plan's DataSource
func (p *Plan) Source() lazytab.DataSource {
	return p.source
}

// Optimize splits the DataFrame chain into stages. Each stage's execution will be
// blocked until the completion of the previous stage. Stages end at shuffles,
// accumulations and collections.
func Optimize(frame lazytab.DataFrame) (*Plan, error) {
	df, ok := frame.(*dataFrameImpl)
	if !ok {
		return nil, fmt.Errorf("DataFrame of type %T was not created by lazytab", frame)
	}
	// create a slice of frames, in order of execution, by following parent links
	frames := []*dataFrameImpl{}
	for next := df; next != nil; next = next.parent {
		frames = append([]*dataFrameImpl{next}, frames...)
	}
	stages := []*stageImpl{}
	newStage := func() *stageImpl {
		s := createStage(len(stages))
		if len(stages) > 0 {
			s.incomingSchema = stages[len(stages)-1].outgoingSchema
		} else {
			s.incomingSchema = frames[0].schema
		}
		stages = append(stages, s)
		return s
	}
	current := newStage()
	for i, f := range frames {
		current.frames = append(current.frames, f)
		current.outgoingSchema = f.schema
		switch f.taskType {
		case lazytab.ShuffleTaskType:
			sTask, ok := f.task.(shuffleTask)
			if !ok {
				return nil, fmt.Errorf("taskType is %s but Task is not a shuffleTask. Task is misdefined", f.taskType)
			}
			current.keyFn = sTask.GetKeyingOperation()
			current.reduceFn = sTask.GetReductionOperation()
			if i+1 < len(frames) {
				current = newStage()
			}
		case lazytab.AccumulateTaskType:
			aTask, ok := f.task.(accumulationTask)
			if !ok {
				return nil, fmt.Errorf("taskType is %s but Task is not an accumulationTask. Task is misdefined", f.taskType)
			}
			current.accumulatorFn = aTask.GetAccumulatorFactory()
		case lazytab.CollectTaskType:
			cTask, ok := f.task.(collectionTask)
			if !ok {
				return nil, fmt.Errorf("taskType is %s but Task is not a collectionTask. Task is misdefined", f.taskType)
			}
			current.collectionLimit = cTask.GetCollectionLimit()
		}
		if f.taskType.IsTerminal() && i+1 < len(frames) {
			return nil, fmt.Errorf("No tasks can follow a %s task", f.taskType)
		}
	}
	return &Plan{stages: stages, parser: df.parser, source: df.source}, nil
}
