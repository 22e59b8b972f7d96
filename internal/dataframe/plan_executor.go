package dataframe

import (
	"context"
	"fmt"
	"io"

	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/errors"
	"github.com/netnote/lazytab/internal/partition"
	"github.com/netnote/lazytab/internal/stats"
	"github.com/netnote/lazytab/logging"
	"golang.org/x/sync/errgroup"
)

// ExecutorConfig configures a PlanExecutor
type ExecutorConfig struct {
	NumWorkers int               // the maximum number of units of work processed concurrently
	OnRowError func(error) error // receives row errors from user operations. Returning nil drops the affected rows and continues.
	Logger     *logging.Logger
}

// PlanResult is the output of an executed Plan
type PlanResult struct {
	Collected   []lazytab.CollectedPartition // collected Partitions, in source order (if the Plan ends in a collect)
	Schema      lazytab.Schema               // the repacked Schema of the final Stage
	Accumulator lazytab.Accumulator          // the merged Accumulator (if the Plan ends in an accumulation)
}

// unit is an independent piece of work within a Stage: either a PartitionLoader
// from the DataSource, or Partitions produced by a previous Stage
type unit struct {
	loader lazytab.PartitionLoader
	parts  []lazytab.OperablePartition
}

// unitResult is the output of a unit of work within a Stage
type unitResult struct {
	parts []lazytab.OperablePartition
	acc   lazytab.Accumulator
}

// PlanExecutor executes a Plan locally, processing units of work concurrently
type PlanExecutor struct {
	plan         *Plan
	conf         *ExecutorConfig
	statsTracker *stats.RunStatistics
}

// CreatePlanExecutor is a factory for PlanExecutors
func CreatePlanExecutor(plan *Plan, conf *ExecutorConfig, statsTracker *stats.RunStatistics) *PlanExecutor {
	if conf.NumWorkers <= 0 {
		conf.NumWorkers = 1
	}
	if conf.OnRowError == nil {
		conf.OnRowError = func(err error) error { return err }
	}
	return &PlanExecutor{plan: plan, conf: conf, statsTracker: statsTracker}
}

// Run executes every Stage of the Plan. Failures abort the whole run, and no partial results are returned.
func (pe *PlanExecutor) Run(ctx context.Context) (*PlanResult, error) {
	pe.statsTracker.Start(pe.plan.Size())
	defer pe.statsTracker.Finish()
	pmap, err := pe.plan.Source().Analyze()
	if err != nil {
		return nil, err
	}
	units := []*unit{}
	for pmap.HasNext() {
		units = append(units, &unit{loader: pmap.Next()})
	}
	var results []*unitResult
	for _, stage := range pe.plan.stages {
		pe.conf.Logger.Debugf("Starting stage %d with %d units of work", stage.ID(), len(units))
		pe.statsTracker.StartStage()
		results, err = pe.runStage(ctx, stage, units)
		if err != nil {
			return nil, err
		}
		pe.statsTracker.EndStage(stage.ID())
		pe.conf.Logger.Debugf("Finished stage %d", stage.ID())
		if stage.EndsInShuffle() {
			units, err = pe.shuffle(stage, results)
			if err != nil {
				return nil, err
			}
		}
	}
	final := pe.plan.stages[len(pe.plan.stages)-1]
	res := &PlanResult{Schema: final.OutgoingSchema().Repack()}
	switch {
	case final.EndsInAccumulate():
		res.Accumulator, err = mergeAccumulators(final.AccumulatorFactory(), results)
	case final.EndsInCollect():
		res.Collected, err = collect(final.GetCollectionLimit(), res.Schema, results)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// runStage processes all units of work for a Stage, at most NumWorkers at a time.
// Results are stored in unit order, regardless of completion order.
func (pe *PlanExecutor) runStage(ctx context.Context, stage *stageImpl, units []*unit) ([]*unitResult, error) {
	results := make([]*unitResult, len(units))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(pe.conf.NumWorkers)
	for i, u := range units {
		i, u := i, u
		g.Go(func() error {
			res, err := pe.runUnit(gctx, stage, u)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runUnit applies a Stage's tasks to every Partition of a unit of work
func (pe *PlanExecutor) runUnit(ctx context.Context, stage *stageImpl, u *unit) (*unitResult, error) {
	res := &unitResult{}
	if stage.EndsInAccumulate() {
		res.acc = stage.AccumulatorFactory()()
	}
	process := func(part lazytab.OperablePartition) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		numRows := part.GetNumRows()
		out, err := stage.WorkerExecute(part, pe.conf.OnRowError)
		if err != nil {
			return err
		}
		for _, p := range out {
			if res.acc != nil {
				if err := p.ForEachRow(res.acc.Accumulate); err != nil {
					return err
				}
			} else {
				res.parts = append(res.parts, p)
			}
		}
		pe.statsTracker.EndPartition(stage.ID(), numRows)
		return nil
	}
	if u.loader == nil {
		for _, part := range u.parts {
			if err := process(part); err != nil {
				return nil, err
			}
		}
		return res, nil
	}
	pe.conf.Logger.Debugf("Loading %s", u.loader.ToString())
	it, err := u.loader.Load(pe.plan.Parser(), stage.IncomingSchema())
	if err != nil {
		return nil, err
	}
	if closer, ok := it.(io.Closer); ok {
		defer closer.Close()
	}
	for it.HasNextPartition() {
		part, err := it.NextPartition()
		if _, ok := err.(errors.NoMorePartitionsError); ok {
			// It's ok for a data source to throw this once, as HasNextPartition is just a hint
			break
		} else if err != nil {
			return nil, err
		}
		opart, ok := part.(lazytab.OperablePartition)
		if !ok {
			return nil, fmt.Errorf("Partition %s from %s is not operable", part.ID(), u.loader.ToString())
		}
		if err := process(opart); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// rowLocation identifies a Row within the output of a shuffle
type rowLocation struct {
	part int
	row  int
}

// shuffle merges keyed rows from every unit using the Stage's ReductionOperation.
// Keys are ordered by first appearance, and each output Partition becomes a unit
// of work for the next Stage.
func (pe *PlanExecutor) shuffle(stage *stageImpl, results []*unitResult) ([]*unit, error) {
	maxRows := pe.plan.Parser().PartitionSize()
	var out []lazytab.BuildablePartition
	index := make(map[uint64]rowLocation)
	for _, res := range results {
		for _, part := range res.parts {
			for i := 0; i < part.GetNumRows(); i++ {
				key, err := part.GetKey(i)
				if err != nil {
					return nil, err
				}
				row := part.GetRow(i)
				if loc, ok := index[key]; ok {
					if err := stage.ReductionOperation()(out[loc.part].GetRow(loc.row), row); err != nil {
						if err = pe.conf.OnRowError(err); err != nil {
							return nil, err
						}
					}
					continue
				}
				if len(out) == 0 || out[len(out)-1].GetNumRows() >= maxRows {
					out = append(out, partition.CreateBuildablePartition(maxRows, stage.OutgoingSchema()))
				}
				target := out[len(out)-1]
				if err := target.AppendRow(row); err != nil {
					return nil, err
				}
				index[key] = rowLocation{part: len(out) - 1, row: target.GetNumRows() - 1}
			}
		}
	}
	units := make([]*unit, len(out))
	for i, part := range out {
		units[i] = &unit{parts: []lazytab.OperablePartition{part.(lazytab.OperablePartition)}}
	}
	pe.conf.Logger.Debugf("Shuffled stage %d into %d keys", stage.ID(), len(index))
	return units, nil
}

// mergeAccumulators merges per-unit Accumulators in unit order
func mergeAccumulators(factory lazytab.AccumulatorFactory, results []*unitResult) (lazytab.Accumulator, error) {
	if len(results) == 0 {
		return factory(), nil
	}
	acc := results[0].acc
	for _, res := range results[1:] {
		if err := acc.Merge(res.acc); err != nil {
			return nil, err
		}
	}
	return acc, nil
}

// collect repacks non-empty Partitions in unit order, up to limit Partitions (<= 0 means all)
func collect(limit int, schema lazytab.Schema, results []*unitResult) ([]lazytab.CollectedPartition, error) {
	collected := []lazytab.CollectedPartition{}
	for _, res := range results {
		for _, part := range res.parts {
			if limit > 0 && len(collected) >= limit {
				return collected, nil
			}
			if part.GetNumRows() == 0 {
				continue
			}
			repacked, err := part.Repack(schema)
			if err != nil {
				return nil, err
			}
			collected = append(collected, repacked)
		}
	}
	return collected, nil
}
