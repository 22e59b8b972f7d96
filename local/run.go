package local

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/internal/dataframe"
	"github.com/netnote/lazytab/internal/stats"
	iutil "github.com/netnote/lazytab/internal/util"
	"github.com/netnote/lazytab/logging"
	"github.com/netnote/lazytab/operations/util"
)

// Result is the output of a local run
type Result struct {
	Collected   []lazytab.CollectedPartition // collected Partitions in source order, if the DataFrame ends in a Collect
	Schema      lazytab.Schema               // the Schema of the collected Rows
	Accumulated lazytab.Accumulator          // the merged Accumulator, if the DataFrame ends in an Accumulate
	Stats       lazytab.RuntimeStatistics
}

// Run executes a DataFrame. Any failure aborts the whole run, and no partial results are returned.
func Run(ctx context.Context, frame lazytab.DataFrame, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	opts = CloneOptions(opts)
	ensureDefaultOptionsValues(opts)
	logger := logging.CreateLogger("local", opts.LogLevel)
	plan, err := dataframe.Optimize(frame)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Running job with %d stages", plan.Size())
	statsTracker := &stats.RunStatistics{}
	executor := dataframe.CreatePlanExecutor(plan, &dataframe.ExecutorConfig{
		NumWorkers: opts.NumWorkers,
		OnRowError: func(err error) error {
			multierr, ok := err.(*multierror.Error)
			if !opts.IgnoreRowErrors || !ok {
				// either this isn't a multierr or we're supposed to fail immediately
				return err
			}
			multierr.ErrorFormat = iutil.FormatMultiError
			logger.Warnf("Ignoring row errors:\n%s", multierr.Error())
			return nil
		},
		Logger: logger,
	}, statsTracker)
	res, err := executor.Run(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Finished job in %s", statsTracker.GetRuntime())
	return &Result{
		Collected:   res.Collected,
		Schema:      res.Schema,
		Accumulated: res.Accumulator,
		Stats:       statsTracker,
	}, nil
}

// Collect materializes every Row of a DataFrame, in source order
func Collect(ctx context.Context, frame lazytab.DataFrame, opts *Options) ([]lazytab.Row, lazytab.Schema, error) {
	frame, err := frame.To(util.Collect(0))
	if err != nil {
		return nil, nil, err
	}
	res, err := Run(ctx, frame, opts)
	if err != nil {
		return nil, nil, err
	}
	rows := []lazytab.Row{}
	for _, part := range res.Collected {
		for i := 0; i < part.GetNumRows(); i++ {
			rows = append(rows, part.GetRow(i))
		}
	}
	return rows, res.Schema, nil
}
