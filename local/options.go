package local

import (
	"runtime"

	"github.com/netnote/lazytab/logging"
)

// Options configures a local run
type Options struct {
	NumWorkers      int  // the maximum number of units of work (e.g. files) processed concurrently. Defaults to runtime.NumCPU().
	IgnoreRowErrors bool // iff true, log row transformation errors instead of failing immediately
	LogLevel        int  // the minimum level of logged messages. Defaults to logging.WarnLevel.
}

// CloneOptions makes a copy of an Options
func CloneOptions(opts *Options) *Options {
	return &Options{
		NumWorkers:      opts.NumWorkers,
		IgnoreRowErrors: opts.IgnoreRowErrors,
		LogLevel:        opts.LogLevel,
	}
}

func ensureDefaultOptionsValues(opts *Options) {
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = runtime.NumCPU()
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logging.WarnLevel
	}
}
