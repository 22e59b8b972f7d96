package transform

import "github.com/netnote/lazytab"

// schemaTask is a task that does nothing to row data. It is used by operations
// which only change the Schema of a DataFrame.
type schemaTask struct{}

// RunWorker for schemaTask does nothing
func (s *schemaTask) RunWorker(previous lazytab.OperablePartition) ([]lazytab.OperablePartition, error) {
	return []lazytab.OperablePartition{previous}, nil
}
