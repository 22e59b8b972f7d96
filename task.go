package lazytab

// A Task is an action or transformation applied
// to Partitions of tabular data.
type Task interface {
	RunWorker(previous OperablePartition) ([]OperablePartition, error)
}
