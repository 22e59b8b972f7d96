package lazytab

// TaskType describes the type of a Task, used internally to control behaviour
type TaskType string

const (
	// NoOpTaskType indicates that this task does not manipulate data
	NoOpTaskType TaskType = "no_op"
	// ExtractTaskType indicates that this task sources data from a DataSource
	ExtractTaskType TaskType = "extract"
	// ShuffleTaskType indicates that this task triggers a keyed reduction
	ShuffleTaskType TaskType = "shuffle"
	// AccumulateTaskType indicates that this task triggers an Accumulation
	AccumulateTaskType TaskType = "accumulate"
	// MapTaskType indicates that this task triggers a Map
	MapTaskType TaskType = "map"
	// FilterTaskType indicates that this task triggers a Filter
	FilterTaskType TaskType = "filter"
	// WithColumnTaskType indicates that this task computes columns from deferred expressions
	WithColumnTaskType TaskType = "with_column"
	// CollectTaskType indicates that this task triggers a Collect
	CollectTaskType TaskType = "collect"
)

// IsTerminal returns true iff no task may follow a task of this type
func (t TaskType) IsTerminal() bool {
	return t == AccumulateTaskType || t == CollectTaskType
}
