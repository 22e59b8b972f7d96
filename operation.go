package lazytab

// AccumulatorFactory is a function that produces a fresh Accumulator
type AccumulatorFactory func() Accumulator

// DataFrameOperationResult is the result of applying a DataFrameOperation to a DataFrame:
// the Task which performs the "work", and the Schema of the data after the Task has run.
type DataFrameOperationResult struct {
	Task       Task
	DataSchema Schema
}

// DataFrameOperation - A generic DataFrame transform, returning a Task that performs the "work" and a (potentially) altered Schema.
type DataFrameOperation struct {
	TaskType TaskType
	Do       func(d DataFrame) (*DataFrameOperationResult, error)
}

// MapOperation - A generic function for manipulating Rows in-place
type MapOperation func(row Row) error

// FilterOperation - A generic function for determining whether or not a Row should be retained
type FilterOperation func(row Row) (bool, error)

// KeyingOperation - A generic function for generating a key from a Row
type KeyingOperation func(row Row) ([]byte, error)

// ReductionOperation - A generic function for reducing Rows sharing a key. rrow is merged into lrow, and rrow is discarded.
type ReductionOperation func(lrow Row, rrow Row) error
