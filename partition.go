package lazytab

// A Partition is a portion of a tabular dataset, consisting of multiple Rows.
// Partitions are not generally interacted with directly, instead being
// manipulated by DataFrame Tasks.
type Partition interface {
	ID() string            // ID retrieves the ID of this Partition
	GetMaxRows() int       // GetMaxRows retrieves the maximum number of rows in this Partition
	GetNumRows() int       // GetNumRows retrieves the number of rows in this Partition
	GetRow(rowNum int) Row // GetRow retrieves a specific row from this Partition
	GetSchema() Schema     // GetSchema retrieves the current Schema of the Rows in this Partition
}

// A BuildablePartition can be built. Used in the implementation of DataSources and Parsers
type BuildablePartition interface {
	Partition
	AppendEmptyRow() (Row, error) // AppendEmptyRow is a convenient way to add an empty Row to the end of this Partition, returning the Row so that Row methods can be used to populate it
	AppendRow(row Row) error      // AppendRow copies a Row to the end of this Partition, if it isn't full
}

// A KeyablePartition can be keyed. Used in the implementation of reduction
type KeyablePartition interface {
	KeyRows(kfn KeyingOperation) (OperablePartition, error) // KeyRows generates hash keys for each row. Rows for which keying fails are dropped, and their errors returned.
	IsKeyed() bool                                          // IsKeyed returns true iff KeyRows has been run on this Partition
	GetKey(rowNum int) (uint64, error)                      // GetKey returns the hash key of a specific row
}

// An OperablePartition can be operated on
type OperablePartition interface {
	Partition
	KeyablePartition
	UpdateSchema(currentSchema Schema)                        // UpdateSchema sets the current schema of a Partition
	MapRows(fn MapOperation) (OperablePartition, error)       // MapRows runs a MapOperation on each row in this Partition, manipulating them in-place. Rows which produce errors are dropped, and their errors returned.
	FilterRows(fn FilterOperation) (OperablePartition, error) // FilterRows filters the Rows in the current Partition, creating a new one
	Repack(newSchema Schema) (OperablePartition, error)       // Repack repacks a Partition according to a new Schema, discarding removed columns
	ForEachRow(fn MapOperation) error                         // ForEachRow iterates over Rows in a Partition
}

// A CollectedPartition has been collected
type CollectedPartition interface {
	Partition
	ForEachRow(fn MapOperation) error // ForEachRow iterates over Rows in a Partition
}
