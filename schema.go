package lazytab

// Schema is an ordered mapping from column names to positions
// within a Row. It allows one to obtain positions by name,
// define new columns, remove columns, etc.
//
// Removed columns keep their position (and their slot within Rows)
// until the Schema is repacked, but are otherwise invisible.
type Schema interface {
	Equals(otherSchema Schema) error
	Clone() Schema
	Width() int // number of value slots in a Row respecting this Schema, including removed columns
	NumColumns() int
	NumRemovedColumns() int
	Repack() (newSchema Schema)
	GetOffset(colName string) (offset Column, err error)
	HasColumn(colName string) bool
	CreateColumn(colName string, columnType ColumnType) (newSchema Schema, err error)
	ReplaceColumnType(colName string, columnType ColumnType) (newSchema Schema, err error)
	RenameColumn(oldName string, newName string) (newSchema Schema, err error)
	RemoveColumn(colName string) (newSchema Schema, wasRemoved bool)
	IsMarkedForRemoval(colName string) bool
	ColumnNames() []string
	ColumnTypes() []ColumnType
	ForEachColumn(fn func(name string, col Column) error) error
}
