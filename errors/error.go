package errors

import (
	"fmt"
	"strings"
)

// NilValueError occurs when a value in a Row is null
type NilValueError struct{ Name string }

// Error returns a textual representation of this NilValueError
func (e NilValueError) Error() string {
	return fmt.Sprintf("Value for column %s is nil", e.Name)
}

// IncompatibleRowError occurs when a Row's schema does not match an expected Schema
type IncompatibleRowError struct{}

// Error returns a textual representation of this IncompatibleRowError
func (e IncompatibleRowError) Error() string {
	return "Row width is not compatible with Schema"
}

// PartitionFullError occurs when a Partition has reached its max size an a new Row insertion is attempted
type PartitionFullError struct{}

// Error returns a textual representation of this PartitionFullError
func (e PartitionFullError) Error() string {
	return "Partition is full"
}

// NoMorePartitionsError occurs when there are no more partitions in a PartitionIterator
type NoMorePartitionsError struct{}

// Error returns a textual representation of this NoMorePartitionsError
func (e NoMorePartitionsError) Error() string {
	return "No more partitions"
}

// SchemaError occurs when a declared Schema cannot be interpreted. Schema errors
// are always reported before any data is read.
type SchemaError struct {
	Column string
	Reason string
}

// Error returns a textual representation of this SchemaError
func (e SchemaError) Error() string {
	if len(e.Column) == 0 {
		return fmt.Sprintf("Invalid schema: %s", e.Reason)
	}
	return fmt.Sprintf("Invalid schema for column %s: %s", e.Column, e.Reason)
}

// ParseError occurs when a raw value cannot be parsed as the type declared for its column
type ParseError struct {
	Source string // the file (or other source) containing the value, if known
	Line   int    // 1-based line number of the value, if known
	Column string
	Value  string
	Err    error
}

// Error returns a textual representation of this ParseError
func (e *ParseError) Error() string {
	var res strings.Builder
	if len(e.Source) > 0 {
		fmt.Fprintf(&res, "%s:", e.Source)
	}
	if e.Line > 0 {
		fmt.Fprintf(&res, "%d:", e.Line)
	}
	if res.Len() > 0 {
		res.WriteString(" ")
	}
	if len(e.Column) > 0 {
		fmt.Fprintf(&res, "Column %s could not parse value %q", e.Column, e.Value)
	} else {
		res.WriteString("Could not parse row")
	}
	if e.Err != nil {
		fmt.Fprintf(&res, ": %s", e.Err.Error())
	}
	return res.String()
}

// Unwrap returns the underlying cause of this ParseError
func (e *ParseError) Unwrap() error {
	return e.Err
}

// FieldCountError occurs when a row of delimited data has a different number of fields than its header or Schema
type FieldCountError struct {
	Source   string
	Line     int
	Expected int
	Actual   int
}

// Error returns a textual representation of this FieldCountError
func (e *FieldCountError) Error() string {
	return fmt.Sprintf("%s:%d: Row has %d fields, expected %d", e.Source, e.Line, e.Actual, e.Expected)
}
