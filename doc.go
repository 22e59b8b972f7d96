// Package lazytab contains the core components of lazytab, a small deferred-evaluation engine for
// tabular data loaded from delimited text. This root package defines the types which are employed
// during the regular use of the engine (DataFrames, Schemas, Rows, ColumnTypes), as well as in its
// extension (DataSources, Parsers, Tasks), and is the best overview of lazytab's key concepts.
//
// A DataFrame is a description of a computation. Nothing is read from a DataSource until the
// DataFrame is run, which is the job of the local package.
package lazytab
