// Package dsv loads delimiter-separated text (CSV, TSV and similar) as lazy DataFrames.
//
// LoadLazy builds a DataFrame from files matching a glob, typing columns from an optional
// Schema. Columns declared as lists (e.g. list<int64>) hold a whole list encoded in a single
// cell, such as [1,2,3]. They are scanned as raw strings, and decoded by expressions attached
// to the DataFrame, which run when the DataFrame is run.
//
// Quoting is never interpreted: the separator must not appear inside a value.
package dsv
