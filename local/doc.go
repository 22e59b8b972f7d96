// Package local runs DataFrames within the current process, loading and transforming
// Partitions concurrently.
package local
