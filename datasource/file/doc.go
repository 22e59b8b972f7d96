// Package file provides a DataSource which reads data from files on disk, matched by a glob.
// Files are loaded in their entirety by a single PartitionLoader, so it is favourable if individual
// files represent roughly equal-sized divisions of data. Files ending in .lz4 are decompressed
// transparently.
package file
