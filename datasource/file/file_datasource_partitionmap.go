package file

import (
	"strings"

	"github.com/netnote/lazytab"
)

// PartitionMap produces one PartitionLoader per matched file, in lexical order
type PartitionMap struct {
	files  []string
	next   int
	source *DataSource
}

// HasNext returns true iff there is another PartitionLoader remaining
func (pm *PartitionMap) HasNext() bool {
	return pm.next < len(pm.files)
}

// Next returns the PartitionLoader for the next file. Compression is decided here, by file extension.
func (pm *PartitionMap) Next() lazytab.PartitionLoader {
	path := pm.files[pm.next]
	pm.next++
	return &PartitionLoader{path: path, compressed: isCompressed(path), source: pm.source}
}

// isCompressed returns true iff path names an lz4 file
func isCompressed(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".lz4")
}
