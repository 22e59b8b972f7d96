package memory

import (
	"bytes"
	"fmt"

	"github.com/netnote/lazytab"
)

// PartitionLoader is capable of loading partitions of data from a buffer
type PartitionLoader struct {
	idx    int
	source *DataSource
}

// ToString returns a string representation of this PartitionLoader
func (pl *PartitionLoader) ToString() string {
	return fmt.Sprintf("Memory loader index: %d", pl.idx)
}

// SourceName identifies the buffer loaded by this PartitionLoader in error messages
func (pl *PartitionLoader) SourceName() string {
	return fmt.Sprintf("memory[%d]", pl.idx)
}

// Load is capable of loading partitions of data from a buffer
func (pl *PartitionLoader) Load(parser lazytab.DataSourceParser, schema lazytab.Schema) (lazytab.PartitionIterator, error) {
	r := bytes.NewReader(pl.source.data[pl.idx])
	return parser.Parse(r, pl.source, pl.SourceName(), schema, nil)
}
