// Package memory provides a DataSource which reads data from in-memory buffers. Each buffer is loaded by a single PartitionLoader.
package memory

import (
	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/datasource"
)

// DataSource is a set of buffers containing data which will be manipulated according to a DataFrame
type DataSource struct {
	data [][]byte
}

// CreateDataSource is a factory for DataSources
func CreateDataSource(data [][]byte) *DataSource {
	return &DataSource{data: data}
}

// CreateDataFrame is a factory for DataFrames backed by in-memory buffers
func CreateDataFrame(data [][]byte, parser lazytab.DataSourceParser, schema lazytab.Schema) lazytab.DataFrame {
	return datasource.CreateDataFrame(CreateDataSource(data), parser, schema)
}

// Buffers returns the buffers of this DataSource
func (fs *DataSource) Buffers() [][]byte {
	return fs.data
}

// Analyze returns a PartitionMap, describing how the source data will be divided into Partitions
func (fs *DataSource) Analyze() (lazytab.PartitionMap, error) {
	return &PartitionMap{
		source: fs,
	}, nil
}

// IsStreaming returns true iff this DataSource provides a continuous stream of data
func (fs *DataSource) IsStreaming() bool {
	return false
}
