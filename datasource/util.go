package datasource

import (
	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/internal/dataframe"
	"github.com/netnote/lazytab/internal/partition"
)

// CreateDataFrame produces a fresh DataFrame (useful for the implementation of DataSources)
func CreateDataFrame(source lazytab.DataSource, parser lazytab.DataSourceParser, schema lazytab.Schema) lazytab.DataFrame {
	return dataframe.CreateDataFrame(source, parser, schema)
}

// CreateBuildablePartition produces an empty Partition which can be appended to (useful for the implementation of DataSourceParsers)
func CreateBuildablePartition(maxRows int, schema lazytab.Schema) lazytab.BuildablePartition {
	return partition.CreateBuildablePartition(maxRows, schema)
}
