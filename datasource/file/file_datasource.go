package file

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/datasource"
)

// DataSource is a set of files containing data which will be manipulated according to a DataFrame
type DataSource struct {
	glob string
}

// CreateDataSource is a factory for DataSources
func CreateDataSource(glob string) *DataSource {
	return &DataSource{glob: glob}
}

// CreateDataFrame is a factory for DataFrames backed by files
func CreateDataFrame(glob string, parser lazytab.DataSourceParser, schema lazytab.Schema) lazytab.DataFrame {
	return datasource.CreateDataFrame(CreateDataSource(glob), parser, schema)
}

// Files returns the paths matched by this DataSource's glob, in lexical order
func (fs *DataSource) Files() ([]string, error) {
	matches, err := filepath.Glob(fs.glob)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("glob %s produced 0 files", fs.glob)
	}
	sort.Strings(matches)
	return matches, nil
}

// Analyze returns a PartitionMap, describing how the source files will be divided into Partitions
func (fs *DataSource) Analyze() (lazytab.PartitionMap, error) {
	files, err := fs.Files()
	if err != nil {
		return nil, err
	}
	return &PartitionMap{
		files:  files,
		source: fs,
	}, nil
}

// IsStreaming returns true iff this DataSource provides a continuous stream of data
func (fs *DataSource) IsStreaming() bool {
	return false
}
