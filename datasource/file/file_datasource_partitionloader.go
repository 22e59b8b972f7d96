package file

import (
	"fmt"
	"io"
	"os"

	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/logging"
	"github.com/pierrec/lz4"
)

var logger = logging.CreateLogger("file", logging.WarnLevel)

// PartitionLoader is capable of loading partitions of data from a file
type PartitionLoader struct {
	path       string
	compressed bool
	source     *DataSource
}

// ToString returns a string representation of this PartitionLoader
func (pl *PartitionLoader) ToString() string {
	if pl.compressed {
		return fmt.Sprintf("File loader filename: %s (lz4)", pl.path)
	}
	return fmt.Sprintf("File loader filename: %s", pl.path)
}

// Load is capable of loading partitions of data from a file
func (pl *PartitionLoader) Load(parser lazytab.DataSourceParser, schema lazytab.Schema) (lazytab.PartitionIterator, error) {
	f, err := open(pl.path, pl.compressed)
	if err != nil {
		return nil, err
	}
	pi, err := parser.Parse(f, pl.source, pl.path, schema, func() {
		if err := f.Close(); err != nil {
			logger.Warnf("couldn't close file %s: %v", pl.path, err)
		}
	})
	if err != nil {
		f.Close()
		return nil, err
	}
	return pi, nil
}

type lz4File struct {
	*lz4.Reader
	f *os.File
}

func (l *lz4File) Close() error {
	return l.f.Close()
}

// Open opens a file for reading. Files ending in .lz4 are decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	return open(path, isCompressed(path))
}

func open(path string, compressed bool) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if compressed {
		return &lz4File{Reader: lz4.NewReader(f), f: f}, nil
	}
	return f, nil
}
