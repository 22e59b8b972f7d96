package dsv

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/datasource"
	"github.com/netnote/lazytab/errors"
)

type dsvFilePartitionIterator struct {
	parser        *Parser
	reader        *lineReader
	headerSkipped bool
	hasNext       bool
	source        lazytab.DataSource
	sourceName    string
	schema        lazytab.Schema
	lock          sync.Mutex
	endListeners  []func()
}

// OnEnd registers a listener which fires when this iterator runs out of Partitions
func (dsvi *dsvFilePartitionIterator) OnEnd(onEnd func()) {
	dsvi.lock.Lock()
	defer dsvi.lock.Unlock()
	dsvi.endListeners = append(dsvi.endListeners, onEnd)
}

// HasNextPartition returns true iff this PartitionIterator can produce another Partition
func (dsvi *dsvFilePartitionIterator) HasNextPartition() bool {
	dsvi.lock.Lock()
	defer dsvi.lock.Unlock()
	return dsvi.hasNext
}

// Close stops iteration early, firing end listeners
func (dsvi *dsvFilePartitionIterator) Close() error {
	dsvi.lock.Lock()
	defer dsvi.lock.Unlock()
	dsvi.finish()
	return nil
}

// finish marks this iterator as exhausted and fires end listeners once
func (dsvi *dsvFilePartitionIterator) finish() {
	dsvi.hasNext = false
	for _, l := range dsvi.endListeners {
		l()
	}
	dsvi.endListeners = []func(){}
}

// NextPartition returns the next Partition if one is available, or an error.
// Any error ends iteration.
func (dsvi *dsvFilePartitionIterator) NextPartition() (lazytab.Partition, error) {
	dsvi.lock.Lock()
	defer dsvi.lock.Unlock()
	if !dsvi.hasNext {
		return nil, errors.NoMorePartitionsError{}
	}
	colNames := dsvi.schema.ColumnNames()
	// ignore header lines, if configured to do so
	if !dsvi.headerSkipped {
		dsvi.headerSkipped = true
		if err := dsvi.skipHeader(colNames); err != nil {
			dsvi.finish()
			return nil, err
		}
		// a blank line is a nil value in a single-column file
		dsvi.reader.keepBlank = len(colNames) == 1
	}
	colTypes := dsvi.schema.ColumnTypes()
	part := datasource.CreateBuildablePartition(dsvi.parser.PartitionSize(), dsvi.schema)
	// parse lines
	for part.GetNumRows() < part.GetMaxRows() {
		fields, err := dsvi.reader.next()
		if err == io.EOF {
			dsvi.finish()
			return part, nil
		} else if err != nil {
			dsvi.finish()
			return nil, err
		}
		// create a new row to place values into
		row, err := part.AppendEmptyRow()
		if err != nil {
			dsvi.finish()
			return nil, err
		}
		if err = scanRow(dsvi.parser.conf, dsvi.sourceName, dsvi.reader.line, colNames, colTypes, fields, row); err != nil {
			dsvi.finish()
			return nil, err
		}
	}
	return part, nil
}

// skipHeader consumes header lines, checking the last one against colNames if configured to
func (dsvi *dsvFilePartitionIterator) skipHeader(colNames []string) error {
	var header []string
	for i := 0; i < dsvi.parser.conf.HeaderLines; i++ {
		fields, err := dsvi.reader.next()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		header = fields
	}
	if !dsvi.parser.conf.CheckHeader || header == nil {
		return nil
	}
	names, err := columnNames(header, nil)
	if err == nil && strings.Join(names, "\x00") == strings.Join(colNames, "\x00") {
		return nil
	}
	return &errors.ParseError{
		Source: dsvi.sourceName,
		Line:   dsvi.reader.line,
		Err: errors.SchemaError{
			Reason: fmt.Sprintf("header [%s] does not match columns [%s]", strings.Join(header, ", "), strings.Join(colNames, ", ")),
		},
	}
}
