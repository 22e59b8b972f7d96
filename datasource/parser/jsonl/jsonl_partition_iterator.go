package jsonl

import (
	"bufio"
	"strings"
	"sync"

	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/datasource"
	"github.com/netnote/lazytab/errors"
	"github.com/tidwall/gjson"
)

type jsonlFilePartitionIterator struct {
	parser       *Parser
	scanner      *bufio.Scanner
	line         int
	hasNext      bool
	source       lazytab.DataSource
	sourceName   string
	schema       lazytab.Schema
	lock         sync.Mutex
	endListeners []func()
}

// OnEnd registers a listener which fires when this iterator runs out of Partitions
func (jsonli *jsonlFilePartitionIterator) OnEnd(onEnd func()) {
	jsonli.lock.Lock()
	defer jsonli.lock.Unlock()
	jsonli.endListeners = append(jsonli.endListeners, onEnd)
}

// HasNextPartition returns true iff this PartitionIterator can produce another Partition
func (jsonli *jsonlFilePartitionIterator) HasNextPartition() bool {
	jsonli.lock.Lock()
	defer jsonli.lock.Unlock()
	return jsonli.hasNext
}

// Close stops iteration early, firing end listeners
func (jsonli *jsonlFilePartitionIterator) Close() error {
	jsonli.lock.Lock()
	defer jsonli.lock.Unlock()
	jsonli.finish()
	return nil
}

func (jsonli *jsonlFilePartitionIterator) finish() {
	jsonli.hasNext = false
	for _, l := range jsonli.endListeners {
		l()
	}
	jsonli.endListeners = []func(){}
}

// NextPartition returns the next Partition if one is available, or an error
func (jsonli *jsonlFilePartitionIterator) NextPartition() (lazytab.Partition, error) {
	jsonli.lock.Lock()
	defer jsonli.lock.Unlock()
	if !jsonli.hasNext {
		return nil, errors.NoMorePartitionsError{}
	}
	colNames := jsonli.schema.ColumnNames()
	colTypes := jsonli.schema.ColumnTypes()
	part := datasource.CreateBuildablePartition(jsonli.parser.PartitionSize(), jsonli.schema)
	// parse lines
	for part.GetNumRows() < part.GetMaxRows() {
		// grab another line from the file
		if !jsonli.scanner.Scan() {
			jsonli.finish()
			if err := jsonli.scanner.Err(); err != nil {
				return nil, err
			}
			return part, nil
		}
		jsonli.line++
		rowString := strings.TrimSpace(jsonli.scanner.Text())
		if jsonli.line <= jsonli.parser.conf.HeaderLines || len(rowString) == 0 ||
			(jsonli.parser.conf.Comment != 0 && strings.HasPrefix(rowString, string(jsonli.parser.conf.Comment))) {
			continue
		}
		if !gjson.Valid(rowString) {
			jsonli.finish()
			return nil, &errors.ParseError{Source: jsonli.sourceName, Line: jsonli.line, Value: rowString, Err: errInvalidJSON}
		}
		// create a new row to place values into
		row, err := part.AppendEmptyRow()
		if err != nil {
			jsonli.finish()
			return nil, err
		}
		if err = parseJSONRow(jsonli.sourceName, jsonli.line, colNames, colTypes, gjson.Parse(rowString), row); err != nil {
			jsonli.finish()
			return nil, err
		}
	}
	return part, nil
}
