package dataframe

import (
	"fmt"

	"github.com/netnote/lazytab"
)

// A dataFrameImpl implements DataFrame internally for lazytab
type dataFrameImpl struct {
	parent   *dataFrameImpl           // the parent DataFrame. Nil if this is the root.
	task     lazytab.Task             // the task represented by this DataFrame, executed to produce the next one
	taskType lazytab.TaskType         // a unique name for the type of task this DataFrame represents
	source   lazytab.DataSource       // the source of the data
	parser   lazytab.DataSourceParser // the parser for the source data
	schema   lazytab.Schema           // the schema of the data after this task. will include columns which have been removed (until a repack).
}

// CreateDataFrame is a factory for DataFrames. This function is not intended to be used directly,
// as DataFrames are returned by DataSource packages.
func CreateDataFrame(source lazytab.DataSource, parser lazytab.DataSourceParser, schema lazytab.Schema) lazytab.DataFrame {
	return &dataFrameImpl{
		parent:   nil,
		task:     &noOpTask{},
		taskType: lazytab.ExtractTaskType,
		source:   source,
		parser:   parser,
		schema:   schema,
	}
}

// GetSchema returns the Schema of a DataFrame
func (df *dataFrameImpl) GetSchema() lazytab.Schema {
	return df.schema
}

// GetDataSource returns the DataSource of a DataFrame
func (df *dataFrameImpl) GetDataSource() lazytab.DataSource {
	return df.source
}

// GetParser returns the DataSourceParser of a DataFrame
func (df *dataFrameImpl) GetParser() lazytab.DataSourceParser {
	return df.parser
}

// To is a "functional operations" factory method for DataFrames,
// chaining operations onto the current one(s).
func (df *dataFrameImpl) To(ops ...*lazytab.DataFrameOperation) (lazytab.DataFrame, error) {
	next := df
	for _, op := range ops {
		if op == nil {
			return nil, fmt.Errorf("Cannot apply a nil DataFrameOperation")
		}
		if next.taskType.IsTerminal() {
			return nil, fmt.Errorf("No tasks can follow a %s task", next.taskType)
		}
		result, err := op.Do(next)
		if err != nil {
			return nil, err
		}
		next = &dataFrameImpl{
			parent:   next,
			source:   df.source,
			task:     result.Task,
			taskType: op.TaskType,
			parser:   df.parser,
			schema:   result.DataSchema,
		}
	}
	return next, nil
}

// workerExecuteTask runs this DataFrame's task against the previous Partition,
// returning the modified Partition (or a new one(s) if necessary).
func (df *dataFrameImpl) workerExecuteTask(previous lazytab.OperablePartition) ([]lazytab.OperablePartition, error) {
	previous.UpdateSchema(df.schema)
	return df.task.RunWorker(previous)
}
