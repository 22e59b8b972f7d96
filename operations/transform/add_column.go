package transform

import "github.com/netnote/lazytab"

// AddColumn declares that a new (empty) column with a
// specific type and name should be available to the
// next Task of the DataFrame pipeline
func AddColumn(colName string, colType lazytab.ColumnType) *lazytab.DataFrameOperation {
	return &lazytab.DataFrameOperation{
		TaskType: lazytab.NoOpTaskType,
		Do: func(d lazytab.DataFrame) (*lazytab.DataFrameOperationResult, error) {
			newSchema, err := d.GetSchema().Clone().CreateColumn(colName, colType)
			if err != nil {
				return nil, err
			}
			return &lazytab.DataFrameOperationResult{
				Task:       &schemaTask{},
				DataSchema: newSchema,
			}, nil
		},
	}
}
