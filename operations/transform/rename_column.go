package transform

import (
	"github.com/netnote/lazytab"
)

// RenameColumn renames an existing column
func RenameColumn(oldName string, newName string) *lazytab.DataFrameOperation {
	return &lazytab.DataFrameOperation{
		TaskType: lazytab.NoOpTaskType,
		Do: func(d lazytab.DataFrame) (*lazytab.DataFrameOperationResult, error) {
			newSchema, err := d.GetSchema().Clone().RenameColumn(oldName, newName)
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
