package transform

import (
	"fmt"

	"github.com/netnote/lazytab"
)

// RemoveColumn removes existing columns. Their values are discarded when the DataFrame is next repacked.
func RemoveColumn(oldNames ...string) *lazytab.DataFrameOperation {
	return &lazytab.DataFrameOperation{
		TaskType: lazytab.NoOpTaskType,
		Do: func(d lazytab.DataFrame) (*lazytab.DataFrameOperationResult, error) {
			newSchema := d.GetSchema().Clone()
			for _, oldName := range oldNames {
				var removed bool
				if newSchema, removed = newSchema.RemoveColumn(oldName); !removed {
					return nil, fmt.Errorf("Cannot remove column %s, which does not exist", oldName)
				}
			}
			return &lazytab.DataFrameOperationResult{
				Task:       &schemaTask{},
				DataSchema: newSchema,
			}, nil
		},
	}
}
