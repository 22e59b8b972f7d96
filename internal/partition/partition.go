package partition

import (
	"log"

	uuid "github.com/gofrs/uuid"
	"github.com/netnote/lazytab"
	errors "github.com/netnote/lazytab/errors"
)

// partitionImpl is lazytab's internal implementation of Partition
type partitionImpl struct {
	id      string
	maxRows int
	rows    []*rowData
	keys    []uint64
	schema  lazytab.Schema
	isKeyed bool
}

// createPartitionImpl creates a new, empty Partition with a schema
func createPartitionImpl(maxRows int, schema lazytab.Schema) *partitionImpl {
	id, err := uuid.NewV4()
	if err != nil {
		log.Fatalf("failed to generate UUID for Partition: %v", err)
	}
	return &partitionImpl{
		id:      id.String(),
		maxRows: maxRows,
		rows:    make([]*rowData, 0, maxRows),
		schema:  schema,
	}
}

// CreateBuildablePartition creates a new, empty Partition which can be appended to
func CreateBuildablePartition(maxRows int, schema lazytab.Schema) lazytab.BuildablePartition {
	return createPartitionImpl(maxRows, schema)
}

// ID retrieves the ID of this Partition
func (p *partitionImpl) ID() string {
	return p.id
}

// GetMaxRows retrieves the maximum number of rows in this Partition
func (p *partitionImpl) GetMaxRows() int {
	return p.maxRows
}

// GetNumRows retrieves the number of rows in this Partition
func (p *partitionImpl) GetNumRows() int {
	return len(p.rows)
}

// GetRow retrieves a specific row from this Partition
func (p *partitionImpl) GetRow(rowNum int) lazytab.Row {
	return &rowImpl{data: p.rows[rowNum], schema: p.schema}
}

// GetSchema retrieves the current Schema of the Rows in this Partition
func (p *partitionImpl) GetSchema() lazytab.Schema {
	return p.schema
}

// AppendEmptyRow is a convenient way to add an empty Row to the end of this Partition, returning the Row so that Row methods can be used to populate it
func (p *partitionImpl) AppendEmptyRow() (lazytab.Row, error) {
	if len(p.rows) >= p.maxRows {
		return nil, errors.PartitionFullError{}
	}
	data := &rowData{values: make([]interface{}, p.schema.Width())}
	p.rows = append(p.rows, data)
	return &rowImpl{data: data, schema: p.schema}, nil
}

// AppendRow copies a Row to the end of this Partition, if it isn't full. Values are copied by column name.
func (p *partitionImpl) AppendRow(row lazytab.Row) error {
	if len(p.rows) >= p.maxRows {
		return errors.PartitionFullError{}
	}
	if irow, ok := row.(*rowImpl); ok && irow.schema == p.schema {
		values := make([]interface{}, p.schema.Width())
		copy(values, irow.data.values)
		p.rows = append(p.rows, &rowData{values: values})
		return nil
	}
	newRow, err := p.AppendEmptyRow()
	if err != nil {
		return err
	}
	err = p.schema.ForEachColumn(func(name string, col lazytab.Column) error {
		if row.IsNil(name) {
			return nil
		}
		v, err := row.Get(name)
		if err != nil {
			return err
		}
		return newRow.Set(name, v)
	})
	if err != nil {
		p.rows = p.rows[:len(p.rows)-1]
		return errors.IncompatibleRowError{}
	}
	return nil
}

// appendRowData shares (rather than copies) row data from another partition
func (p *partitionImpl) appendRowData(data *rowData, key uint64) {
	p.rows = append(p.rows, data)
	if p.isKeyed {
		p.keys = append(p.keys, key)
	}
}

// ForEachRow iterates over Rows in a Partition
func (p *partitionImpl) ForEachRow(fn lazytab.MapOperation) error {
	row := &rowImpl{schema: p.schema}
	for _, data := range p.rows {
		row.data = data
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}
