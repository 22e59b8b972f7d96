package partition

import (
	"fmt"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/netnote/lazytab"
)

// CreateOperablePartition wraps rows in a Partition which can be operated on
func CreateOperablePartition(maxRows int, schema lazytab.Schema) lazytab.OperablePartition {
	return createPartitionImpl(maxRows, schema)
}

// UpdateSchema sets the current schema of this Partition
func (p *partitionImpl) UpdateSchema(currentSchema lazytab.Schema) {
	p.schema = currentSchema
}

// derive creates an empty Partition with the same capacity, schema and keyed status as this one
func (p *partitionImpl) derive() *partitionImpl {
	result := createPartitionImpl(p.maxRows, p.schema)
	result.isKeyed = p.isKeyed
	return result
}

func (p *partitionImpl) keyAt(i int) uint64 {
	if p.isKeyed {
		return p.keys[i]
	}
	return 0
}

// MapRows runs a MapOperation on each row in this Partition, manipulating them in-place. Will fall back to creating a fresh partition if row errors occur.
func (p *partitionImpl) MapRows(fn lazytab.MapOperation) (lazytab.OperablePartition, error) {
	var multierr *multierror.Error
	var result *partitionImpl // nil while we are still manipulating rows in-place
	for i := range p.rows {
		err := fn(p.GetRow(i))
		if err != nil {
			multierr = multierror.Append(multierr, err)
			if result == nil {
				// switch to non-in-place mode, keeping all rows processed so far
				result = p.derive()
				for j := 0; j < i; j++ {
					result.appendRowData(p.rows[j], p.keyAt(j))
				}
			}
		} else if result != nil {
			result.appendRowData(p.rows[i], p.keyAt(i))
		}
	}
	if result == nil {
		return p, nil
	}
	return result, multierr.ErrorOrNil()
}

// FilterRows filters the Rows in the current Partition, creating a new one
func (p *partitionImpl) FilterRows(fn lazytab.FilterOperation) (lazytab.OperablePartition, error) {
	var multierr *multierror.Error
	result := p.derive()
	for i := range p.rows {
		shouldKeep, err := fn(p.GetRow(i))
		if err != nil {
			multierr = multierror.Append(multierr, err)
		} else if shouldKeep {
			result.appendRowData(p.rows[i], p.keyAt(i))
		}
	}
	return result, multierr.ErrorOrNil()
}

// Repack repacks a Partition according to a new Schema, discarding removed columns
func (p *partitionImpl) Repack(newSchema lazytab.Schema) (lazytab.OperablePartition, error) {
	part := createPartitionImpl(p.maxRows, newSchema)
	part.isKeyed = p.isKeyed
	offsets := make([]int, 0, newSchema.Width())
	err := newSchema.ForEachColumn(func(name string, col lazytab.Column) error {
		old, err := p.schema.GetOffset(name)
		if err != nil {
			return fmt.Errorf("Cannot repack Partition: %w", err)
		}
		if col.Index() != len(offsets) {
			return fmt.Errorf("Cannot repack Partition into a Schema with removed columns")
		}
		offsets = append(offsets, old.Index())
		return nil
	})
	if err != nil {
		return nil, err
	}
	for i, data := range p.rows {
		values := make([]interface{}, len(offsets))
		for j, idx := range offsets {
			if idx < len(data.values) {
				values[j] = data.values[idx]
			}
		}
		part.appendRowData(&rowData{values: values}, p.keyAt(i))
	}
	return part, nil
}

// KeyRows generates hash keys for each row. Rows for which keying fails are dropped, and their errors returned.
func (p *partitionImpl) KeyRows(kfn lazytab.KeyingOperation) (lazytab.OperablePartition, error) {
	var multierr *multierror.Error
	result := createPartitionImpl(p.maxRows, p.schema)
	result.isKeyed = true
	for i := range p.rows {
		keyBuf, err := kfn(p.GetRow(i))
		if err != nil {
			multierr = multierror.Append(multierr, err)
			continue
		}
		result.appendRowData(p.rows[i], xxhash.Sum64(keyBuf))
	}
	return result, multierr.ErrorOrNil()
}

// IsKeyed returns true iff KeyRows has been run on this Partition
func (p *partitionImpl) IsKeyed() bool {
	return p.isKeyed
}

// GetKey returns the hash key of a specific row
func (p *partitionImpl) GetKey(rowNum int) (uint64, error) {
	if !p.isKeyed {
		return 0, fmt.Errorf("Partition is not keyed")
	}
	if rowNum < 0 || rowNum >= len(p.keys) {
		return 0, fmt.Errorf("Row %d does not exist in Partition", rowNum)
	}
	return p.keys[rowNum], nil
}
