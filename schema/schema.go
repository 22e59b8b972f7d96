package schema

import (
	"fmt"
	"sort"

	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/errors"
)

// column describes the position and type of a field in a Row.
type column struct {
	idx     int
	colType lazytab.ColumnType
}

// Clone returns a copy of this Column
func (c *column) Clone() lazytab.Column {
	return &column{c.idx, c.colType}
}

// Index returns the index of this Column within a Row
func (c *column) Index() int {
	return c.idx
}

// Type returns the ColumnType of this Column
func (c *column) Type() lazytab.ColumnType {
	return c.colType
}

// schema is an ordered mapping from column names to value
// positions within a Row. It allows one to obtain positions by name,
// define new columns, remove columns, etc.
type schema struct {
	schema   map[string]*column
	toRemove map[string]bool
}

// CreateSchema is a factory for Schemas
func CreateSchema() lazytab.Schema {
	return &schema{
		schema:   make(map[string]*column),
		toRemove: make(map[string]bool),
	}
}

// Equals returns nil iff this and another Schema have the same visible columns, in the same order, with the same types
func (s *schema) Equals(otherSchema lazytab.Schema) error {
	names := s.ColumnNames()
	otherNames := otherSchema.ColumnNames()
	if len(names) != len(otherNames) {
		return fmt.Errorf("Schemas have unequal numbers of columns (%d vs %d)", len(names), len(otherNames))
	}
	types := s.ColumnTypes()
	otherTypes := otherSchema.ColumnTypes()
	for i := range names {
		if names[i] != otherNames[i] {
			return fmt.Errorf("Column %d names do not match (%s vs %s)", i, names[i], otherNames[i])
		}
		if types[i].Name() != otherTypes[i].Name() {
			return fmt.Errorf("Column %s types do not match (%s vs %s)", names[i], types[i].Name(), otherTypes[i].Name())
		}
	}
	return nil
}

// Clone returns a copy of this Schema
func (s *schema) Clone() lazytab.Schema {
	newSchema := make(map[string]*column, len(s.schema))
	for k, v := range s.schema {
		newSchema[k] = &column{v.idx, v.colType}
	}
	newRemoved := make(map[string]bool, len(s.toRemove))
	for k, v := range s.toRemove {
		newRemoved[k] = v
	}
	return &schema{schema: newSchema, toRemove: newRemoved}
}

// Width returns the number of value slots in a Row respecting this Schema, including removed columns
func (s *schema) Width() int {
	return len(s.schema)
}

// NumColumns returns the number of visible columns in this Schema
func (s *schema) NumColumns() int {
	return len(s.schema) - len(s.toRemove)
}

// NumRemovedColumns returns the number of removed columns in this Schema
func (s *schema) NumRemovedColumns() int {
	return len(s.toRemove)
}

// Repack produces a new Schema without the columns which have been marked for removal, preserving column order
func (s *schema) Repack() (newSchema lazytab.Schema) {
	newSchema = CreateSchema()
	names := s.ColumnNames()
	types := s.ColumnTypes()
	for i, name := range names {
		newSchema, _ = newSchema.CreateColumn(name, types[i])
	}
	return
}

// GetOffset returns the position and type of a particular column within a row.
func (s *schema) GetOffset(colName string) (lazytab.Column, error) {
	offset, ok := s.schema[colName]
	if !ok {
		return nil, fmt.Errorf("Schema does not contain column with name %s", colName)
	}
	if s.toRemove[colName] {
		return nil, fmt.Errorf("Column %s has been removed", colName)
	}
	return offset, nil
}

// HasColumn returns true iff this schema contains a visible column with the given name
func (s *schema) HasColumn(colName string) bool {
	_, err := s.GetOffset(colName)
	return err == nil
}

// CreateColumn defines a new column at the end of the Schema
func (s *schema) CreateColumn(colName string, columnType lazytab.ColumnType) (newSchema lazytab.Schema, err error) {
	if columnType == nil {
		return nil, errors.SchemaError{Column: colName, Reason: "column type is nil"}
	}
	if _, containsOffset := s.schema[colName]; containsOffset {
		return nil, fmt.Errorf("Schema already contains column with name %s", colName)
	}
	s.schema[colName] = &column{len(s.schema), columnType}
	return s, nil
}

// ReplaceColumnType changes the type of an existing column, keeping its position
func (s *schema) ReplaceColumnType(colName string, columnType lazytab.ColumnType) (lazytab.Schema, error) {
	if columnType == nil {
		return nil, errors.SchemaError{Column: colName, Reason: "column type is nil"}
	}
	if _, err := s.GetOffset(colName); err != nil {
		return nil, err
	}
	s.schema[colName].colType = columnType
	return s, nil
}

// RenameColumn renames a column within the Schema
func (s *schema) RenameColumn(oldName string, newName string) (lazytab.Schema, error) {
	if s.IsMarkedForRemoval(oldName) {
		return nil, fmt.Errorf("Cannot rename removed column %s", oldName)
	}
	if _, err := s.GetOffset(oldName); err != nil {
		return nil, err
	}
	if oldName == newName {
		return s, nil
	}
	if _, exists := s.schema[newName]; exists {
		return nil, fmt.Errorf("Schema already contains column with name %s", newName)
	}
	s.schema[newName] = s.schema[oldName]
	delete(s.schema, oldName)
	return s, nil
}

// RemoveColumn marks a column for removal from the Schema, at a convenient time.
// This does not alter the positions of other columns.
func (s *schema) RemoveColumn(colName string) (lazytab.Schema, bool) {
	if !s.HasColumn(colName) {
		return s, false
	}
	s.toRemove[colName] = true
	return s, true
}

// IsMarkedForRemoval returns true iff the given column has been marked for removal
func (s *schema) IsMarkedForRemoval(colName string) bool {
	return s.toRemove[colName]
}

// sortedNames returns the visible column names in index order
func (s *schema) sortedNames() []string {
	names := make([]string, 0, s.NumColumns())
	for k := range s.schema {
		if !s.toRemove[k] {
			names = append(names, k)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return s.schema[names[i]].idx < s.schema[names[j]].idx
	})
	return names
}

// ColumnNames returns the visible names in the schema, in index order
func (s *schema) ColumnNames() []string {
	return s.sortedNames()
}

// ColumnTypes returns the visible types in the schema, in index order
func (s *schema) ColumnTypes() []lazytab.ColumnType {
	names := s.sortedNames()
	types := make([]lazytab.ColumnType, len(names))
	for i, name := range names {
		types[i] = s.schema[name].colType
	}
	return types
}

// ForEachColumn iterates over the visible columns in this Schema, in index order
func (s *schema) ForEachColumn(fn func(name string, col lazytab.Column) error) error {
	for _, name := range s.sortedNames() {
		if err := fn(name, s.schema[name]); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks that every column in a Schema has an interpretable type. List columns
// must wrap a scalar type; nested lists are not supported.
func Validate(s lazytab.Schema) error {
	return s.ForEachColumn(func(name string, col lazytab.Column) error {
		switch colType := col.Type().(type) {
		case nil:
			return errors.SchemaError{Column: name, Reason: "column type is nil"}
		case *lazytab.ListColumnType:
			if colType.Inner == nil {
				return errors.SchemaError{Column: name, Reason: "list column has no inner type"}
			}
			if !lazytab.IsScalar(colType.Inner) {
				return errors.SchemaError{Column: name, Reason: fmt.Sprintf("list inner type %s is not a scalar type", colType.Inner.Name())}
			}
		default:
			if !lazytab.IsScalar(colType) {
				return errors.SchemaError{Column: name, Reason: fmt.Sprintf("unsupported column type %T", colType)}
			}
		}
		return nil
	})
}
