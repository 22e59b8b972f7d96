package partition

import (
	"fmt"
	"strings"
	"time"

	"github.com/netnote/lazytab"
	errors "github.com/netnote/lazytab/errors"
)

// rowData holds the positional values of a single Row, indexed by Column.Index()
type rowData struct {
	values []interface{}
}

// rowImpl is a representation of a single row of tabular data,
// (a slice of a Partition), along with a reference to the
// Schema for that row (a mapping of column names to value
// positions).
type rowImpl struct {
	data   *rowData
	schema lazytab.Schema // schema lets us pick the values we need out of the row
}

// CreateRow builds a new, empty Row with the given Schema. Used for testing and for detached rows.
func CreateRow(schema lazytab.Schema) lazytab.Row {
	return &rowImpl{data: &rowData{values: make([]interface{}, schema.Width())}, schema: schema}
}

// Schema returns a read-only copy of the schema for a row
func (r *rowImpl) Schema() lazytab.Schema {
	return r.schema.Clone()
}

// ToString returns a string representation of this row
func (r *rowImpl) ToString() string {
	var res strings.Builder
	fmt.Fprint(&res, "{")
	r.schema.ForEachColumn(func(name string, col lazytab.Column) error {
		val := "nil"
		if v := r.value(col); v != nil {
			val = col.Type().ToString(v)
		}
		fmt.Fprintf(&res, "\"%s\": %s,", name, val)
		return nil
	})
	fmt.Fprint(&res, "}")
	return res.String()
}

func (r *rowImpl) value(offset lazytab.Column) interface{} {
	if offset.Index() >= len(r.data.values) {
		return nil
	}
	return r.data.values[offset.Index()]
}

func (r *rowImpl) store(offset lazytab.Column, value interface{}) {
	if idx := offset.Index(); idx >= len(r.data.values) {
		grown := make([]interface{}, idx+1)
		copy(grown, r.data.values)
		r.data.values = grown
	}
	r.data.values[offset.Index()] = value
}

// IsNil returns true iff the given column value is nil in this row. If an error occurs, this function will return false.
func (r *rowImpl) IsNil(colName string) bool {
	offset, err := r.schema.GetOffset(colName)
	if err != nil {
		return false
	}
	return r.value(offset) == nil
}

// SetNil sets the given column value to nil within this row
func (r *rowImpl) SetNil(colName string) error {
	offset, err := r.schema.GetOffset(colName)
	if err != nil {
		return err
	}
	r.store(offset, nil)
	return nil
}

// Get returns the value of any column as an interface{}, if it exists and is not nil
func (r *rowImpl) Get(colName string) (interface{}, error) {
	offset, err := r.schema.GetOffset(colName)
	if err != nil {
		return nil, err
	}
	v := r.value(offset)
	if v == nil {
		return nil, errors.NilValueError{Name: colName}
	}
	return v, nil
}

// Set stores any value in the given column, without type checking
func (r *rowImpl) Set(colName string, value interface{}) error {
	offset, err := r.schema.GetOffset(colName)
	if err != nil {
		return err
	}
	r.store(offset, value)
	return nil
}

// getAs retrieves a non-nil value of type T from the named column
func getAs[T any](r *rowImpl, colName string) (T, error) {
	var zero T
	v, err := r.Get(colName)
	if err != nil {
		return zero, err
	}
	res, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("Column %s holds a %T, not a %T", colName, v, zero)
	}
	return res, nil
}

// setTyped stores value in the named column, which must have a ColumnType of type C
func setTyped[C lazytab.ColumnType](r *rowImpl, colName string, value interface{}) error {
	offset, err := r.schema.GetOffset(colName)
	if err != nil {
		return err
	}
	if _, ok := offset.Type().(C); !ok {
		return fmt.Errorf("Column %s has type %s, which cannot store a %T", colName, offset.Type().Name(), value)
	}
	r.store(offset, value)
	return nil
}

// GetBool retrieves a single bool from the column with the given name.
func (r *rowImpl) GetBool(colName string) (bool, error) { return getAs[bool](r, colName) }

// GetUint8 retrieves a single uint8 from the column with the given name.
func (r *rowImpl) GetUint8(colName string) (uint8, error) { return getAs[uint8](r, colName) }

// GetUint16 retrieves a single uint16 from the column with the given name
func (r *rowImpl) GetUint16(colName string) (uint16, error) { return getAs[uint16](r, colName) }

// GetUint32 retrieves a single uint32 from the column with the given name
func (r *rowImpl) GetUint32(colName string) (uint32, error) { return getAs[uint32](r, colName) }

// GetUint64 retrieves a single uint64 from the column with the given name
func (r *rowImpl) GetUint64(colName string) (uint64, error) { return getAs[uint64](r, colName) }

// GetInt8 retrieves a single int8 from the column with the given name
func (r *rowImpl) GetInt8(colName string) (int8, error) { return getAs[int8](r, colName) }

// GetInt16 retrieves a single int16 from the column with the given name
func (r *rowImpl) GetInt16(colName string) (int16, error) { return getAs[int16](r, colName) }

// GetInt32 retrieves a single int32 from the column with the given name
func (r *rowImpl) GetInt32(colName string) (int32, error) { return getAs[int32](r, colName) }

// GetInt64 retrieves a single int64 from the column with the given name
func (r *rowImpl) GetInt64(colName string) (int64, error) { return getAs[int64](r, colName) }

// GetFloat32 retrieves a single float32 from the column with the given name
func (r *rowImpl) GetFloat32(colName string) (float32, error) { return getAs[float32](r, colName) }

// GetFloat64 retrieves a single float64 from the column with the given name
func (r *rowImpl) GetFloat64(colName string) (float64, error) { return getAs[float64](r, colName) }

// GetTime retrieves a single Time from the column with the given name
func (r *rowImpl) GetTime(colName string) (time.Time, error) { return getAs[time.Time](r, colName) }

// GetVarString retrieves a single string from the column with the given name
func (r *rowImpl) GetVarString(colName string) (string, error) { return getAs[string](r, colName) }

// GetVarBytes retrieves a variable-length byte array from the column with the given name
func (r *rowImpl) GetVarBytes(colName string) ([]byte, error) { return getAs[[]byte](r, colName) }

// GetList retrieves the items of a list column with the given name
func (r *rowImpl) GetList(colName string) ([]interface{}, error) {
	return getAs[[]interface{}](r, colName)
}

// SetBool modifies a single bool from the column with the given name.
func (r *rowImpl) SetBool(colName string, value bool) error {
	return setTyped[*lazytab.BoolColumnType](r, colName, value)
}

// SetUint8 modifies a single uint8 from the column with the given name.
func (r *rowImpl) SetUint8(colName string, value uint8) error {
	return setTyped[*lazytab.Uint8ColumnType](r, colName, value)
}

// SetUint16 modifies a single uint16 from the column with the given name.
func (r *rowImpl) SetUint16(colName string, value uint16) error {
	return setTyped[*lazytab.Uint16ColumnType](r, colName, value)
}

// SetUint32 modifies a single uint32 from the column with the given name.
func (r *rowImpl) SetUint32(colName string, value uint32) error {
	return setTyped[*lazytab.Uint32ColumnType](r, colName, value)
}

// SetUint64 modifies a single uint64 from the column with the given name.
func (r *rowImpl) SetUint64(colName string, value uint64) error {
	return setTyped[*lazytab.Uint64ColumnType](r, colName, value)
}

// SetInt8 modifies a single int8 from the column with the given name.
func (r *rowImpl) SetInt8(colName string, value int8) error {
	return setTyped[*lazytab.Int8ColumnType](r, colName, value)
}

// SetInt16 modifies a single int16 from the column with the given name.
func (r *rowImpl) SetInt16(colName string, value int16) error {
	return setTyped[*lazytab.Int16ColumnType](r, colName, value)
}

// SetInt32 modifies a single int32 from the column with the given name.
func (r *rowImpl) SetInt32(colName string, value int32) error {
	return setTyped[*lazytab.Int32ColumnType](r, colName, value)
}

// SetInt64 modifies a single int64 from the column with the given name.
func (r *rowImpl) SetInt64(colName string, value int64) error {
	return setTyped[*lazytab.Int64ColumnType](r, colName, value)
}

// SetFloat32 modifies a single float32 from the column with the given name.
func (r *rowImpl) SetFloat32(colName string, value float32) error {
	return setTyped[*lazytab.Float32ColumnType](r, colName, value)
}

// SetFloat64 modifies a single float64 from the column with the given name.
func (r *rowImpl) SetFloat64(colName string, value float64) error {
	return setTyped[*lazytab.Float64ColumnType](r, colName, value)
}

// SetTime modifies a single Time from the column with the given name.
func (r *rowImpl) SetTime(colName string, value time.Time) error {
	return setTyped[*lazytab.TimeColumnType](r, colName, value)
}

// SetVarString modifies a single string from the column with the given name.
func (r *rowImpl) SetVarString(colName string, value string) error {
	return setTyped[*lazytab.VarStringColumnType](r, colName, value)
}

// SetVarBytes modifies a single variable-length byte array from the column with the given name.
func (r *rowImpl) SetVarBytes(colName string, value []byte) error {
	return setTyped[*lazytab.VarBytesColumnType](r, colName, value)
}

// SetList modifies the items of a list column with the given name. A nil slice stores nil.
func (r *rowImpl) SetList(colName string, value []interface{}) error {
	if value == nil {
		return r.SetNil(colName)
	}
	return setTyped[*lazytab.ListColumnType](r, colName, value)
}
