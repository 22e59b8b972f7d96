package lazytab

import (
	"fmt"
	"strconv"
	"time"
)

// ColumnType is an interface which is implemented to define supported column types.
// lazytab provides a variety of built-in types in this package.
type ColumnType interface {
	Name() string                  // Name returns the canonical type name, as accepted by schema.ParseColumnType
	ToString(v interface{}) string // ToString produces a string representation of a value of this type
}

// ScalarColumnType is a ColumnType holding a single value per cell, which can be parsed from raw text
type ScalarColumnType interface {
	ColumnType
	Parse(raw string) (interface{}, error) // Parse converts raw text into a value of this type
}

// IsScalar returns true iff colType is a ScalarColumnType
func IsScalar(colType ColumnType) (isScalar bool) {
	_, isScalar = colType.(ScalarColumnType)
	return
}

// BoolColumnType is a column type which stores a boolean value
type BoolColumnType struct{}

// Name returns the canonical name of this type
func (b *BoolColumnType) Name() string { return "bool" }

// ToString produces a string representation of a value of a BoolColumnType value
func (b *BoolColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%t", v.(bool))
}

// Parse parses a bool from raw text
func (b *BoolColumnType) Parse(raw string) (interface{}, error) {
	return strconv.ParseBool(raw)
}

// Uint8ColumnType is a column type which stores a uint8 value
type Uint8ColumnType struct{}

// Name returns the canonical name of this type
func (b *Uint8ColumnType) Name() string { return "uint8" }

// ToString produces a string representation of a value of a Uint8ColumnType value
func (b *Uint8ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(uint8))
}

// Parse parses a uint8 from raw text
func (b *Uint8ColumnType) Parse(raw string) (interface{}, error) {
	ival, err := strconv.ParseUint(raw, 10, 8)
	if err != nil {
		return nil, err
	}
	return uint8(ival), nil
}

// Uint16ColumnType is a column type which stores a uint16 value
type Uint16ColumnType struct{}

// Name returns the canonical name of this type
func (b *Uint16ColumnType) Name() string { return "uint16" }

// ToString produces a string representation of a value of a Uint16ColumnType value
func (b *Uint16ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(uint16))
}

// Parse parses a uint16 from raw text
func (b *Uint16ColumnType) Parse(raw string) (interface{}, error) {
	ival, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return nil, err
	}
	return uint16(ival), nil
}

// Uint32ColumnType is a column type which stores a uint32 value
type Uint32ColumnType struct{}

// Name returns the canonical name of this type
func (b *Uint32ColumnType) Name() string { return "uint32" }

// ToString produces a string representation of a value of a Uint32ColumnType value
func (b *Uint32ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(uint32))
}

// Parse parses a uint32 from raw text
func (b *Uint32ColumnType) Parse(raw string) (interface{}, error) {
	ival, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, err
	}
	return uint32(ival), nil
}

// Uint64ColumnType is a column type which stores a uint64 value
type Uint64ColumnType struct{}

// Name returns the canonical name of this type
func (b *Uint64ColumnType) Name() string { return "uint64" }

// ToString produces a string representation of a value of a Uint64ColumnType value
func (b *Uint64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(uint64))
}

// Parse parses a uint64 from raw text
func (b *Uint64ColumnType) Parse(raw string) (interface{}, error) {
	return strconv.ParseUint(raw, 10, 64)
}

// Int8ColumnType is a column type which stores an int8 value
type Int8ColumnType struct{}

// Name returns the canonical name of this type
func (b *Int8ColumnType) Name() string { return "int8" }

// ToString produces a string representation of a value of an Int8ColumnType value
func (b *Int8ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int8))
}

// Parse parses an int8 from raw text
func (b *Int8ColumnType) Parse(raw string) (interface{}, error) {
	ival, err := strconv.ParseInt(raw, 10, 8)
	if err != nil {
		return nil, err
	}
	return int8(ival), nil
}

// Int16ColumnType is a column type which stores an int16 value
type Int16ColumnType struct{}

// Name returns the canonical name of this type
func (b *Int16ColumnType) Name() string { return "int16" }

// ToString produces a string representation of a value of an Int16ColumnType value
func (b *Int16ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int16))
}

// Parse parses an int16 from raw text
func (b *Int16ColumnType) Parse(raw string) (interface{}, error) {
	ival, err := strconv.ParseInt(raw, 10, 16)
	if err != nil {
		return nil, err
	}
	return int16(ival), nil
}

// Int32ColumnType is a column type which stores an int32 value
type Int32ColumnType struct{}

// Name returns the canonical name of this type
func (b *Int32ColumnType) Name() string { return "int32" }

// ToString produces a string representation of a value of an Int32ColumnType value
func (b *Int32ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int32))
}

// Parse parses an int32 from raw text
func (b *Int32ColumnType) Parse(raw string) (interface{}, error) {
	ival, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return nil, err
	}
	return int32(ival), nil
}

// Int64ColumnType is a column type which stores an int64 value
type Int64ColumnType struct{}

// Name returns the canonical name of this type
func (b *Int64ColumnType) Name() string { return "int64" }

// ToString produces a string representation of an Int64ColumnType value
func (b *Int64ColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("%d", v.(int64))
}

// Parse parses an int64 from raw text
func (b *Int64ColumnType) Parse(raw string) (interface{}, error) {
	return strconv.ParseInt(raw, 10, 64)
}

// Float32ColumnType is a column type which stores a float32 value
type Float32ColumnType struct{}

// Name returns the canonical name of this type
func (b *Float32ColumnType) Name() string { return "float32" }

// ToString produces a string representation of a value of a Float32ColumnType value
func (b *Float32ColumnType) ToString(v interface{}) string {
	return strconv.FormatFloat(float64(v.(float32)), 'g', -1, 32)
}

// Parse parses a float32 from raw text
func (b *Float32ColumnType) Parse(raw string) (interface{}, error) {
	fval, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return nil, err
	}
	return float32(fval), nil
}

// Float64ColumnType is a column type which stores a float64 value
type Float64ColumnType struct{}

// Name returns the canonical name of this type
func (b *Float64ColumnType) Name() string { return "float64" }

// ToString produces a string representation of a value of a Float64ColumnType value
func (b *Float64ColumnType) ToString(v interface{}) string {
	return strconv.FormatFloat(v.(float64), 'g', -1, 64)
}

// Parse parses a float64 from raw text
func (b *Float64ColumnType) Parse(raw string) (interface{}, error) {
	return strconv.ParseFloat(raw, 64)
}

// TimeColumnType is a column type which stores a time.Time value, parsed using Format (time.RFC3339 if empty)
type TimeColumnType struct {
	Format string
}

// Name returns the canonical name of this type
func (b *TimeColumnType) Name() string {
	if len(b.Format) == 0 {
		return "time"
	}
	return "time:" + b.Format
}

// ToString produces a string representation of a value of a TimeColumnType value
func (b *TimeColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%s\"", v.(time.Time).Format(b.layout()))
}

// Parse parses a time.Time from raw text
func (b *TimeColumnType) Parse(raw string) (interface{}, error) {
	return time.Parse(b.layout(), raw)
}

func (b *TimeColumnType) layout() string {
	if len(b.Format) == 0 {
		return time.RFC3339
	}
	return b.Format
}
