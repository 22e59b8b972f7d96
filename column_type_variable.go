package lazytab

import (
	"fmt"
	"strings"
)

// VarStringColumnType is a column type which stores a variable-length string value
type VarStringColumnType struct{}

// Name returns the canonical name of this type
func (b *VarStringColumnType) Name() string { return "string" }

// ToString produces a string representation of a value of a VarStringColumnType value
func (b *VarStringColumnType) ToString(v interface{}) string {
	return fmt.Sprintf("\"%s\"", v.(string))
}

// Parse returns the raw text unchanged
func (b *VarStringColumnType) Parse(raw string) (interface{}, error) {
	return raw, nil
}

// VarBytesColumnType is a column type which stores variable-length byte arrays
type VarBytesColumnType struct{}

// Name returns the canonical name of this type
func (b *VarBytesColumnType) Name() string { return "bytes" }

// ToString produces a string representation of a value of a VarBytesColumnType value
func (b *VarBytesColumnType) ToString(v interface{}) string {
	bytes := v.([]byte)
	var res strings.Builder
	fmt.Fprint(&res, "[")
	i := 0
	for _, v := range bytes {
		// don't print more than 5 entries
		if i >= 5 {
			fmt.Fprintf(&res, "... %d more", len(bytes)-5)
			break
		}
		fmt.Fprintf(&res, "%x", v)
		i++
	}
	fmt.Fprint(&res, "]")
	return res.String()
}

// Parse returns the raw text as bytes
func (b *VarBytesColumnType) Parse(raw string) (interface{}, error) {
	return []byte(raw), nil
}

// ListColumnType is a column type which stores a variable-length sequence of values of
// the Inner type. Values are []interface{}, and individual items may be nil.
type ListColumnType struct {
	Inner ColumnType
}

// Name returns the canonical name of this type
func (b *ListColumnType) Name() string {
	if b.Inner == nil {
		return "list<?>"
	}
	return fmt.Sprintf("list<%s>", b.Inner.Name())
}

// ToString produces a string representation of a value of a ListColumnType value
func (b *ListColumnType) ToString(v interface{}) string {
	items := v.([]interface{})
	var res strings.Builder
	fmt.Fprint(&res, "[")
	for i, item := range items {
		if i > 0 {
			fmt.Fprint(&res, ", ")
		}
		if item == nil {
			fmt.Fprint(&res, "nil")
		} else {
			fmt.Fprint(&res, b.Inner.ToString(item))
		}
	}
	fmt.Fprint(&res, "]")
	return res.String()
}

// IsList returns true iff colType is a ListColumnType
func IsList(colType ColumnType) (isList bool) {
	_, isList = colType.(*ListColumnType)
	return
}
