package schema

import (
	"fmt"
	"strings"

	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/errors"
)

// Declaration names a column and its type, as written in configuration files
type Declaration struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// ParseColumnType translates a type name (e.g. "int64", "list<string>", "time:2006-01-02") into a ColumnType
func ParseColumnType(name string) (lazytab.ColumnType, error) {
	name = strings.TrimSpace(name)
	lower := strings.ToLower(name)
	if isListTypeName(lower) {
		// inner names keep their original case, as time layouts are case-sensitive
		innerType, err := ParseColumnType(name[5 : len(name)-1])
		if err != nil {
			return nil, err
		}
		if lazytab.IsList(innerType) {
			return nil, errors.SchemaError{Reason: fmt.Sprintf("nested list type %s is not supported", name)}
		}
		return &lazytab.ListColumnType{Inner: innerType}, nil
	}
	if strings.HasPrefix(lower, "time:") {
		return &lazytab.TimeColumnType{Format: name[len("time:"):]}, nil
	}
	switch lower {
	case "bool", "boolean":
		return &lazytab.BoolColumnType{}, nil
	case "int8":
		return &lazytab.Int8ColumnType{}, nil
	case "int16":
		return &lazytab.Int16ColumnType{}, nil
	case "int32":
		return &lazytab.Int32ColumnType{}, nil
	case "int64", "int", "integer":
		return &lazytab.Int64ColumnType{}, nil
	case "uint8":
		return &lazytab.Uint8ColumnType{}, nil
	case "uint16":
		return &lazytab.Uint16ColumnType{}, nil
	case "uint32":
		return &lazytab.Uint32ColumnType{}, nil
	case "uint64", "uint":
		return &lazytab.Uint64ColumnType{}, nil
	case "float32":
		return &lazytab.Float32ColumnType{}, nil
	case "float64", "float":
		return &lazytab.Float64ColumnType{}, nil
	case "string", "str", "utf8":
		return &lazytab.VarStringColumnType{}, nil
	case "bytes":
		return &lazytab.VarBytesColumnType{}, nil
	case "time":
		return &lazytab.TimeColumnType{}, nil
	}
	return nil, errors.SchemaError{Reason: fmt.Sprintf("unknown column type %q", name)}
}

// isListTypeName returns true iff lower is of the form "list<T>" or "list[T]"
func isListTypeName(lower string) bool {
	if !strings.HasPrefix(lower, "list") || len(lower) <= len("list<>") {
		return false
	}
	opening, closing := lower[4], lower[len(lower)-1]
	return (opening == '<' && closing == '>') || (opening == '[' && closing == ']')
}

// FromDeclarations builds a Schema from an ordered list of column Declarations
func FromDeclarations(decls []Declaration) (lazytab.Schema, error) {
	s := CreateSchema()
	for _, decl := range decls {
		if len(decl.Name) == 0 {
			return nil, errors.SchemaError{Reason: "column declaration has no name"}
		}
		colType, err := ParseColumnType(decl.Type)
		if err != nil {
			if serr, ok := err.(errors.SchemaError); ok {
				serr.Column = decl.Name
				return nil, serr
			}
			return nil, err
		}
		if _, err = s.CreateColumn(decl.Name, colType); err != nil {
			return nil, errors.SchemaError{Column: decl.Name, Reason: err.Error()}
		}
	}
	return s, nil
}

// ParseDeclarations parses a compact, comma-separated list of "name:type" declarations,
// e.g. "id:int64,tags:list<string>"
func ParseDeclarations(compact string) ([]Declaration, error) {
	var decls []Declaration
	for _, part := range splitTopLevel(compact) {
		part = strings.TrimSpace(part)
		if len(part) == 0 {
			continue
		}
		idx := strings.Index(part, ":")
		if idx <= 0 {
			return nil, errors.SchemaError{Reason: fmt.Sprintf("declaration %q is not of the form name:type", part)}
		}
		decls = append(decls, Declaration{Name: strings.TrimSpace(part[:idx]), Type: strings.TrimSpace(part[idx+1:])})
	}
	return decls, nil
}

// splitTopLevel splits on commas which are not nested inside <> or []
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i, c := range s {
		switch c {
		case '<', '[':
			depth++
		case '>', ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// Declarations describes a Schema as an ordered list of Declarations
func Declarations(s lazytab.Schema) []Declaration {
	names := s.ColumnNames()
	types := s.ColumnTypes()
	decls := make([]Declaration, len(names))
	for i := range names {
		decls[i] = Declaration{Name: names[i], Type: types[i].Name()}
	}
	return decls
}
