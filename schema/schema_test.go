package schema

import (
	"testing"

	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/errors"
	"github.com/stretchr/testify/require"
)

func TestSchemaEqualityBasic(t *testing.T) {
	schema1 := CreateSchema()
	_, err := schema1.CreateColumn("col1", &lazytab.Uint64ColumnType{})
	require.Nil(t, err)
	_, err = schema1.CreateColumn("col2", &lazytab.VarStringColumnType{})
	require.Nil(t, err)
	_, err = schema1.CreateColumn("col3", &lazytab.ListColumnType{Inner: &lazytab.Int32ColumnType{}})
	require.Nil(t, err)

	schema2 := CreateSchema()
	_, err = schema2.CreateColumn("col1", &lazytab.Uint64ColumnType{})
	require.Nil(t, err)
	_, err = schema2.CreateColumn("col2", &lazytab.VarStringColumnType{})
	require.Nil(t, err)
	_, err = schema2.CreateColumn("col3", &lazytab.ListColumnType{Inner: &lazytab.Int32ColumnType{}})
	require.Nil(t, err)

	require.Nil(t, schema1.Equals(schema2))
}

func TestSchemaEqualityDifferentInnerType(t *testing.T) {
	schema1 := CreateSchema()
	_, err := schema1.CreateColumn("col1", &lazytab.ListColumnType{Inner: &lazytab.Int32ColumnType{}})
	require.Nil(t, err)

	schema2 := CreateSchema()
	_, err = schema2.CreateColumn("col1", &lazytab.ListColumnType{Inner: &lazytab.Int64ColumnType{}})
	require.Nil(t, err)

	require.NotNil(t, schema1.Equals(schema2))
}

func TestSchemaEqualityOrder(t *testing.T) {
	schema1 := CreateSchema()
	_, err := schema1.CreateColumn("col1", &lazytab.Uint64ColumnType{})
	require.Nil(t, err)
	_, err = schema1.CreateColumn("col2", &lazytab.Uint32ColumnType{})
	require.Nil(t, err)
	_, err = schema1.CreateColumn("col3", &lazytab.VarStringColumnType{})
	require.Nil(t, err)

	schema2 := CreateSchema()
	_, err = schema2.CreateColumn("col1", &lazytab.Uint64ColumnType{})
	require.Nil(t, err)
	_, err = schema2.CreateColumn("col3", &lazytab.VarStringColumnType{})
	require.Nil(t, err)
	_, err = schema2.CreateColumn("col2", &lazytab.Uint32ColumnType{})
	require.Nil(t, err)

	require.NotNil(t, schema1.Equals(schema2))
}

func TestCreateDuplicateColumn(t *testing.T) {
	s := CreateSchema()
	_, err := s.CreateColumn("col1", &lazytab.Int64ColumnType{})
	require.Nil(t, err)
	_, err = s.CreateColumn("col1", &lazytab.VarStringColumnType{})
	require.NotNil(t, err)
	_, err = s.CreateColumn("col2", nil)
	require.IsType(t, errors.SchemaError{}, err)
}

func TestRemoveAndRepack(t *testing.T) {
	s := CreateSchema()
	s.CreateColumn("a", &lazytab.Int64ColumnType{})
	s.CreateColumn("b", &lazytab.VarStringColumnType{})
	s.CreateColumn("c", &lazytab.BoolColumnType{})

	_, removed := s.RemoveColumn("b")
	require.True(t, removed)
	_, removed = s.RemoveColumn("missing")
	require.False(t, removed)
	require.Equal(t, []string{"a", "c"}, s.ColumnNames())
	require.Equal(t, 3, s.Width())
	require.Equal(t, 2, s.NumColumns())
	require.False(t, s.HasColumn("b"))
	offset, err := s.GetOffset("c")
	require.Nil(t, err)
	require.Equal(t, 2, offset.Index())

	repacked := s.Repack()
	require.Equal(t, 2, repacked.Width())
	require.Equal(t, 0, repacked.NumRemovedColumns())
	offset, err = repacked.GetOffset("c")
	require.Nil(t, err)
	require.Equal(t, 1, offset.Index())
	require.Nil(t, s.Equals(repacked))
}

func TestRenameAndReplace(t *testing.T) {
	s := CreateSchema()
	s.CreateColumn("a", &lazytab.VarStringColumnType{})
	s.CreateColumn("b", &lazytab.VarStringColumnType{})

	_, err := s.RenameColumn("a", "b")
	require.NotNil(t, err)
	_, err = s.RenameColumn("a", "z")
	require.Nil(t, err)
	require.Equal(t, []string{"z", "b"}, s.ColumnNames())

	_, err = s.ReplaceColumnType("z", &lazytab.ListColumnType{Inner: &lazytab.VarStringColumnType{}})
	require.Nil(t, err)
	require.Equal(t, "list<string>", s.ColumnTypes()[0].Name())
	_, err = s.ReplaceColumnType("missing", &lazytab.Int64ColumnType{})
	require.NotNil(t, err)
}

func TestCloneIsIndependent(t *testing.T) {
	s := CreateSchema()
	s.CreateColumn("a", &lazytab.Int64ColumnType{})
	clone := s.Clone()
	clone.CreateColumn("b", &lazytab.Int64ColumnType{})
	clone.RemoveColumn("a")
	require.Equal(t, []string{"a"}, s.ColumnNames())
	require.Equal(t, []string{"b"}, clone.ColumnNames())
}

func TestValidate(t *testing.T) {
	s := CreateSchema()
	s.CreateColumn("tags", &lazytab.ListColumnType{Inner: &lazytab.VarStringColumnType{}})
	require.Nil(t, Validate(s))

	s = CreateSchema()
	s.CreateColumn("tags", &lazytab.ListColumnType{})
	require.IsType(t, errors.SchemaError{}, Validate(s))

	s = CreateSchema()
	s.CreateColumn("nested", &lazytab.ListColumnType{Inner: &lazytab.ListColumnType{Inner: &lazytab.Int64ColumnType{}}})
	require.IsType(t, errors.SchemaError{}, Validate(s))
}

func TestParseColumnType(t *testing.T) {
	cases := map[string]string{
		"int":                 "int64",
		"Int64":               "int64",
		"float":               "float64",
		"utf8":                "string",
		"bool":                "bool",
		"list<int>":           "list<int64>",
		"list[str]":           "list<string>",
		"time":                "time",
		"time:2006-01-02":     "time:2006-01-02",
		"list<time:15:04:05>": "list<time:15:04:05>",
	}
	for name, expected := range cases {
		colType, err := ParseColumnType(name)
		require.Nil(t, err, name)
		require.Equal(t, expected, colType.Name(), name)
	}
	for _, bad := range []string{"", "decimal", "list<>", "list<list<int>>", "list<int"} {
		_, err := ParseColumnType(bad)
		require.IsType(t, errors.SchemaError{}, err, bad)
	}
}

func TestDeclarations(t *testing.T) {
	decls, err := ParseDeclarations("id:int64, tags:list<string>,when:time:2006-01-02")
	require.Nil(t, err)
	require.Equal(t, []Declaration{
		{Name: "id", Type: "int64"},
		{Name: "tags", Type: "list<string>"},
		{Name: "when", Type: "time:2006-01-02"},
	}, decls)

	s, err := FromDeclarations(decls)
	require.Nil(t, err)
	require.Equal(t, []string{"id", "tags", "when"}, s.ColumnNames())
	require.Equal(t, decls, Declarations(s))

	_, err = FromDeclarations([]Declaration{{Name: "x", Type: "nope"}})
	require.Equal(t, "x", err.(errors.SchemaError).Column)
	_, err = ParseDeclarations("justaname")
	require.NotNil(t, err)
}
