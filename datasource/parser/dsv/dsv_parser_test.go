package dsv

import (
	"errors"
	"strings"
	"testing"

	"github.com/netnote/lazytab"
	lterrors "github.com/netnote/lazytab/errors"
	"github.com/netnote/lazytab/schema"
	"github.com/stretchr/testify/require"
)

func createTestSchema(t *testing.T, decls string) lazytab.Schema {
	parsed, err := schema.ParseDeclarations(decls)
	require.Nil(t, err)
	s, err := schema.FromDeclarations(parsed)
	require.Nil(t, err)
	return s
}

func TestParserPartitions(t *testing.T) {
	parser := CreateParser(&ParserConf{
		PartitionSize: 2,
		HeaderLines:   1,
		Delimiter:     '\t',
		Comment:       '#',
		NilValues:     []string{"NA"},
	})
	require.Equal(t, 2, parser.PartitionSize())
	data := "id\tname\r\n# a comment\n1\talice\r\n\n2\tNA\n3\t\n"
	ended := 0
	it, err := parser.Parse(strings.NewReader(data), nil, "test.tsv", createTestSchema(t, "id:int32,name:string"), func() { ended++ })
	require.Nil(t, err)

	require.True(t, it.HasNextPartition())
	part, err := it.NextPartition()
	require.Nil(t, err)
	require.Equal(t, 2, part.GetNumRows())
	id, err := part.GetRow(0).GetInt32("id")
	require.Nil(t, err)
	require.EqualValues(t, 1, id)
	name, err := part.GetRow(0).GetVarString("name")
	require.Nil(t, err)
	require.Equal(t, "alice", name)
	require.True(t, part.GetRow(1).IsNil("name"))

	part, err = it.NextPartition()
	require.Nil(t, err)
	require.Equal(t, 1, part.GetNumRows())
	require.True(t, part.GetRow(0).IsNil("name"))
	require.False(t, it.HasNextPartition())
	require.Equal(t, 1, ended)

	_, err = it.NextPartition()
	require.IsType(t, lterrors.NoMorePartitionsError{}, err)
	require.Nil(t, it.(interface{ Close() error }).Close())
	require.Equal(t, 1, ended)
}

func TestParserFieldCount(t *testing.T) {
	parser := CreateParser(&ParserConf{HeaderLines: 1})
	it, err := parser.Parse(strings.NewReader("a,b\n1,2\n3,4,5\n"), nil, "test.csv", createTestSchema(t, "a:int64,b:int64"), nil)
	require.Nil(t, err)
	_, err = it.NextPartition()
	require.NotNil(t, err)
	var perr *lterrors.ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, 3, perr.Line)
	var ferr *lterrors.FieldCountError
	require.True(t, errors.As(err, &ferr))
	require.Equal(t, 2, ferr.Expected)
	require.Equal(t, 3, ferr.Actual)
	require.False(t, it.HasNextPartition())
}

func TestParserValueError(t *testing.T) {
	parser := CreateParser(&ParserConf{})
	it, err := parser.Parse(strings.NewReader("1,2\nx,4\n"), nil, "test.csv", createTestSchema(t, "a:int64,b:int64"), nil)
	require.Nil(t, err)
	_, err = it.NextPartition()
	var perr *lterrors.ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, "test.csv", perr.Source)
	require.Equal(t, 2, perr.Line)
	require.Equal(t, "a", perr.Column)
	require.Equal(t, "x", perr.Value)
}

func TestParserQuotesAreNotInterpreted(t *testing.T) {
	parser := CreateParser(&ParserConf{Delimiter: '|'})
	it, err := parser.Parse(strings.NewReader("\"a,b\"|[\"x\"]\n"), nil, "test.psv", createTestSchema(t, "a:string,b:string"), nil)
	require.Nil(t, err)
	part, err := it.NextPartition()
	require.Nil(t, err)
	a, err := part.GetRow(0).GetVarString("a")
	require.Nil(t, err)
	require.Equal(t, "\"a,b\"", a)
	b, err := part.GetRow(0).GetVarString("b")
	require.Nil(t, err)
	require.Equal(t, "[\"x\"]", b)
}

func TestParserRejectsListColumns(t *testing.T) {
	parser := CreateParser(&ParserConf{})
	it, err := parser.Parse(strings.NewReader("[1]\n"), nil, "test.csv", createTestSchema(t, "a:list<int64>"), nil)
	require.Nil(t, err)
	_, err = it.NextPartition()
	require.IsType(t, lterrors.SchemaError{}, err)
}

func TestParserCheckHeader(t *testing.T) {
	s := createTestSchema(t, "a:int64,b:int64")
	parser := CreateParser(&ParserConf{HeaderLines: 1, CheckHeader: true, Comment: '#'})
	it, err := parser.Parse(strings.NewReader("# generated\na,b\n1,2\n"), nil, "good.csv", s, nil)
	require.Nil(t, err)
	part, err := it.NextPartition()
	require.Nil(t, err)
	require.Equal(t, 1, part.GetNumRows())

	it, err = parser.Parse(strings.NewReader("b,a\n1,2\n"), nil, "bad.csv", s, nil)
	require.Nil(t, err)
	_, err = it.NextPartition()
	var perr *lterrors.ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, "bad.csv", perr.Source)
	var serr lterrors.SchemaError
	require.True(t, errors.As(err, &serr))
	require.False(t, it.HasNextPartition())

	// a missing column is a mismatch too
	it, err = parser.Parse(strings.NewReader("a\n1\n"), nil, "short.csv", s, nil)
	require.Nil(t, err)
	_, err = it.NextPartition()
	require.True(t, errors.As(err, &serr))
}

func TestParserBlankLines(t *testing.T) {
	parser := CreateParser(&ParserConf{HeaderLines: 1})
	it, err := parser.Parse(strings.NewReader("x\n\n1\n\n"), nil, "test.csv", createTestSchema(t, "x:int64"), nil)
	require.Nil(t, err)
	part, err := it.NextPartition()
	require.Nil(t, err)
	require.Equal(t, 3, part.GetNumRows())
	require.True(t, part.GetRow(0).IsNil("x"))
	require.True(t, part.GetRow(2).IsNil("x"))
}
