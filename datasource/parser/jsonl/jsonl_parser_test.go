package jsonl

import (
	"context"
	"errors"
	"testing"

	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/datasource/memory"
	lterrors "github.com/netnote/lazytab/errors"
	"github.com/netnote/lazytab/local"
	"github.com/netnote/lazytab/schema"
	"github.com/stretchr/testify/require"
)

func createTestSchema(t *testing.T) lazytab.Schema {
	s := schema.CreateSchema()
	_, err := s.CreateColumn("name", &lazytab.VarStringColumnType{})
	require.Nil(t, err)
	_, err = s.CreateColumn("meta.index", &lazytab.Int8ColumnType{})
	require.Nil(t, err)
	_, err = s.CreateColumn("meta.tags", &lazytab.ListColumnType{Inner: &lazytab.VarStringColumnType{}})
	require.Nil(t, err)
	_, err = s.CreateColumn("scores", &lazytab.ListColumnType{Inner: &lazytab.Float64ColumnType{}})
	require.Nil(t, err)
	return s
}

func TestJSONLDatasourceParser(t *testing.T) {
	parser := CreateParser(&ParserConf{PartitionSize: 2, Comment: '#'})
	data := [][]byte{
		[]byte("{\"name\": \"Sean\", \"meta\": {\"index\": 1, \"tags\": [\"a\", \"b\"]}, \"scores\": [1.5, 2]}\n# comment\n{\"name\": \"Chris\", \"meta\": {\"index\": 3, \"tags\": []}}"),
		[]byte("\n{\"name\": null, \"meta\": {\"index\": 2, \"tags\": [\"c\"]}, \"scores\": [null, 4]}\n"),
	}
	frame := memory.CreateDataFrame(data, parser, createTestSchema(t))
	rows, _, err := local.Collect(context.Background(), frame, nil)
	require.Nil(t, err)
	require.Equal(t, 3, len(rows))

	name, err := rows[0].GetVarString("name")
	require.Nil(t, err)
	require.Equal(t, "Sean", name)
	tags, err := rows[0].GetList("meta.tags")
	require.Nil(t, err)
	require.Equal(t, []interface{}{"a", "b"}, tags)
	scores, err := rows[0].GetList("scores")
	require.Nil(t, err)
	require.Equal(t, []interface{}{1.5, 2.0}, scores)

	tags, err = rows[1].GetList("meta.tags")
	require.Nil(t, err)
	require.Equal(t, []interface{}{}, tags)
	require.True(t, rows[1].IsNil("scores"))

	require.True(t, rows[2].IsNil("name"))
	index, err := rows[2].GetInt8("meta.index")
	require.Nil(t, err)
	require.EqualValues(t, 2, index)
	scores, err = rows[2].GetList("scores")
	require.Nil(t, err)
	require.Equal(t, []interface{}{nil, 4.0}, scores)
}

func TestJSONLTypeErrors(t *testing.T) {
	parser := CreateParser(&ParserConf{})
	for _, line := range []string{
		"{\"name\": 1}",
		"{\"meta\": {\"index\": 300}}",
		"{\"meta\": {\"tags\": \"a\"}}",
		"{\"scores\": [\"x\"]}",
	} {
		frame := memory.CreateDataFrame([][]byte{[]byte(line)}, parser, createTestSchema(t))
		_, _, err := local.Collect(context.Background(), frame, nil)
		var perr *lterrors.ParseError
		require.True(t, errors.As(err, &perr), line)
		require.Equal(t, "memory[0]", perr.Source)
		require.Equal(t, 1, perr.Line)
	}

	frame := memory.CreateDataFrame([][]byte{[]byte("{\"name\": \"a\"}\n{\"name\": ")}, parser, createTestSchema(t))
	_, _, err := local.Collect(context.Background(), frame, nil)
	var perr *lterrors.ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, 2, perr.Line)
	require.True(t, errors.Is(err, errInvalidJSON))
}

func TestJSONLHeaderLines(t *testing.T) {
	parser := CreateParser(&ParserConf{HeaderLines: 1})
	require.Equal(t, 128, parser.PartitionSize())
	frame := memory.CreateDataFrame([][]byte{[]byte("ignored\n{\"name\": \"a\"}\n")}, parser, createTestSchema(t))
	rows, _, err := local.Collect(context.Background(), frame, nil)
	require.Nil(t, err)
	require.Equal(t, 1, len(rows))
}
