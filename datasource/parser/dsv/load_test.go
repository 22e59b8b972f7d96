package dsv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/netnote/lazytab"
	lterrors "github.com/netnote/lazytab/errors"
	"github.com/netnote/lazytab/local"
	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/require"
)

func loadAndCollect(t *testing.T, data string, conf *LoadConf) ([]lazytab.Row, lazytab.DataFrame) {
	return loadAndCollectAll(t, [][]byte{[]byte(data)}, conf)
}

func loadAndCollectAll(t *testing.T, data [][]byte, conf *LoadConf) ([]lazytab.Row, lazytab.DataFrame) {
	frame, err := LoadLazyBytes(data, conf)
	require.Nil(t, err)
	rows, s, err := local.Collect(context.Background(), frame, nil)
	require.Nil(t, err)
	require.Nil(t, frame.GetSchema().Equals(s))
	return rows, frame
}

func requireList(t *testing.T, row lazytab.Row, colName string, expected []interface{}) {
	items, err := row.GetList(colName)
	require.Nil(t, err)
	require.Equal(t, expected, items)
}

func TestEndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tags.psv")
	require.Nil(t, os.WriteFile(path, []byte("id|tags\n1|[a,b]\n2|[c]\n"), 0644))
	declared := createTestSchema(t, "id:int64,tags:list<string>")
	frame, err := LoadLazy(path, &LoadConf{
		Separator:         '|',
		Schema:            declared,
		ItemEncapsulation: NoEncapsulation(),
	})
	require.Nil(t, err)
	require.Nil(t, frame.GetSchema().Equals(declared))

	rows, _, err := local.Collect(context.Background(), frame, nil)
	require.Nil(t, err)
	require.Equal(t, 2, len(rows))
	id, err := rows[0].GetInt64("id")
	require.Nil(t, err)
	require.EqualValues(t, 1, id)
	requireList(t, rows[0], "tags", []interface{}{"a", "b"})
	id, err = rows[1].GetInt64("id")
	require.Nil(t, err)
	require.EqualValues(t, 2, id)
	requireList(t, rows[1], "tags", []interface{}{"c"})
}

func TestSchemaWithoutListsIsUnchanged(t *testing.T) {
	declared := createTestSchema(t, "id:int64,name:string,score:float32,ok:bool,day:time:2006-01-02")
	rows, frame := loadAndCollect(t, "id,name,score,ok,day\n1,x,0.5,true,2020-01-02\n", &LoadConf{Schema: declared})
	require.Nil(t, frame.GetSchema().Equals(declared))
	require.Equal(t, 1, len(rows))
	score, err := rows[0].GetFloat32("score")
	require.Nil(t, err)
	require.EqualValues(t, 0.5, score)
}

func TestListColumnTypes(t *testing.T) {
	for _, inner := range []string{"int8", "int64", "uint16", "float64", "bool", "string", "time:15:04"} {
		declared := createTestSchema(t, "id:int64,vals:list<"+inner+">")
		frame, err := LoadLazyBytes([][]byte{[]byte("id|vals\n")}, &LoadConf{Separator: '|', Schema: declared})
		require.Nil(t, err, inner)
		offset, err := frame.GetSchema().GetOffset("vals")
		require.Nil(t, err)
		require.Equal(t, "list<"+inner+">", offset.Type().Name())
		require.Nil(t, frame.GetSchema().Equals(declared), inner)
	}
}

func TestDecodeTypedItems(t *testing.T) {
	declared := createTestSchema(t, "xs:list<int64>")
	rows, _ := loadAndCollect(t, "xs\n[1,2,3]\n[]\n", &LoadConf{
		Separator:         '|',
		Schema:            declared,
		ItemEncapsulation: NoEncapsulation(),
	})
	require.Equal(t, 2, len(rows))
	requireList(t, rows[0], "xs", []interface{}{int64(1), int64(2), int64(3)})
	requireList(t, rows[1], "xs", []interface{}{})
}

func TestDecodeItemEncapsulation(t *testing.T) {
	declared := createTestSchema(t, "xs:list<string>")
	rows, _ := loadAndCollect(t, "xs\n\"a\",\"b\"\n", &LoadConf{
		Separator:         '|',
		Schema:            declared,
		ListEncapsulation: NoEncapsulation(),
	})
	requireList(t, rows[0], "xs", []interface{}{"a", "b"})
}

func TestMissingOuterEncapsulation(t *testing.T) {
	declared := createTestSchema(t, "xs:list<int32>")
	rows, _ := loadAndCollect(t, "xs\n1,2,3\n", &LoadConf{
		Separator: '|',
		Schema:    declared,
	})
	requireList(t, rows[0], "xs", []interface{}{int32(1), int32(2), int32(3)})

	rows, _ = loadAndCollect(t, "xs\n4;5]\n", &LoadConf{
		Separator:     '|',
		ListSeparator: ";",
		Schema:        declared,
	})
	requireList(t, rows[0], "xs", []interface{}{int32(4), int32(5)})
}

func TestNullMarkers(t *testing.T) {
	declared := createTestSchema(t, "id:int64,tags:list<string>")
	rows, _ := loadAndCollect(t, "id|tags\n\\N|\\N\n2|\n3|[\"a\"]\n", &LoadConf{Separator: '|', Schema: declared})
	require.Equal(t, 3, len(rows))
	require.True(t, rows[0].IsNil("id"))
	require.True(t, rows[0].IsNil("tags"))
	require.True(t, rows[1].IsNil("tags"))
	requireList(t, rows[2], "tags", []interface{}{"a"})

	rows, _ = loadAndCollect(t, "id|tags\nNA|NA\n2|[]\n", &LoadConf{Separator: '|', Schema: declared, NullValues: []string{"NA"}})
	require.True(t, rows[0].IsNil("id"))
	require.True(t, rows[0].IsNil("tags"))
	_, err := rows[1].GetInt64("id")
	require.Nil(t, err)
	requireList(t, rows[1], "tags", []interface{}{})
}

func TestExtraFieldFailsAtMaterialization(t *testing.T) {
	declared := createTestSchema(t, "id:int64,tags:list<string>")
	frame, err := LoadLazyBytes([][]byte{[]byte("id|tags\n1|[a]\n2|[b]|extra\n")}, &LoadConf{Separator: '|', Schema: declared})
	require.Nil(t, err)
	_, _, err = local.Collect(context.Background(), frame, nil)
	require.NotNil(t, err)
	var perr *lterrors.ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, "memory[0]", perr.Source)
	require.Equal(t, 3, perr.Line)
	var ferr *lterrors.FieldCountError
	require.True(t, errors.As(err, &ferr))
	require.Equal(t, 3, ferr.Actual)
}

func TestBadItemFailsAtMaterialization(t *testing.T) {
	declared := createTestSchema(t, "tags:list<int64>")
	frame, err := LoadLazyBytes([][]byte{[]byte("tags\n[1,x]\n")}, &LoadConf{Separator: '|', Schema: declared})
	require.Nil(t, err)
	_, _, err = local.Collect(context.Background(), frame, nil)
	var perr *lterrors.ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, "tags", perr.Column)
	require.Equal(t, "x", perr.Value)
}

func TestInferSchema(t *testing.T) {
	rows, frame := loadAndCollect(t, "a|b|c|d|e|f\n1|1.5|true|x||[1,2]\n2|3|false|y|\\N|[3]\n", &LoadConf{Separator: '|'})
	types := []string{}
	for _, ct := range frame.GetSchema().ColumnTypes() {
		types = append(types, ct.Name())
	}
	require.Equal(t, []string{"int64", "float64", "bool", "string", "string", "string"}, types)
	f, err := rows[0].GetVarString("f")
	require.Nil(t, err)
	require.Equal(t, "[1,2]", f)
	b, err := rows[1].GetFloat64("b")
	require.Nil(t, err)
	require.EqualValues(t, 3, b)
}

func TestInferBoolLiterals(t *testing.T) {
	_, frame := loadAndCollect(t, "grade|flag|bit\nT|TRUE|1\nF|False|0\n", &LoadConf{Separator: '|'})
	types := []string{}
	for _, ct := range frame.GetSchema().ColumnTypes() {
		types = append(types, ct.Name())
	}
	require.Equal(t, []string{"string", "bool", "int64"}, types)
}

func TestInferSampleLength(t *testing.T) {
	frame, err := LoadLazyBytes([][]byte{[]byte("a\n1\n2\nx\n")}, &LoadConf{InferSchemaLength: 2})
	require.Nil(t, err)
	require.Equal(t, "int64", frame.GetSchema().ColumnTypes()[0].Name())
	// rows beyond the sample must still parse
	_, _, err = local.Collect(context.Background(), frame, nil)
	var perr *lterrors.ParseError
	require.True(t, errors.As(err, &perr))
}

func TestNoHeader(t *testing.T) {
	rows, frame := loadAndCollect(t, "1,x\n2,y\n", &LoadConf{NoHeader: true})
	require.Equal(t, []string{"column_1", "column_2"}, frame.GetSchema().ColumnNames())
	require.Equal(t, 2, len(rows))

	declared := createTestSchema(t, "id:int64,tags:list<string>")
	rows, frame = loadAndCollect(t, "1|[x]\n2|[y,z]\n", &LoadConf{Separator: '|', NoHeader: true, Schema: declared})
	require.Nil(t, frame.GetSchema().Equals(declared))
	require.Equal(t, 2, len(rows))
	requireList(t, rows[1], "tags", []interface{}{"y", "z"})
}

func TestPartialSchema(t *testing.T) {
	declared := createTestSchema(t, "tags:list<string>")
	rows, frame := loadAndCollect(t, "id|tags|score\n1|[a]|0.5\n", &LoadConf{Separator: '|', Schema: declared})
	require.Equal(t, []string{"id", "tags", "score"}, frame.GetSchema().ColumnNames())
	require.Equal(t, "float64", frame.GetSchema().ColumnTypes()[2].Name())
	requireList(t, rows[0], "tags", []interface{}{"a"})
}

func TestSchemaErrorsBeforeScan(t *testing.T) {
	declared := createTestSchema(t, "id:int64,missing:string")
	_, err := LoadLazyBytes([][]byte{[]byte("id|tags\n")}, &LoadConf{Separator: '|', Schema: declared})
	require.IsType(t, lterrors.SchemaError{}, err)
	require.Equal(t, "missing", err.(lterrors.SchemaError).Column)

	invalid := createTestSchema(t, "id:int64")
	_, err = invalid.CreateColumn("tags", &lazytab.ListColumnType{})
	require.Nil(t, err)
	// no data is needed to detect an invalid schema
	_, err = LoadLazy(filepath.Join(t.TempDir(), "missing.csv"), &LoadConf{Schema: invalid})
	require.IsType(t, lterrors.SchemaError{}, err)

	_, err = LoadLazyBytes([][]byte{[]byte("a,a\n")}, nil)
	require.IsType(t, lterrors.SchemaError{}, err)
}

func TestConfErrors(t *testing.T) {
	data := [][]byte{[]byte("a\n")}
	_, err := LoadLazyBytes(data, &LoadConf{Separator: 'é'})
	require.NotNil(t, err)
	_, err = LoadLazyBytes(data, &LoadConf{Separator: '\n'})
	require.NotNil(t, err)
	_, err = LoadLazyBytes(data, &LoadConf{Separator: '#', Comment: '#'})
	require.NotNil(t, err)
	_, err = LoadLazyBytes(data, &LoadConf{Schema: createTestSchema(t, "a:list<string>")})
	require.NotNil(t, err)
	_, err = LoadLazyBytes(nil, nil)
	require.NotNil(t, err)
	_, err = LoadLazy(filepath.Join(t.TempDir(), "*.csv"), nil)
	require.NotNil(t, err)
	_, err = LoadLazyBytes([][]byte{{}}, nil)
	require.NotNil(t, err)
}

func TestMultipleCompressedFiles(t *testing.T) {
	dir := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(dir, "a.psv"), []byte("id|tags\n1|[a]\n"), 0644))
	f, err := os.Create(filepath.Join(dir, "b.psv.lz4"))
	require.Nil(t, err)
	w := lz4.NewWriter(f)
	_, err = w.Write([]byte("id|tags\n2|[b,c]\n"))
	require.Nil(t, err)
	require.Nil(t, w.Close())
	require.Nil(t, f.Close())

	frame, err := LoadLazy(filepath.Join(dir, "*.psv*"), &LoadConf{
		Separator: '|',
		Schema:    createTestSchema(t, "id:int64,tags:list<string>"),
	})
	require.Nil(t, err)
	rows, _, err := local.Collect(context.Background(), frame, nil)
	require.Nil(t, err)
	require.Equal(t, 2, len(rows))
	requireList(t, rows[0], "tags", []interface{}{"a"})
	requireList(t, rows[1], "tags", []interface{}{"b", "c"})
}

func TestListDecoder(t *testing.T) {
	e, err := ListDecoder("tags", &lazytab.Int64ColumnType{}, nil)
	require.Nil(t, err)
	require.Equal(t, `col(tags).strip_prefix("[").strip_suffix("]").split(",").eval(element().strip_prefix("\"").strip_suffix("\"").cast(int64))`, e.String())
	v, err := e.Apply(`["1","2"]`)
	require.Nil(t, err)
	require.Equal(t, []interface{}{int64(1), int64(2)}, v)

	e, err = ListDecoder("tags", &lazytab.VarStringColumnType{}, &LoadConf{
		ListSeparator:     ";",
		ListEncapsulation: NoEncapsulation(),
		ItemEncapsulation: NoEncapsulation(),
	})
	require.Nil(t, err)
	require.Equal(t, `col(tags).split(";").eval(element().cast(string))`, e.String())

	scan, err := ScanSchema(createTestSchema(t, "id:int64,tags:list<bool>"))
	require.Nil(t, err)
	require.Equal(t, "string", scan.ColumnTypes()[1].Name())
	require.Equal(t, "int64", scan.ColumnTypes()[0].Name())
}

// repeatedColumnSchema reports the same column twice
type repeatedColumnSchema struct {
	lazytab.Schema
}

func (s repeatedColumnSchema) ForEachColumn(fn func(name string, col lazytab.Column) error) error {
	col, err := s.Schema.GetOffset("id")
	if err != nil {
		return err
	}
	for i := 0; i < 2; i++ {
		if err := fn("id", col); err != nil {
			return err
		}
	}
	return nil
}

func TestScanSchemaErrors(t *testing.T) {
	_, err := ScanSchema(repeatedColumnSchema{createTestSchema(t, "id:int64")})
	require.NotNil(t, err)
	require.Contains(t, err.Error(), "already contains column with name id")
}

func TestBlankLinesInSingleColumn(t *testing.T) {
	rows, _ := loadAndCollect(t, "x\n1\n\n3\n", &LoadConf{Schema: createTestSchema(t, "x:int64")})
	require.Equal(t, 3, len(rows))
	require.True(t, rows[1].IsNil("x"))
	x, err := rows[2].GetInt64("x")
	require.Nil(t, err)
	require.EqualValues(t, 3, x)

	// inferred schemas behave the same way
	rows, frame := loadAndCollect(t, "x\n1\n\n3\n", nil)
	require.Equal(t, "int64", frame.GetSchema().ColumnTypes()[0].Name())
	require.Equal(t, 3, len(rows))
	require.True(t, rows[1].IsNil("x"))

	// blank lines are skipped when there is more than one column
	rows, _ = loadAndCollect(t, "x|y\n1|a\n\n3|b\n", &LoadConf{Separator: '|'})
	require.Equal(t, 2, len(rows))
}

func TestHeaderMismatchAcrossFiles(t *testing.T) {
	frame, err := LoadLazyBytes([][]byte{
		[]byte("name|city\nann|oslo\n"),
		[]byte("city|name\nrome|bob\n"),
	}, &LoadConf{Separator: '|'})
	require.Nil(t, err)
	_, _, err = local.Collect(context.Background(), frame, nil)
	require.NotNil(t, err)
	var perr *lterrors.ParseError
	require.True(t, errors.As(err, &perr))
	require.Equal(t, "memory[1]", perr.Source)
	require.Equal(t, 1, perr.Line)
	var serr lterrors.SchemaError
	require.True(t, errors.As(err, &serr))
	require.Contains(t, serr.Reason, "header [city, name] does not match columns [name, city]")

	// matching headers load from every file
	rows, _ := loadAndCollectAll(t, [][]byte{
		[]byte("name|city\nann|oslo\n"),
		[]byte("name|city\nbob|rome\n"),
	}, &LoadConf{Separator: '|'})
	require.Equal(t, 2, len(rows))
	city, err := rows[1].GetVarString("city")
	require.Nil(t, err)
	require.Equal(t, "rome", city)
}
