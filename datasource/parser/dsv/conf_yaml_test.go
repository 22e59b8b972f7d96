package dsv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/netnote/lazytab/local"
	"github.com/stretchr/testify/require"
)

func TestReadConfFile(t *testing.T) {
	dir := t.TempDir()
	confPath := filepath.Join(dir, "conf.yaml")
	require.Nil(t, os.WriteFile(confPath, []byte(`
separator: "|"
list_separator: ";"
null_values: ["NA"]
item_encapsulation: {prefix: "", suffix: ""}
partition_size: 1
comment: "#"
columns:
  - {name: id, type: int64}
  - {name: tags, type: list<string>}
`), 0644))
	conf, err := ReadConfFile(confPath)
	require.Nil(t, err)
	require.Equal(t, '|', conf.Separator)
	require.Equal(t, '#', conf.Comment)
	require.Equal(t, ";", conf.ListSeparator)
	require.Equal(t, []string{"NA"}, conf.NullValues)
	require.Nil(t, conf.ListEncapsulation)
	require.Equal(t, NoEncapsulation(), conf.ItemEncapsulation)
	require.Equal(t, []string{"id", "tags"}, conf.Schema.ColumnNames())

	dataPath := filepath.Join(dir, "data.psv")
	require.Nil(t, os.WriteFile(dataPath, []byte("id|tags\n# skipped\n1|[a;b]\nNA|NA\n"), 0644))
	frame, err := LoadLazy(dataPath, conf)
	require.Nil(t, err)
	rows, _, err := local.Collect(context.Background(), frame, nil)
	require.Nil(t, err)
	require.Equal(t, 2, len(rows))
	requireList(t, rows[0], "tags", []interface{}{"a", "b"})
	require.True(t, rows[1].IsNil("id"))
	require.True(t, rows[1].IsNil("tags"))
}

func TestParseConfErrors(t *testing.T) {
	conf, err := ParseConf([]byte(`separator: '\t'`))
	require.Nil(t, err)
	require.Equal(t, '\t', conf.Separator)
	require.Nil(t, conf.Schema)

	_, err = ParseConf([]byte(`separator: "||"`))
	require.NotNil(t, err)
	_, err = ParseConf([]byte("columns:\n  - {name: id, type: decimal}\n"))
	require.NotNil(t, err)
	_, err = ParseConf([]byte("separator: [\n"))
	require.NotNil(t, err)
	_, err = ReadConfFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NotNil(t, err)
}
