package lazytab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarBytesToString(t *testing.T) {
	colType := &VarBytesColumnType{}
	require.Equal(t, "[abcd]", colType.ToString([]byte{0xab, 0xcd}))
	require.Equal(t, "[1011121314]", colType.ToString([]byte{0x10, 0x11, 0x12, 0x13, 0x14}))
	require.Equal(t, "[1011121314... 2 more]", colType.ToString([]byte{0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16}))
}

func TestListToString(t *testing.T) {
	colType := &ListColumnType{Inner: &Int64ColumnType{}}
	require.Equal(t, "list<int64>", colType.Name())
	require.Equal(t, "[1, nil, 3]", colType.ToString([]interface{}{int64(1), nil, int64(3)}))
	require.Equal(t, "list<?>", (&ListColumnType{}).Name())
}
