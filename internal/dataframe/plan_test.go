package dataframe

import (
	"testing"

	"github.com/netnote/lazytab"
	"github.com/netnote/lazytab/accumulators"
	ops "github.com/netnote/lazytab/operations/transform"
	"github.com/netnote/lazytab/operations/util"
	"github.com/netnote/lazytab/schema"
	"github.com/stretchr/testify/require"
)

type stubSource struct{}

func (s *stubSource) Analyze() (lazytab.PartitionMap, error) { return nil, nil }
func (s *stubSource) IsStreaming() bool                      { return false }

func createTestFrame(t *testing.T) lazytab.DataFrame {
	s := schema.CreateSchema()
	_, err := s.CreateColumn("key", &lazytab.VarStringColumnType{})
	require.Nil(t, err)
	return CreateDataFrame(&stubSource{}, nil, s)
}

func keyFn(row lazytab.Row) ([]byte, error) {
	k, err := row.GetVarString("key")
	return []byte(k), err
}

func reduceFn(lrow lazytab.Row, rrow lazytab.Row) error {
	return nil
}

func TestOptimizeSplitsAtShuffles(t *testing.T) {
	frame, err := createTestFrame(t).To(
		ops.AddColumn("n", &lazytab.Int64ColumnType{}),
		ops.Reduce(keyFn, reduceFn),
		ops.RenameColumn("n", "count"),
		ops.Reduce(keyFn, reduceFn),
		util.Collect(0),
	)
	require.Nil(t, err)
	plan, err := Optimize(frame)
	require.Nil(t, err)
	require.Equal(t, 3, plan.Size())
	require.True(t, plan.stages[0].EndsInShuffle())
	require.NotNil(t, plan.stages[0].KeyingOperation())
	require.True(t, plan.stages[1].EndsInShuffle())
	require.True(t, plan.stages[2].EndsInCollect())
	// each stage starts from the schema its predecessor produced
	require.Equal(t, []string{"key"}, plan.stages[0].IncomingSchema().ColumnNames())
	require.Equal(t, []string{"key", "n"}, plan.stages[1].IncomingSchema().ColumnNames())
	require.Equal(t, []string{"key", "count"}, plan.stages[2].IncomingSchema().ColumnNames())
}

func TestOptimizeAccumulate(t *testing.T) {
	frame, err := createTestFrame(t).To(util.Accumulate(accumulators.Counter))
	require.Nil(t, err)
	plan, err := Optimize(frame)
	require.Nil(t, err)
	require.Equal(t, 1, plan.Size())
	require.True(t, plan.stages[0].EndsInAccumulate())
	require.NotNil(t, plan.stages[0].AccumulatorFactory())
}

func TestNoTasksAfterTerminal(t *testing.T) {
	frame, err := createTestFrame(t).To(util.Collect(1))
	require.Nil(t, err)
	_, err = frame.To(ops.AddColumn("n", &lazytab.Int64ColumnType{}))
	require.NotNil(t, err)
	_, err = createTestFrame(t).To(util.Accumulate(accumulators.Counter), util.Collect(0))
	require.NotNil(t, err)
	_, err = createTestFrame(t).To(nil)
	require.NotNil(t, err)
}

func TestFramesAreImmutable(t *testing.T) {
	root := createTestFrame(t)
	next, err := root.To(ops.AddColumn("n", &lazytab.Int64ColumnType{}))
	require.Nil(t, err)
	require.Equal(t, []string{"key"}, root.GetSchema().ColumnNames())
	require.Equal(t, []string{"key", "n"}, next.GetSchema().ColumnNames())
	require.Equal(t, root.GetDataSource(), next.GetDataSource())
}
