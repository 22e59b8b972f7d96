package stats

import (
	"sync"
	"testing"

	"github.com/netnote/lazytab"
	"github.com/stretchr/testify/require"
)

func TestRunStatisticsConcurrentPartitions(t *testing.T) {
	var rs RunStatistics
	var _ lazytab.RuntimeStatistics = &rs
	rs.Start(2)
	rs.StartStage()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rs.EndPartition(0, 10)
		}()
	}
	wg.Wait()
	rs.EndStage(0)
	rs.EndPartition(1, 3)
	rs.Finish()

	require.Equal(t, []int64{80, 3}, rs.GetNumRowsProcessed())
	require.Equal(t, []int64{8, 1}, rs.GetNumPartitionsProcessed())
	require.Len(t, rs.GetStageRuntimes(), 2)
	require.Equal(t, rs.GetRuntime(), rs.GetRuntime())
}
