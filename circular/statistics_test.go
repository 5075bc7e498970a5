package circular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsCounters(t *testing.T) {
	buf, err := New[int](3)
	require.NoError(t, err)

	buf.PushBackAll([]int{1, 2, 3, 4}) // fourth push overwrites
	buf.Front()
	buf.Back()
	buf.DropFront()

	stats := buf.Stats()
	assert.Equal(t, int64(4), stats.Inserts())
	assert.Equal(t, int64(1), stats.Overwrites())
	assert.Equal(t, int64(2), stats.Peeks())
	assert.Equal(t, int64(1), stats.Removals())
	assert.Equal(t, int64(0), stats.Discards())
	assert.Equal(t, int64(2), stats.CurrentSize())
	assert.Equal(t, int64(3), stats.MaxSize())
}

func TestStatisticsDiscards(t *testing.T) {
	buf, err := New[int](2, WithPolicy[int](Discard))
	require.NoError(t, err)

	buf.PushBackAll([]int{1, 2, 3, 4})

	stats := buf.Stats()
	assert.Equal(t, int64(2), stats.Inserts())
	assert.Equal(t, int64(2), stats.Discards())
	assert.InDelta(t, 0.5, stats.DiscardRate(), 1e-9)
	assert.Equal(t, 0.0, stats.OverwriteRate())
}

func TestStatisticsRates(t *testing.T) {
	buf, err := New[int](4)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		buf.PushBack(i) // last 4 overwrite
	}

	stats := buf.Stats()
	assert.InDelta(t, 0.5, stats.OverwriteRate(), 1e-9)
	assert.InDelta(t, 1.0, stats.Utilization(4), 1e-9)

	buf.DropFront()
	buf.DropFront()
	assert.InDelta(t, 0.5, buf.Stats().Utilization(4), 1e-9)
}

func TestStatisticsZeroDivision(t *testing.T) {
	s := NewStatistics()
	assert.Equal(t, 0.0, s.OverwriteRate())
	assert.Equal(t, 0.0, s.DiscardRate())
	assert.Equal(t, 0.0, s.Utilization(0))
}

func TestStatisticsReset(t *testing.T) {
	buf, err := New[int](2)
	require.NoError(t, err)
	buf.PushBackAll([]int{1, 2, 3})

	stats := buf.Stats()
	require.NotZero(t, stats.Inserts())

	stats.Reset()
	assert.Equal(t, int64(0), stats.Inserts())
	assert.Equal(t, int64(0), stats.Overwrites())
	assert.Equal(t, int64(0), stats.CurrentSize())
	assert.Equal(t, int64(0), stats.MaxSize())
}

func TestStatisticsSummary(t *testing.T) {
	buf, err := New[int](3)
	require.NoError(t, err)
	buf.PushBackAll([]int{1, 2, 3, 4})
	buf.Front()
	buf.DropBack()

	summary := buf.Stats().Summary()
	assert.Equal(t, int64(4), summary.Inserts)
	assert.Equal(t, int64(1), summary.Overwrites)
	assert.Equal(t, int64(1), summary.Peeks)
	assert.Equal(t, int64(1), summary.Removals)
	assert.Equal(t, int64(2), summary.CurrentSize)
	assert.Equal(t, int64(3), summary.MaxSize)
	assert.Positive(t, summary.Uptime)
}

func TestCloneGetsFreshStatistics(t *testing.T) {
	buf, err := New[int](3)
	require.NoError(t, err)
	buf.PushBackAll([]int{1, 2, 3})

	clone := buf.Clone()
	assert.Equal(t, int64(0), clone.Stats().Inserts())
	assert.Equal(t, int64(3), clone.Stats().CurrentSize())

	clone.PushBack(4)
	assert.Equal(t, int64(1), clone.Stats().Inserts())
	assert.Equal(t, int64(3), buf.Stats().Inserts())
}
