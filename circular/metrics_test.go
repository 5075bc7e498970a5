package circular

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/SergeyMakeev/CircularBuffer/errors"
	"github.com/SergeyMakeev/CircularBuffer/metric"
)

func TestBufferMetricsRecording(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	buf, err := New[int](3,
		WithMetrics[int](registry, "test_buffer"))
	require.NoError(t, err)
	require.NotNil(t, buf.metrics)

	buf.PushBackAll([]int{1, 2, 3, 4}) // fourth overwrites
	buf.Front()
	buf.DropBack()

	assert.Equal(t, 4.0, testutil.ToFloat64(buf.metrics.inserts))
	assert.Equal(t, 1.0, testutil.ToFloat64(buf.metrics.overwrites))
	assert.Equal(t, 1.0, testutil.ToFloat64(buf.metrics.peeks))
	assert.Equal(t, 1.0, testutil.ToFloat64(buf.metrics.removals))
	assert.Equal(t, 0.0, testutil.ToFloat64(buf.metrics.discards))
	assert.Equal(t, 2.0, testutil.ToFloat64(buf.metrics.size))
	assert.InDelta(t, 2.0/3.0, testutil.ToFloat64(buf.metrics.utilization), 1e-9)
}

func TestBufferMetricsDiscards(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	buf, err := New[int](2,
		WithPolicy[int](Discard),
		WithMetrics[int](registry, "discard_buffer"))
	require.NoError(t, err)

	buf.PushBackAll([]int{1, 2, 3})
	assert.Equal(t, 2.0, testutil.ToFloat64(buf.metrics.inserts))
	assert.Equal(t, 1.0, testutil.ToFloat64(buf.metrics.discards))
}

func TestBufferMetricsClearResetsSize(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	buf, err := New[int](4, WithMetrics[int](registry, "clear_buffer"))
	require.NoError(t, err)

	buf.PushBackAll([]int{1, 2, 3})
	require.Equal(t, 3.0, testutil.ToFloat64(buf.metrics.size))

	buf.Clear()
	assert.Equal(t, 0.0, testutil.ToFloat64(buf.metrics.size))
	assert.Equal(t, 0.0, testutil.ToFloat64(buf.metrics.utilization))
}

func TestDuplicateMetricsPrefixRejected(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	_, err := New[int](4, WithMetrics[int](registry, "shared"))
	require.NoError(t, err)

	_, err = New[int](4, WithMetrics[int](registry, "shared"))
	require.Error(t, err)
	assert.ErrorIs(t, err, cerrors.ErrMetricsRegistration)
}

func TestDistinctPrefixesShareRegistry(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	a, err := New[int](4, WithMetrics[int](registry, "buffer_a"))
	require.NoError(t, err)
	b, err := New[int](4, WithMetrics[int](registry, "buffer_b"))
	require.NoError(t, err)

	a.PushBack(1)
	b.PushBackAll([]int{1, 2})

	assert.Equal(t, 1.0, testutil.ToFloat64(a.metrics.inserts))
	assert.Equal(t, 2.0, testutil.ToFloat64(b.metrics.inserts))
}

func TestMetricsOptionIgnoredWhenIncomplete(t *testing.T) {
	registry := metric.NewMetricsRegistry()

	buf, err := New[int](4, WithMetrics[int](registry, ""))
	require.NoError(t, err)
	assert.Nil(t, buf.metrics)

	buf, err = New[int](4, WithMetrics[int](nil, "name"))
	require.NoError(t, err)
	assert.Nil(t, buf.metrics)
}
