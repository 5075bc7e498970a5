package circular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIteratorBasics(t *testing.T) {
	buf, err := New[int](4)
	require.NoError(t, err)
	buf.PushBackAll([]int{10, 20, 30})

	it := buf.Begin()
	assert.True(t, it.Valid())
	assert.Equal(t, 0, it.Index())
	assert.Equal(t, 10, it.Value())

	it = it.Next()
	assert.Equal(t, 20, it.Value())

	it = it.Next()
	assert.Equal(t, 30, it.Value())

	it = it.Next()
	assert.False(t, it.Valid())
	assert.True(t, it.Equal(buf.End()))
}

func TestIteratorArithmetic(t *testing.T) {
	buf, err := New[int](5)
	require.NoError(t, err)
	buf.PushBackAll([]int{0, 10, 20, 30, 40})

	it := buf.Begin().Advance(3)
	assert.Equal(t, 30, it.Value())

	it = it.Prev()
	assert.Equal(t, 20, it.Value())

	it = it.Advance(-2)
	assert.Equal(t, 0, it.Value())

	assert.Equal(t, 5, buf.End().Distance(buf.Begin()))
	assert.Equal(t, -5, buf.Begin().Distance(buf.End()))
}

func TestIteratorComparison(t *testing.T) {
	buf, err := New[int](3)
	require.NoError(t, err)
	buf.PushBackAll([]int{1, 2})

	a := buf.Begin()
	b := buf.Begin().Next()

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(b.Prev()))

	other, err := New[int](3)
	require.NoError(t, err)
	mismatch := "circular: iterators belong to different buffers"
	assert.PanicsWithError(t, mismatch, func() { a.Before(other.Begin()) })
	assert.PanicsWithError(t, mismatch, func() { a.Distance(other.Begin()) })
	assert.False(t, a.Equal(other.Begin()))
}

func TestIteratorSet(t *testing.T) {
	buf, err := New[int](3)
	require.NoError(t, err)
	buf.PushBackAll([]int{1, 2, 3})

	for it := buf.Begin(); !it.Equal(buf.End()); it = it.Next() {
		it.Set(it.Value() * 10)
	}
	assert.Equal(t, []int{10, 20, 30}, buf.ToSlice())
}

func TestIteratorAcrossWraparound(t *testing.T) {
	buf, err := New[int](4)
	require.NoError(t, err)
	buf.PushBackAll([]int{1, 2, 3, 4, 5, 6}) // logical [3 4 5 6], wrapped

	var got []int
	for it := buf.Begin(); it.Valid(); it = it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{3, 4, 5, 6}, got)
}

func TestAllTraversal(t *testing.T) {
	buf, err := New[int](4)
	require.NoError(t, err)
	buf.PushBackAll([]int{5, 6, 7})

	var indices, values []int
	for i, v := range buf.All() {
		indices = append(indices, i)
		values = append(values, v)
	}
	assert.Equal(t, []int{0, 1, 2}, indices)
	assert.Equal(t, []int{5, 6, 7}, values)
}

func TestAllEarlyBreak(t *testing.T) {
	buf, err := New[int](4)
	require.NoError(t, err)
	buf.PushBackAll([]int{1, 2, 3, 4})

	count := 0
	for _, v := range buf.All() {
		count++
		if v == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestBackwardTraversal(t *testing.T) {
	buf, err := New[int](4)
	require.NoError(t, err)
	buf.PushBackAll([]int{1, 2, 3, 4, 5}) // logical [2 3 4 5]

	var indices, values []int
	for i, v := range buf.Backward() {
		indices = append(indices, i)
		values = append(values, v)
	}
	assert.Equal(t, []int{3, 2, 1, 0}, indices)
	assert.Equal(t, []int{5, 4, 3, 2}, values)
}

func TestValuesTraversal(t *testing.T) {
	buf, err := New[string](3)
	require.NoError(t, err)
	buf.PushBackAll([]string{"a", "b", "c"})

	var got []string
	for v := range buf.Values() {
		got = append(got, v)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestEmptyBufferTraversal(t *testing.T) {
	buf, err := New[int](4)
	require.NoError(t, err)

	assert.True(t, buf.Begin().Equal(buf.End()))
	for range buf.All() {
		t.Fatal("empty buffer must not yield")
	}
	for range buf.Backward() {
		t.Fatal("empty buffer must not yield")
	}
}
