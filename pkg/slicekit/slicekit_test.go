package slicekit_test

import (
	"strconv"
	"testing"

	"go.llib.dev/containerkit/pkg/slicekit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

func TestMap(t *testing.T) {
	t.Run("happy", func(t *testing.T) {
		got := slicekit.Map([]int{1, 2, 3}, strconv.Itoa)
		assert.Equal(t, []string{"1", "2", "3"}, got)
	})
	t.Run("nil input", func(t *testing.T) {
		assert.Nil(t, slicekit.Map[int](nil, func(n int) int { return n }))
	})
}

func TestReduce(t *testing.T) {
	got := slicekit.Reduce([]int{1, 2, 3, 4}, 0, func(acc, n int) int { return acc + n })
	assert.Equal(t, 10, got)
}

func TestMerge(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("multiple slices are joined in argument order", func(t *testcase.T) {
		a := random.Slice(t.Random.IntBetween(1, 3), t.Random.Int)
		b := random.Slice(t.Random.IntBetween(1, 3), t.Random.Int)
		got := slicekit.Merge(a, b)
		assert.Equal(t, len(a)+len(b), len(got))
		assert.Equal(t, a, got[:len(a)])
		assert.Equal(t, b, got[len(a):])
	})

	s.Test("no input yields empty result", func(t *testcase.T) {
		assert.Empty(t, slicekit.Merge[int]())
	})
}

func TestClone(t *testing.T) {
	src := []int{1, 2, 3}
	got := slicekit.Clone(src)
	assert.Equal(t, src, got)
	got[0] = 42
	assert.Equal(t, 1, src[0])
	assert.Nil(t, slicekit.Clone[int](nil))
}

func TestFirstLast(t *testing.T) {
	_, ok := slicekit.First[int](nil)
	assert.False(t, ok)
	_, ok = slicekit.Last[int](nil)
	assert.False(t, ok)

	vs := []int{1, 2, 3}
	first, ok := slicekit.First(vs)
	assert.True(t, ok)
	assert.Equal(t, 1, first)
	last, ok := slicekit.Last(vs)
	assert.True(t, ok)
	assert.Equal(t, 3, last)
}

func TestLookup(t *testing.T) {
	vs := []string{"a", "b"}
	got, ok := slicekit.Lookup(vs, 1)
	assert.True(t, ok)
	assert.Equal(t, "b", got)
	_, ok = slicekit.Lookup(vs, 2)
	assert.False(t, ok)
	_, ok = slicekit.Lookup(vs, -1)
	assert.False(t, ok)
}

func TestContains(t *testing.T) {
	assert.True(t, slicekit.Contains([]int{1, 2, 3}, 2))
	assert.False(t, slicekit.Contains([]int{1, 2, 3}, 4))
}

func TestFilter(t *testing.T) {
	got := slicekit.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, got)
}

func TestIterReverse(t *testing.T) {
	var got []int
	var indexes []int
	for i, v := range slicekit.IterReverse([]int{1, 2, 3}) {
		indexes = append(indexes, i)
		got = append(got, v)
	}
	assert.Equal(t, []int{2, 1, 0}, indexes)
	assert.Equal(t, []int{3, 2, 1}, got)
}
