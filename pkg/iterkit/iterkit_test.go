package iterkit_test

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"testing"

	"go.llib.dev/containerkit/pkg/iterkit"
	"go.llib.dev/containerkit/pkg/slicekit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

var rnd = random.New(random.CryptoSeed{})

func ExampleFilter() {
	numbers := iterkit.Slice([]int{1, 2, 3, 4, 5})
	evens := iterkit.Filter(numbers, func(n int) bool { return n%2 == 0 })

	for n := range evens {
		fmt.Println(n)
	}
	// Output:
	// 2
	// 4
}

func TestFilter(t *testing.T) {
	t.Run("given the iterator has set of elements", func(t *testing.T) {
		originalInput := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		iterator := func() iter.Seq[int] { return iterkit.Slice[int](originalInput) }

		t.Run("when filter allow everything", func(t *testing.T) {
			i := iterkit.Filter(iterator(), func(int) bool { return true })
			assert.Must(t).NotNil(i)

			numbers := iterkit.Collect[int](i)
			assert.Equal(t, originalInput, numbers)
		})

		t.Run("when filter disallow part of the value stream", func(t *testing.T) {
			i := iterkit.Filter(iterator(), func(n int) bool { return 5 < n })
			assert.Must(t).NotNil(i)

			numbers := iterkit.Collect[int](i)
			assert.Equal(t, []int{6, 7, 8, 9}, numbers)
		})
	})

	t.Run("the predicate is re-evaluated on every traversal", func(t *testing.T) {
		var calls int
		i := iterkit.Filter(iterkit.Slice([]int{1, 2, 3}), func(int) bool {
			calls++
			return true
		})
		_ = iterkit.Collect(i)
		_ = iterkit.Collect(i)
		assert.Equal(t, 6, calls)
	})

	t.Run("nil iterator yields an empty sequence", func(t *testing.T) {
		i := iterkit.Filter[int](nil, func(int) bool { return true })
		assert.Empty(t, iterkit.Collect(i))
	})
}

func TestFilter2(t *testing.T) {
	originalInput := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	var iterator iter.Seq2[int, int] = func(yield func(int, int) bool) {
		for _, n := range originalInput {
			if !yield(n, n*2) {
				return
			}
		}
	}

	t.Run("the key is exposed alongside the value", func(t *testing.T) {
		i := iterkit.Filter2(iterator, func(k int, v int) bool { return true })
		kvs := iterkit.CollectKV(i)
		assert.Equal(t, len(originalInput), len(kvs))
		for i, kv := range kvs {
			assert.Equal(t, originalInput[i], kv.K)
			assert.Equal(t, kv.K*2, kv.V)
		}
	})

	t.Run("when filter disallow part of the value stream", func(t *testing.T) {
		exp := slicekit.Filter(originalInput, func(v int) bool { return v%2 == 0 })

		i := iterkit.Filter2(iterator, func(k int, v int) bool { return k%2 == 0 })

		var got []int
		for k := range i {
			got = append(got, k)
		}
		assert.ContainExactly(t, exp, got)
	})
}

func TestMap(t *testing.T) {
	s := testcase.NewSpec(t)
	s.Parallel()

	inputStream := testcase.Let(s, func(t *testcase.T) iter.Seq[string] {
		return iterkit.Slice([]string{`a`, `b`, `c`})
	})
	transform := testcase.Var[func(string) string]{ID: `iterkit.MapTransformFunc`}

	subject := func(t *testcase.T) iter.Seq[string] {
		return iterkit.Map(inputStream.Get(t), transform.Get(t))
	}

	s.When(`map used, the new iterator will have the changed values`, func(s *testcase.Spec) {
		transform.Let(s, func(t *testcase.T) func(string) string {
			return func(in string) string {
				return strings.ToUpper(in)
			}
		})

		s.Then(`the new iterator will return values with enhanced by the map step`, func(t *testcase.T) {
			vs := iterkit.Collect[string](subject(t))

			t.Must.Equal([]string{`A`, `B`, `C`}, vs)
		})
	})

	s.Describe(`map used in a daisy chain style`, func(s *testcase.Spec) {
		subject := func(t *testcase.T) iter.Seq[string] {
			toUpper := func(s string) string {
				return strings.ToUpper(s)
			}

			withIndex := func() func(s string) string {
				var index int
				return func(s string) string {
					defer func() { index++ }()
					return fmt.Sprintf(`%s%d`, s, index)
				}
			}

			i := inputStream.Get(t)
			i = iterkit.Map(i, toUpper)
			i = iterkit.Map(i, withIndex())

			return i
		}

		s.Then(`it will execute all the map steps in the final iterator composition`, func(t *testcase.T) {
			values := iterkit.Collect(subject(t))
			t.Must.Equal([]string{`A0`, `B1`, `C2`}, values)
		})
	})
}

func TestMap2(t *testing.T) {
	var src iter.Seq2[string, int] = func(yield func(string, int) bool) {
		for i, k := range []string{"a", "b", "c"} {
			if !yield(k, i+1) {
				return
			}
		}
	}

	i := iterkit.Map2(src, func(k string, v int) (string, string) {
		return strings.ToUpper(k), strconv.Itoa(v)
	})

	got := iterkit.CollectKV(i)
	assert.Equal(t, []iterkit.KV[string, string]{
		{K: "A", V: "1"},
		{K: "B", V: "2"},
		{K: "C", V: "3"},
	}, got)
}

func TestConcat(t *testing.T) {
	t.Run("EmptyIterators", func(t *testing.T) {
		itr := iterkit.Concat[int]()
		vs := iterkit.Collect(itr)
		assert.Empty(t, vs)
	})

	t.Run("SingleIterator", func(t *testing.T) {
		iter1 := iterkit.Slice([]int{1, 2, 3})
		vs := iterkit.Collect(iterkit.Concat(iter1))
		assert.Equal(t, []int{1, 2, 3}, vs)
	})

	t.Run("MultipleIterators", func(t *testing.T) {
		iter1 := iterkit.Slice([]int{1, 2})
		iter2 := iterkit.Slice([]int{3, 4})
		iter3 := iterkit.Slice([]int{5, 6})
		vs := iterkit.Collect(iterkit.Concat(iter1, iter2, iter3))
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, vs)
	})

	t.Run("each operand is visited fully before the next one", func(t *testing.T) {
		var order []string
		logged := func(name string, vs []int) iter.Seq[int] {
			return func(yield func(int) bool) {
				for _, v := range vs {
					order = append(order, name)
					if !yield(v) {
						return
					}
				}
			}
		}
		_ = iterkit.Collect(iterkit.Concat(logged("a", []int{1, 2}), logged("b", []int{3})))
		assert.Equal(t, []string{"a", "a", "b"}, order)
	})

	t.Run("early break stops the whole chain", func(t *testing.T) {
		itr := iterkit.Concat(iterkit.Slice([]int{1, 2}), iterkit.Slice([]int{3, 4}))
		got := iterkit.Collect(iterkit.Limit(itr, 3))
		assert.Equal(t, []int{1, 2, 3}, got)
	})
}

func TestConcat2(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("empty", func(t *testcase.T) {
		itr := iterkit.Concat2[int, int]()
		vs := iterkit.CollectKV(itr)
		assert.Empty(t, vs)
	})

	s.Test("multi", func(t *testcase.T) {
		kvs1 := random.Slice(5, func() iterkit.KV[string, int] {
			return iterkit.KV[string, int]{
				K: t.Random.String(),
				V: t.Random.Int(),
			}
		})
		itr1 := iterkit.FromKV(kvs1)
		exp := append(append([]iterkit.KV[string, int]{}, kvs1...), kvs1...)
		got := iterkit.CollectKV(iterkit.Concat2(itr1, itr1))
		assert.Equal(t, exp, got)
	})
}

func TestSingleValue(t *testing.T) {
	t.Run("yields the element exactly once per traversal", func(t *testing.T) {
		exp := rnd.Int()
		itr := iterkit.SingleValue(exp)
		assert.Equal(t, []int{exp}, iterkit.Collect(itr))
		assert.Equal(t, []int{exp}, iterkit.Collect(itr))
	})
	t.Run("composes like any other sequence", func(t *testing.T) {
		itr := iterkit.Concat(iterkit.SingleValue(1), iterkit.SingleValue(2))
		assert.Equal(t, []int{1, 2}, iterkit.Collect(itr))
	})
}

func TestCollect(t *testing.T) {
	t.Run("values", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3}, iterkit.Collect(iterkit.Slice([]int{1, 2, 3})))
	})
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, iterkit.Collect[int](nil))
	})
	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, iterkit.Collect(iterkit.Empty[int]()))
	})
}

func TestCollect2Map(t *testing.T) {
	kvs := []iterkit.KV[string, int]{{K: "a", V: 1}, {K: "b", V: 2}}
	got := iterkit.Collect2Map(iterkit.FromKV(kvs))
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, got)
}

func TestReduce(t *testing.T) {
	got := iterkit.Reduce(iterkit.Slice([]int{1, 2, 3}), 10, func(acc, n int) int {
		return acc + n
	})
	assert.Equal(t, 16, got)
}

func TestCount(t *testing.T) {
	assert.Equal(t, 3, iterkit.Count(iterkit.Slice([]int{1, 2, 3})))
	assert.Equal(t, 0, iterkit.Count(iterkit.Empty[int]()))
}

func TestCount2(t *testing.T) {
	kvs := []iterkit.KV[string, int]{{K: "a", V: 1}, {K: "b", V: 2}, {K: "c", V: 3}}
	assert.Equal(t, 3, iterkit.Count2(iterkit.FromKV(kvs)))
	assert.Equal(t, 0, iterkit.Count2(iterkit.Empty2[string, int]()))
}

func TestFirstAndLast(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("empty sequence", func(t *testcase.T) {
		_, ok := iterkit.First(iterkit.Empty[int]())
		assert.False(t, ok)
		_, ok = iterkit.Last(iterkit.Empty[int]())
		assert.False(t, ok)
	})

	s.Test("sequence with values", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(1, 5), t.Random.Int)
		first, ok := iterkit.First(iterkit.Slice(vs))
		assert.True(t, ok)
		assert.Equal(t, vs[0], first)

		last, ok := iterkit.Last(iterkit.Slice(vs))
		assert.True(t, ok)
		assert.Equal(t, vs[len(vs)-1], last)
	})
}

func TestFirst2(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("empty sequence", func(t *testcase.T) {
		_, _, ok := iterkit.First2(iterkit.Empty2[string, int]())
		assert.False(t, ok)
	})

	s.Test("sequence with pairs", func(t *testcase.T) {
		kvs := random.Slice(t.Random.IntBetween(1, 5), func() iterkit.KV[string, int] {
			return iterkit.KV[string, int]{K: t.Random.String(), V: t.Random.Int()}
		})
		k, v, ok := iterkit.First2(iterkit.FromKV(kvs))
		assert.True(t, ok)
		assert.Equal(t, kvs[0].K, k)
		assert.Equal(t, kvs[0].V, v)
	})
}

func TestLimitOffset(t *testing.T) {
	src := iterkit.Slice([]int{1, 2, 3, 4, 5})
	assert.Equal(t, []int{1, 2}, iterkit.Collect(iterkit.Limit(src, 2)))
	assert.Equal(t, []int{4, 5}, iterkit.Collect(iterkit.Offset(src, 3)))
	assert.Empty(t, iterkit.Collect(iterkit.Offset(src, 10)))
}

func TestReverse(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, iterkit.Collect(iterkit.Reverse(iterkit.Slice([]int{1, 2, 3}))))
}

func TestFromPull(t *testing.T) {
	t.Run("yields until the pull source is exhausted", func(t *testing.T) {
		next, stop := iter.Pull(iterkit.Slice([]int{1, 2, 3}))
		itr := iterkit.FromPull(next, stop)
		assert.Equal(t, []int{1, 2, 3}, iterkit.Collect(itr))
	})

	t.Run("the stop functions run when the traversal finishes", func(t *testing.T) {
		var stopped bool
		next, stop := iter.Pull(iterkit.Slice([]int{1, 2, 3}))
		itr := iterkit.FromPull(next, func() { stopped = true; stop() })
		_ = iterkit.Collect(itr)
		assert.True(t, stopped)
	})
}

func TestFromPull2(t *testing.T) {
	kvs := []iterkit.KV[string, int]{{K: "a", V: 1}, {K: "b", V: 2}}
	next, stop := iter.Pull2(iterkit.FromKV(kvs))
	itr := iterkit.FromPull2(next, stop)
	assert.Equal(t, kvs, iterkit.CollectKV(itr))
}

func TestBatch(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("batches respect the configured size", func(t *testcase.T) {
		vs := random.Slice(10, t.Random.Int)
		var got [][]int
		for batch := range iterkit.Batch(iterkit.Slice(vs), iterkit.BatchSize(3)) {
			got = append(got, batch)
		}
		assert.Equal(t, 4, len(got))
		assert.Equal(t, vs, slicekit.Merge(got...))
		for _, batch := range got[:len(got)-1] {
			assert.Equal(t, 3, len(batch))
		}
	})

	s.Test("default batch size is used when not configured", func(t *testcase.T) {
		vs := random.Slice(5, t.Random.Int)
		var got [][]int
		for batch := range iterkit.Batch(iterkit.Slice(vs)) {
			got = append(got, batch)
		}
		assert.Equal(t, 1, len(got))
		assert.Equal(t, vs, got[0])
	})
}

func TestSized(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("a slice backed sized sequence knows its length", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(1, 7), t.Random.Int)
		sz := iterkit.SizedOfSlice(vs)
		n, ok := sz.Len()
		assert.True(t, ok)
		assert.Equal(t, len(vs), n)
		assert.Equal(t, vs, iterkit.Collect(sz.Iter()))
	})

	s.Test("filter drops the length capability", func(t *testcase.T) {
		sz := iterkit.FilterSized(iterkit.SizedOfSlice([]int{1, 2, 3}), func(n int) bool {
			return n != 2
		})
		_, ok := sz.Len()
		assert.False(t, ok)
		assert.Equal(t, []int{1, 3}, iterkit.Collect(sz.Iter()))
	})

	s.Test("map drops the length capability", func(t *testcase.T) {
		sz := iterkit.MapSized(iterkit.SizedOfSlice([]int{1, 2}), strconv.Itoa)
		_, ok := sz.Len()
		assert.False(t, ok)
		assert.Equal(t, []string{"1", "2"}, iterkit.Collect(sz.Iter()))
	})

	s.Test("concat sums lengths when every operand supports it", func(t *testcase.T) {
		a := iterkit.SizedOfSlice([]int{1, 2})
		b := iterkit.SizedOfSlice([]int{3})
		sz := iterkit.ConcatSized(a, b)
		n, ok := sz.Len()
		assert.True(t, ok)
		assert.Equal(t, 3, n)
		assert.Equal(t, []int{1, 2, 3}, iterkit.Collect(sz.Iter()))
	})

	s.Test("concat withholds the length when any operand lacks it", func(t *testcase.T) {
		a := iterkit.SizedOfSlice([]int{1, 2})
		b := iterkit.FilterSized(iterkit.SizedOfSlice([]int{3, 4}), func(int) bool { return true })
		sz := iterkit.ConcatSized(a, b)
		_, ok := sz.Len()
		assert.False(t, ok)
		assert.Equal(t, []int{1, 2, 3, 4}, iterkit.Collect(sz.Iter()))
	})

	s.Test("a lifted container reports its live length", func(t *testcase.T) {
		src := &sliceContainer[int]{vs: []int{1, 2}}
		sz := iterkit.SizedOf[int](src)

		n, ok := sz.Len()
		assert.True(t, ok)
		assert.Equal(t, 2, n)

		src.vs = append(src.vs, 3)
		n, ok = sz.Len()
		assert.True(t, ok)
		assert.Equal(t, 3, n)
		assert.Equal(t, []int{1, 2, 3}, iterkit.Collect(sz.Iter()))
	})

	s.Test("zero value yields an empty sequence without a length", func(t *testcase.T) {
		var sz iterkit.Sized[int]
		_, ok := sz.Len()
		assert.False(t, ok)
		assert.Empty(t, iterkit.Collect(sz.Iter()))
	})
}

type sliceContainer[T any] struct{ vs []T }

func (c *sliceContainer[T]) Iter() iter.Seq[T] { return iterkit.Slice(c.vs) }

func (c *sliceContainer[T]) Len() int { return len(c.vs) }
