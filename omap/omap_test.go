package omap

import (
	"errors"
	"maps"
	"slices"
	"testing"

	"github.com/npillmayer/containers/compare"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestInsertOrAssign(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	m := New[string, int]()
	_, inserted := m.InsertOrAssign("a", 1)
	require.True(t, inserted)
	_, inserted = m.InsertOrAssign("a", 2)
	require.False(t, inserted)
	v, err := m.At("a")
	require.NoError(t, err)
	require.Equal(t, 2, *v)
	require.Equal(t, 1, m.Len())
}

func TestInsertKeepsPresentValue(t *testing.T) {
	m := New(Entry[string, int]{"x", 1})
	it, ok := m.Insert("x", 99)
	require.False(t, ok)
	require.Equal(t, 1, it.Value().Value)
	_, ok = m.InsertEntry(Entry[string, int]{"y", 2})
	require.True(t, ok)
	require.Equal(t, []string{"x", "y"}, slices.Collect(m.Keys()))
}

func TestAtMissingKey(t *testing.T) {
	m := New(Entry[int, string]{1, "one"})
	_, err := m.At(2)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrKeyNotFound))
	require.Equal(t, 1, m.Len())
	v, err := m.At(1)
	require.NoError(t, err)
	*v = "uno"
	got, ok := m.Get(1)
	require.True(t, ok)
	require.Equal(t, "uno", got)
	_, ok = m.Get(3)
	require.False(t, ok)
}

func TestIndexInsertsZeroValue(t *testing.T) {
	m := New[string, int]()
	*m.Index("hits") += 1
	*m.Index("hits") += 1
	require.Equal(t, 1, m.Len())
	require.Equal(t, 2, *m.Index("hits"))
	require.Equal(t, 0, *m.Index("misses"))
	require.Equal(t, 2, m.Len())
	require.True(t, m.Contains("misses"))
}

func TestMapIterationOrder(t *testing.T) {
	m := New(
		Entry[int, string]{5, "e"},
		Entry[int, string]{3, "c"},
		Entry[int, string]{8, "h"},
		Entry[int, string]{1, "a"},
	)
	require.Equal(t, []int{1, 3, 5, 8}, slices.Collect(m.Keys()))
	require.Equal(t, []string{"a", "c", "e", "h"}, slices.Collect(m.Values()))
	require.Equal(t, map[int]string{1: "a", 3: "c", 5: "e", 8: "h"}, maps.Collect(m.All()))
	require.Equal(t, 1, m.Begin().Value().Key)
	require.Equal(t, 8, m.End().Prev().Value().Key)
}

func TestMapEraseAndFind(t *testing.T) {
	m := New(Entry[int, int]{2, 20}, Entry[int, int]{1, 10}, Entry[int, int]{3, 30})
	it := m.Find(2)
	require.Equal(t, 20, it.Value().Value)
	require.True(t, m.Erase(it))
	require.False(t, m.Contains(2))
	require.Equal(t, m.End(), m.Find(2))
	require.False(t, m.Erase(m.End()))
	require.Equal(t, 2, m.Len())
}

func TestMapMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	dst := New(Entry[string, int]{"b", 1}, Entry[string, int]{"d", 1})
	src := New(Entry[string, int]{"a", 2}, Entry[string, int]{"b", 2}, Entry[string, int]{"c", 2})
	dst.Merge(src)
	require.Equal(t, map[string]int{"a": 2, "b": 1, "c": 2, "d": 1}, maps.Collect(dst.All()))
	require.Equal(t, map[string]int{"b": 2}, maps.Collect(src.All()))
	dst.Merge(New[string, int]())
	require.Equal(t, 4, dst.Len())
}

func TestMapCopyMoveSwap(t *testing.T) {
	m := New(Entry[string, int]{"a", 1})
	c := m.Clone()
	*c.Index("a") = 7
	require.Equal(t, 1, *m.Index("a"))
	moved := m.Move()
	require.True(t, m.IsEmpty())
	require.Equal(t, 1, moved.Len())
	moved.Swap(c)
	v, _ := moved.Get("a")
	require.Equal(t, 7, v)
	m.Assign(c)
	require.Equal(t, 1, m.Len())
	m.Clear()
	m.Clear()
	require.True(t, m.IsEmpty())
	require.Positive(t, m.MaxSize())
}

func TestMapCustomComparator(t *testing.T) {
	m, err := NewWith[int, string](compare.Reverse[int](compare.Ordered[int]{}),
		Entry[int, string]{1, "a"}, Entry[int, string]{2, "b"})
	require.NoError(t, err)
	require.Equal(t, []int{2, 1}, slices.Collect(m.Keys()))
	_, err = NewWith[int, string](nil)
	require.Error(t, err)
}
