package vector

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestPushBackGrowsByDoubling(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	var v Vector[int]
	caps := []int{}
	for i := 0; i < 9; i++ {
		v.PushBack(i)
		caps = append(caps, v.Capacity())
	}
	require.Equal(t, []int{1, 2, 4, 4, 8, 8, 8, 8, 16}, caps)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, slices.Collect(v.All()))
	v.ShrinkToFit()
	require.Equal(t, 9, v.Capacity())
}

func TestAtAndBounds(t *testing.T) {
	v := New("a", "b", "c")
	x, err := v.At(1)
	require.NoError(t, err)
	require.Equal(t, "b", x)
	_, err = v.At(3)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = v.At(-1)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	*v.Ref(0) = "A"
	front, _ := v.Front()
	back, _ := v.Back()
	require.Equal(t, "A", front)
	require.Equal(t, "c", back)
	_, err = New[int]().Front()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = New[int]().Back()
	require.ErrorIs(t, err, ErrEmpty)
}

func TestInsertEraseShift(t *testing.T) {
	v := New(1, 2, 4, 5)
	it := v.Insert(v.Begin().Advance(2), 3)
	require.Equal(t, 2, it.Index())
	require.Equal(t, 3, it.Value())
	require.Equal(t, []int{1, 2, 3, 4, 5}, v.Data())
	v.Insert(v.Begin(), 0)
	require.True(t, v.Erase(v.Begin().Advance(3)))
	require.False(t, v.Erase(v.End()))
	require.Equal(t, []int{0, 1, 2, 4, 5}, v.Data())
	last, ok := v.PopBack()
	require.True(t, ok)
	require.Equal(t, 5, last)
	require.Equal(t, 4, v.Len())
	require.Panics(t, func() { v.Insert(v.End().Next(), 9) })
}

func TestReserveClearSwap(t *testing.T) {
	v := WithLen[int](3)
	require.Equal(t, []int{0, 0, 0}, v.Data())
	v.Reserve(10)
	require.Equal(t, 10, v.Capacity())
	v.Reserve(2)
	require.Equal(t, 10, v.Capacity())
	v.Clear()
	require.True(t, v.IsEmpty())
	require.Equal(t, 10, v.Capacity())
	_, ok := v.PopBack()
	require.False(t, ok)
	w := New(7, 8)
	v.Swap(w)
	require.Equal(t, []int{7, 8}, v.Data())
	require.True(t, w.IsEmpty())
	c := v.Clone()
	*c.Ref(0) = 1
	require.Equal(t, 7, v.Data()[0])
	require.Positive(t, v.MaxSize())
}

func TestIterator(t *testing.T) {
	v := New(1, 2, 3)
	n := 0
	for it := v.Begin(); it != v.End(); it = it.Next() {
		n += it.Value()
	}
	require.Equal(t, 6, n)
	require.False(t, v.End().Valid())
	require.Nil(t, v.End().Ref())
	require.Equal(t, 3, v.End().Prev().Value())
}
