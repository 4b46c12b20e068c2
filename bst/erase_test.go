package bst

import (
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEraseTopologies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	cases := []struct {
		name  string
		keys  []int
		erase int
		topo  eraseCase
		want  []int
	}{
		{"leaf", []int{5, 3, 8, 4}, 4, eraseLeaf, []int{3, 5, 8}},
		{"one real child", []int{5, 2, 8, 3, 4}, 3, eraseOneChild, []int{2, 4, 5, 8}},
		{"begin sentinel rises", []int{5, 3, 8, 1}, 1, eraseOneChild, []int{3, 5, 8}},
		{"end sentinel rises", []int{5, 3, 8, 9}, 9, eraseOneChild, []int{3, 5, 8}},
		{"sole node", []int{5}, 5, eraseLast, nil},
		{"predecessor deep", []int{5, 3, 8, 1, 4, 7, 9}, 5, erasePredecessor, []int{1, 3, 4, 7, 8, 9}},
		{"predecessor is left child", []int{5, 3, 8}, 5, erasePredecessor, []int{3, 8}},
		{"predecessor below root", []int{20, 10, 30, 5, 15, 12, 25}, 10, erasePredecessor, []int{5, 12, 15, 20, 25, 30}},
		{"minimum, successor deep", []int{1, 5, 3, 8}, 1, eraseMinSuccessor, []int{3, 5, 8}},
		{"minimum, successor is right child", []int{1, 5}, 1, eraseMinSuccessor, []int{5}},
		{"minimum below root", []int{10, 2, 5}, 2, eraseMinSuccessor, []int{5, 10}},
		{"maximum, predecessor deep", []int{9, 5, 7}, 9, eraseMaxPredecessor, []int{5, 7}},
		{"maximum, predecessor is left child", []int{9, 5}, 9, eraseMaxPredecessor, []int{5}},
		{"maximum below root", []int{1, 9, 4, 6}, 9, eraseMaxPredecessor, []int{1, 4, 6}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tree := newIntTree(t, c.keys...)
			it := tree.Find(c.erase)
			if !it.Valid() {
				t.Fatalf("key %d not found", c.erase)
			}
			if topo := tree.extract(it.n); topo != c.topo {
				t.Fatalf("expected topology %s, got %s", c.topo, topo)
			}
			if err := tree.Check(); err != nil {
				t.Fatalf("invariant check failed: %v", err)
			}
			if got := collect(tree); !slices.Equal(got, c.want) {
				t.Fatalf("got %v, want %v", got, c.want)
			}
			if got := slices.Collect(tree.Backward()); len(got) != len(c.want) {
				t.Fatalf("backward iteration visited %v", got)
			}
			if tree.Len() != len(c.keys)-1 {
				t.Errorf("expected size %d, got %d", len(c.keys)-1, tree.Len())
			}
			if len(c.want) > 0 {
				if lo, _ := tree.Min(); lo != c.want[0] {
					t.Errorf("begin sentinel hangs off %d, want %d", lo, c.want[0])
				}
				if hi, _ := tree.Max(); hi != c.want[len(c.want)-1] {
					t.Errorf("end sentinel hangs off %d, want %d", hi, c.want[len(c.want)-1])
				}
			}
		})
	}
}

func TestEraseScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "containers")
	defer teardown()
	//
	tree := newIntTree(t, 5, 3, 8, 1, 4, 7, 9)
	if !tree.Erase(tree.Find(5)) {
		t.Fatalf("expected 5 to be erased")
	}
	if got := collect(tree); !slices.Equal(got, []int{1, 3, 4, 7, 8, 9}) || tree.Len() != 6 {
		t.Fatalf("after erasing 5: %v (size %d)", got, tree.Len())
	}
	tree.Erase(tree.Find(1))
	if v := tree.Begin().Value(); v != 3 {
		t.Errorf("expected Begin() to dereference to 3, got %d", v)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestEraseSentinelIsNoOp(t *testing.T) {
	tree := newIntTree(t, 2, 1, 3)
	if tree.Erase(tree.End()) || tree.Erase(tree.BeforeBegin()) || tree.Erase(Iterator[int]{}) {
		t.Fatalf("expected erase of sentinel positions to be a no-op")
	}
	if tree.Len() != 3 {
		t.Errorf("size changed to %d", tree.Len())
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestEraseKeepsOtherIteratorsValid(t *testing.T) {
	tree := newIntTree(t, 5, 3, 8, 1, 4, 7, 9)
	four, seven := tree.Find(4), tree.Find(7)
	tree.Erase(tree.Find(5)) // 4 is grafted into the root position
	if four.Value() != 4 || four.Next() != seven {
		t.Errorf("iterator to relocated predecessor broken")
	}
	if seven.Prev() != four {
		t.Errorf("expected 7 to step back onto 4")
	}
}

func TestEraseWhileIterating(t *testing.T) {
	tree := newIntTree(t, 50, 20, 80, 10, 30, 70, 90, 25, 35, 75)
	for it, end := tree.Begin(), tree.End(); it != end; {
		next := it.Next()
		if it.Value()%10 != 5 {
			tree.Erase(it)
			if err := tree.Check(); err != nil {
				t.Fatalf("invariant check failed after erasing: %v", err)
			}
		}
		it = next
	}
	if got := collect(tree); !slices.Equal(got, []int{25, 35, 75}) {
		t.Errorf("got %v, want [25 35 75]", got)
	}
}
