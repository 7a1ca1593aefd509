package collection_test

import (
	"strconv"
	"testing"

	"github.com/pharmadesk/pharmadesk/pkg/collection"
)

func TestMap(t *testing.T) {
	got := collection.Map([]int{1, 2, 3}, strconv.Itoa)
	if len(got) != 3 || got[0] != "1" || got[2] != "3" {
		t.Errorf("got %v", got)
	}
}

func TestFilter(t *testing.T) {
	got := collection.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 })
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("got %v", got)
	}
}

func TestFirst(t *testing.T) {
	v, ok := collection.First([]int{1, 2, 3}, func(n int) bool { return n > 1 })
	if !ok || v != 2 {
		t.Errorf("got %v, %v", v, ok)
	}
	if _, ok := collection.First([]int{1}, func(n int) bool { return n > 9 }); ok {
		t.Error("expected no match")
	}
}

func TestSortedByCopiesAndIsStable(t *testing.T) {
	type row struct {
		key int
		tag string
	}
	in := []row{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}}

	got := collection.SortedBy(in, func(a, b row) bool { return a.key < b.key })

	if in[0].key != 2 || in[0].tag != "a" {
		t.Error("input slice was mutated")
	}
	want := []row{{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestReduceAndSum(t *testing.T) {
	product := collection.Reduce([]int{2, 3, 4}, 1, func(acc, n int) int { return acc * n })
	if product != 24 {
		t.Errorf("got %d", product)
	}

	sum := collection.Sum([]float64{1.5, 2.5}, func(f float64) float64 { return f })
	if sum != 4 {
		t.Errorf("got %v", sum)
	}
}

func TestTake(t *testing.T) {
	s := []int{1, 2, 3}
	if got := collection.Take(s, 2); len(got) != 2 || got[1] != 2 {
		t.Errorf("got %v", got)
	}
	if got := collection.Take(s, 10); len(got) != 3 {
		t.Errorf("got %v", got)
	}
}
