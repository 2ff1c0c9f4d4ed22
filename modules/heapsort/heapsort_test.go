package heapsort

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/antgroup/seqmatch/modules/deque"
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/require"
)

var backings = []deque.Backing{deque.BackingList, deque.BackingArray}

func load(t *testing.T, b deque.Backing, values []float64) deque.Seq[float64] {
	t.Helper()
	s := deque.New[float64](b)
	require.NoError(t, deque.Load(s, values))
	return s
}

// heapOrder drains a gods binary heap to get an independent ascending order.
func heapOrder(values []float64) []float64 {
	h := binaryheap.NewWith(utils.Float64Comparator)
	for _, v := range values {
		h.Push(v)
	}
	out := make([]float64, 0, len(values))
	for {
		v, ok := h.Pop()
		if !ok {
			return out
		}
		out = append(out, v.(float64))
	}
}

func TestSort(t *testing.T) {
	tests := []struct {
		id     int
		values []float64
		want   []float64
	}{
		{1, nil, nil},
		{2, []float64{42}, []float64{42}},
		{3, []float64{2, 1}, []float64{1, 2}},
		{4, []float64{3, 1, 4, 1, 5}, []float64{1, 1, 3, 4, 5}},
		{5, []float64{7, 7, 7, 7}, []float64{7, 7, 7, 7}},
		{6, []float64{-1.5, 0, -3.25, 2, 0}, []float64{-3.25, -1.5, 0, 0, 2}},
		{7, []float64{9, 8, 7, 6, 5, 4, 3, 2, 1}, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}
	for _, b := range backings {
		for _, tt := range tests {
			s := load(t, b, tt.values)
			Sort(s)
			got := s.Values()
			if len(tt.want) == 0 {
				require.Empty(t, got, "%s test %d", b, tt.id)
				continue
			}
			require.Equal(t, tt.want, got, "%s test %d", b, tt.id)
		}
	}
}

func TestSortRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for _, b := range backings {
		for round := range 40 {
			n := r.IntN(60)
			values := make([]float64, n)
			for i := range values {
				// small alphabet to force duplicates
				values[i] = float64(r.IntN(20)) - 10 + float64(r.IntN(4))/4
			}
			s := load(t, b, values)
			Sort(s)
			got := s.Values()
			require.True(t, IsSorted(s), "%s round %d", b, round)
			require.Equal(t, heapOrder(values), got, "%s round %d", b, round)

			want := slices.Clone(values)
			slices.Sort(want)
			require.Equal(t, want, got, "%s round %d", b, round)
		}
	}
}

func TestSortIdempotent(t *testing.T) {
	for _, b := range backings {
		s := load(t, b, []float64{5, 3, 3, 9, -2, 0.5})
		Sort(s)
		first := s.Values()
		Sort(s)
		require.Equal(t, first, s.Values())
	}
}

func TestSortStats(t *testing.T) {
	s := load(t, deque.BackingList, []float64{1})
	st := Sort(s)
	require.Equal(t, Stats{}, st)

	var steps [][2]int
	s = load(t, deque.BackingList, []float64{3, 1, 4, 1, 5})
	st = Sort(s, WithStep(func(done, total int) {
		steps = append(steps, [2]int{done, total})
	}))
	require.Equal(t, [][2]int{{1, 4}, {2, 4}, {3, 4}, {4, 4}}, steps)
	require.GreaterOrEqual(t, st.Passes, 4)
	require.GreaterOrEqual(t, st.Swaps, 4)
}

func TestSortGenericElements(t *testing.T) {
	s := deque.NewList[string]()
	require.NoError(t, deque.Load[string](s, []string{"pear", "apple", "fig"}))
	Sort[string](s)
	require.Equal(t, []string{"apple", "fig", "pear"}, s.Values())
}
