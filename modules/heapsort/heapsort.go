// Package heapsort sorts a deque.Seq in place with a binary max-heap.
//
// Elements are addressed only through positional lookup (At/Set), so the same
// code sorts a linked List and a contiguous Array.
package heapsort

import (
	"cmp"

	"github.com/antgroup/seqmatch/modules/deque"
)

// Stats counts the work done by one Sort call.
type Stats struct {
	Passes int // heap repair passes over the unsorted prefix
	Swaps  int // value swaps, repair and extraction
}

type options struct {
	step func(done, total int)
}

type Option func(*options)

// WithStep registers fn to be called after every extraction with the number
// of extractions done and the total number required.
func WithStep(fn func(done, total int)) Option {
	return func(o *options) {
		o.step = fn
	}
}

// Sort orders s ascending by repeatedly moving the heap maximum behind the
// shrinking unsorted prefix. Sequences of length 0 or 1 are left untouched.
func Sort[E cmp.Ordered](s deque.Seq[E], opts ...Option) Stats {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	var st Stats
	size := s.Size()
	total := size - 1
	for n := size; n > 1; n-- {
		repair(s, n, &st)
		swap(s, 0, n-1)
		st.Swaps++
		if o.step != nil {
			o.step(size-n+1, total)
		}
	}
	return st
}

// repair restores the max-heap property over [0, n). Each pass visits every
// parent from the last one down to the root and lifts the larger child when it
// strictly exceeds its parent; passes repeat until one completes without a swap.
func repair[E cmp.Ordered](s deque.Seq[E], n int, st *Stats) {
	for again := true; again; {
		again = false
		st.Passes++
		for i := n/2 - 1; i >= 0; i-- {
			parent, _ := s.At(i)
			largest, child := parent, -1
			if l := 2*i + 1; l < n {
				if v, _ := s.At(l); v > largest {
					largest, child = v, l
				}
				if r := 2*i + 2; r < n {
					if v, _ := s.At(r); v > largest {
						largest, child = v, r
					}
				}
			}
			if child < 0 {
				continue
			}
			s.Set(i, largest)
			s.Set(child, parent)
			st.Swaps++
			again = true
		}
	}
}

func swap[E any](s deque.Seq[E], i, j int) {
	a, _ := s.At(i)
	b, _ := s.At(j)
	s.Set(i, b)
	s.Set(j, a)
}

// IsSorted reports whether s is in non-decreasing order.
func IsSorted[E cmp.Ordered](s deque.Seq[E]) bool {
	values := s.Values()
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}
