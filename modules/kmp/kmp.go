// Package kmp finds the first occurrence of a pattern sequence inside a subject
// sequence with the Knuth-Morris-Pratt algorithm.
//
// Elements are compared with ==. For floating-point sequences this is exact
// equality: 0.1+0.2 does not match 0.3.
package kmp

import (
	"errors"
	"fmt"

	"github.com/antgroup/seqmatch/modules/deque"
)

var (
	ErrEmptyPattern = errors.New("empty pattern")
)

// Match is the outcome of one search. Position is the zero-based start of the
// first occurrence, -1 when Found is false.
type Match struct {
	Found    bool `json:"found" toml:"found"`
	Position int  `json:"position" toml:"position"`
}

var NotFound = Match{Position: -1}

func (m Match) String() string {
	if !m.Found {
		return "Pattern not found"
	}
	return fmt.Sprintf("Pattern found at position %d", m.Position)
}

type options struct {
	backing deque.Backing
	limit   int
}

type Option func(*options)

// WithTable selects the backing and element limit of the prefix table.
func WithTable(b deque.Backing, limit int) Option {
	return func(o *options) {
		o.backing = b
		o.limit = limit
	}
}

// PrefixTable computes the prefix function of pattern: entry k is the length of
// the longest proper prefix of pattern[0..k] that is also its suffix. The caller
// owns the returned table.
func PrefixTable[E comparable](pattern deque.Seq[E], opts ...Option) (deque.Seq[int], error) {
	o := options{backing: deque.BackingList}
	for _, fn := range opts {
		fn(&o)
	}
	m := pattern.Size()
	table := deque.New[int](o.backing, deque.WithLimit(o.limit))
	for range m {
		if err := table.PushBack(0); err != nil {
			table.Release()
			return nil, err
		}
	}
	for i, j := 1, 0; i < m; {
		a, _ := pattern.At(i)
		b, _ := pattern.At(j)
		switch {
		case a == b:
			j++
			table.Set(i, j)
			i++
		case j == 0:
			table.Set(i, 0)
			i++
		default:
			j, _ = table.At(j - 1)
		}
	}
	return table, nil
}

// Search scans subject for pattern and reports the first occurrence. A missing
// pattern is not an error; an empty pattern is.
func Search[E comparable](subject, pattern deque.Seq[E], opts ...Option) (Match, error) {
	m := pattern.Size()
	if m == 0 {
		return NotFound, ErrEmptyPattern
	}
	table, err := PrefixTable(pattern, opts...)
	if err != nil {
		return NotFound, err
	}
	defer table.Release()
	n := subject.Size()
	for i, j := 0, 0; i < n; {
		a, _ := subject.At(i)
		b, _ := pattern.At(j)
		switch {
		case a == b:
			i++
			j++
			if j == m {
				return Match{Found: true, Position: i - m}, nil
			}
		case j > 0:
			j, _ = table.At(j - 1)
		default:
			i++
		}
	}
	return NotFound, nil
}
