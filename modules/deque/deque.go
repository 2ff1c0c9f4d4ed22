// Package deque implements position-addressable double-ended sequences.
//
// Two backings satisfy the Seq interface: List, a doubly linked list whose nodes
// live in an arena addressed by stable handles, and Array, a contiguous sequence
// built on gods' arraylist. Both report identical results for every operation;
// only the cost of positional access differs (O(n) for List, O(1) for Array).
package deque

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfMemory is returned by insertions that would grow a sequence past
	// its element limit. The sequence is left unchanged.
	ErrOutOfMemory = errors.New("memory allocation error")
	ErrBadBacking  = errors.New("unsupported backing")
)

// Seq is the positional view shared by the sort engine and the matcher.
type Seq[E any] interface {
	PushFront(v E) error
	PushBack(v E) error
	PopFront()
	PopBack()
	// Insert places v before the element currently at index. An index that does
	// not address an element appends v.
	Insert(index int, v E) error
	Size() int
	// At returns the element at index, the second result is false when index
	// is outside [0, Size()).
	At(index int) (E, bool)
	Set(index int, v E) bool
	Values() []E
	Release()
}

type Backing string

const (
	BackingList  Backing = "list"
	BackingArray Backing = "array"
)

func ParseBacking(s string) (Backing, error) {
	switch b := Backing(strings.ToLower(strings.TrimSpace(s))); b {
	case "", BackingList:
		return BackingList, nil
	case BackingArray:
		return BackingArray, nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrBadBacking, s)
	}
}

type options struct {
	limit int
}

type Option func(*options)

// WithLimit bounds the number of live elements. Zero or negative means unlimited.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = max(n, 0)
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// New returns an empty sequence with the given backing.
func New[E any](b Backing, opts ...Option) Seq[E] {
	if b == BackingArray {
		return NewArray[E](opts...)
	}
	return NewList[E](opts...)
}

var (
	_ Seq[float64] = &List[float64]{}
	_ Seq[float64] = &Array[float64]{}
)
