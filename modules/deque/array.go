package deque

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// Array is a contiguous Seq backed by gods' arraylist. Positional access is
// O(1); front insertion and removal shift the remaining elements.
type Array[E any] struct {
	list  *arraylist.List
	limit int
}

func NewArray[E any](opts ...Option) *Array[E] {
	o := newOptions(opts)
	return &Array[E]{list: arraylist.New(), limit: o.limit}
}

func (a *Array[E]) grow() error {
	if a.list == nil {
		a.list = arraylist.New()
	}
	if a.limit > 0 && a.list.Size() >= a.limit {
		return ErrOutOfMemory
	}
	return nil
}

func (a *Array[E]) PushFront(v E) error {
	if err := a.grow(); err != nil {
		return err
	}
	a.list.Insert(0, v)
	return nil
}

func (a *Array[E]) PushBack(v E) error {
	if err := a.grow(); err != nil {
		return err
	}
	a.list.Add(v)
	return nil
}

func (a *Array[E]) PopFront() {
	if a.list == nil || a.list.Empty() {
		return
	}
	a.list.Remove(0)
}

func (a *Array[E]) PopBack() {
	if a.list == nil || a.list.Empty() {
		return
	}
	a.list.Remove(a.list.Size() - 1)
}

func (a *Array[E]) Insert(index int, v E) error {
	if err := a.grow(); err != nil {
		return err
	}
	if index < 0 || index >= a.list.Size() {
		a.list.Add(v)
		return nil
	}
	a.list.Insert(index, v)
	return nil
}

func (a *Array[E]) Size() int {
	if a.list == nil {
		return 0
	}
	return a.list.Size()
}

func (a *Array[E]) At(index int) (E, bool) {
	var zero E
	if a.list == nil {
		return zero, false
	}
	v, ok := a.list.Get(index)
	if !ok {
		return zero, false
	}
	return v.(E), true
}

func (a *Array[E]) Set(index int, v E) bool {
	if index < 0 || index >= a.Size() {
		return false
	}
	a.list.Set(index, v)
	return true
}

func (a *Array[E]) Values() []E {
	values := make([]E, 0, a.Size())
	if a.list == nil {
		return values
	}
	it := a.list.Iterator()
	for it.Next() {
		values = append(values, it.Value().(E))
	}
	return values
}

func (a *Array[E]) Release() {
	if a.list != nil {
		a.list.Clear()
	}
}
