package deque

// Handle addresses a node inside the arena of the List that created it. The zero
// Handle is the nil handle.
type Handle int

const Nil Handle = 0

type node[E any] struct {
	value E
	next  Handle
	prev  Handle
	live  bool
}

// List is a doubly linked list. Nodes are stored in an arena slice and linked by
// handle; released slots are chained through next on a free list and reused by
// later insertions. The chain is linear: front.prev and back.next are Nil.
//
// List keeps no element counter; Size walks the chain.
type List[E any] struct {
	nodes []node[E] // nodes[0] is the nil slot
	free  Handle
	front Handle
	back  Handle
	limit int
	used  int // occupied arena slots, only consulted for the limit
}

func NewList[E any](opts ...Option) *List[E] {
	o := newOptions(opts)
	return &List[E]{nodes: make([]node[E], 1), limit: o.limit}
}

func (l *List[E]) alloc(v E) (Handle, error) {
	if len(l.nodes) == 0 {
		l.nodes = make([]node[E], 1)
	}
	if l.limit > 0 && l.used >= l.limit {
		return Nil, ErrOutOfMemory
	}
	l.used++
	if h := l.free; h != Nil {
		l.free = l.nodes[h].next
		l.nodes[h] = node[E]{value: v, live: true}
		return h, nil
	}
	l.nodes = append(l.nodes, node[E]{value: v, live: true})
	return Handle(len(l.nodes) - 1), nil
}

func (l *List[E]) dispose(h Handle) {
	var zero E
	l.nodes[h] = node[E]{value: zero, next: l.free}
	l.free = h
	l.used--
}

func (l *List[E]) valid(h Handle) bool {
	return h > Nil && int(h) < len(l.nodes) && l.nodes[h].live
}

// Front returns the handle of the first node, Nil when the list is empty.
func (l *List[E]) Front() Handle {
	return l.front
}

// Back returns the handle of the last node, Nil when the list is empty.
func (l *List[E]) Back() Handle {
	return l.back
}

func (l *List[E]) Next(h Handle) Handle {
	if !l.valid(h) {
		return Nil
	}
	return l.nodes[h].next
}

func (l *List[E]) Prev(h Handle) Handle {
	if !l.valid(h) {
		return Nil
	}
	return l.nodes[h].prev
}

// Value returns the value held by h. The zero value is returned for stale handles.
func (l *List[E]) Value(h Handle) E {
	if !l.valid(h) {
		var zero E
		return zero
	}
	return l.nodes[h].value
}

func (l *List[E]) SetValue(h Handle, v E) bool {
	if !l.valid(h) {
		return false
	}
	l.nodes[h].value = v
	return true
}

func (l *List[E]) PushFront(v E) error {
	_, err := l.pushFront(v)
	return err
}

func (l *List[E]) pushFront(v E) (Handle, error) {
	h, err := l.alloc(v)
	if err != nil {
		return Nil, err
	}
	l.nodes[h].next = l.front
	if l.front != Nil {
		l.nodes[l.front].prev = h
	}
	if l.back == Nil {
		l.back = h
	}
	l.front = h
	return h, nil
}

func (l *List[E]) PushBack(v E) error {
	_, err := l.pushBack(v)
	return err
}

func (l *List[E]) pushBack(v E) (Handle, error) {
	h, err := l.alloc(v)
	if err != nil {
		return Nil, err
	}
	l.nodes[h].prev = l.back
	if l.back != Nil {
		l.nodes[l.back].next = h
	}
	if l.front == Nil {
		l.front = h
	}
	l.back = h
	return h, nil
}

func (l *List[E]) PopFront() {
	if l.front == Nil {
		return
	}
	l.Remove(l.front)
}

func (l *List[E]) PopBack() {
	if l.back == Nil {
		return
	}
	l.Remove(l.back)
}

// Remove unlinks the node addressed by h in O(1). It reports false when h does
// not address a live node of l.
func (l *List[E]) Remove(h Handle) bool {
	if !l.valid(h) {
		return false
	}
	n := l.nodes[h]
	if n.prev != Nil {
		l.nodes[n.prev].next = n.next
	} else {
		l.front = n.next
	}
	if n.next != Nil {
		l.nodes[n.next].prev = n.prev
	} else {
		l.back = n.prev
	}
	l.dispose(h)
	return true
}

func (l *List[E]) Size() int {
	n := 0
	for h := l.front; h != Nil; h = l.nodes[h].next {
		n++
	}
	return n
}

// Node walks from the front to the node at index.
func (l *List[E]) Node(index int) (Handle, bool) {
	if index < 0 {
		return Nil, false
	}
	h := l.front
	for n := 0; n != index && h != Nil; n++ {
		h = l.nodes[h].next
	}
	return h, h != Nil
}

func (l *List[E]) At(index int) (E, bool) {
	h, ok := l.Node(index)
	if !ok {
		var zero E
		return zero, false
	}
	return l.nodes[h].value, true
}

func (l *List[E]) Set(index int, v E) bool {
	h, ok := l.Node(index)
	if !ok {
		return false
	}
	l.nodes[h].value = v
	return true
}

func (l *List[E]) Insert(index int, v E) error {
	right, ok := l.Node(index)
	if !ok {
		return l.PushBack(v)
	}
	left := l.nodes[right].prev
	if left == Nil {
		return l.PushFront(v)
	}
	h, err := l.alloc(v)
	if err != nil {
		return err
	}
	l.nodes[h].prev = left
	l.nodes[h].next = right
	l.nodes[left].next = h
	l.nodes[right].prev = h
	return nil
}

func (l *List[E]) Values() []E {
	values := make([]E, 0, l.used)
	for h := l.front; h != Nil; h = l.nodes[h].next {
		values = append(values, l.nodes[h].value)
	}
	return values
}

// Release drops every node. The list is empty and reusable afterwards; calling
// Release again is a no-op.
func (l *List[E]) Release() {
	l.nodes = nil
	l.free, l.front, l.back = Nil, Nil, Nil
	l.used = 0
}
