package envelope

// nilHandle marks the absence of a neighbour.
const nilHandle = -1

// node is one arena slot of the interval list.
type node struct {
	iv         Interval
	prev, next int
}

// intervalList is an ordered sequence of intervals stored in an arena and
// linked by integer handles. Handles stay valid for the life of the list,
// inserting next to a handle is O(1) amortized, and the interval behind a
// handle can be mutated in place.
//
// Pointers returned by At are invalidated by the next insertion (the arena
// may grow); handles are not.
type intervalList struct {
	nodes      []node
	head, tail int
	n          int
}

func newIntervalList(capacity int) *intervalList {
	return &intervalList{
		nodes: make([]node, 0, capacity),
		head:  nilHandle,
		tail:  nilHandle,
	}
}

// Len returns the number of live intervals.
func (l *intervalList) Len() int { return l.n }

// Front returns the handle of the first interval, or nilHandle.
func (l *intervalList) Front() int { return l.head }

// Back returns the handle of the last interval, or nilHandle.
func (l *intervalList) Back() int { return l.tail }

// Next returns the handle after h, or nilHandle.
func (l *intervalList) Next(h int) int { return l.nodes[h].next }

// Prev returns the handle before h, or nilHandle.
func (l *intervalList) Prev(h int) int { return l.nodes[h].prev }

// At returns the interval behind h for in-place mutation.
func (l *intervalList) At(h int) *Interval { return &l.nodes[h].iv }

// PushBack appends iv at the tail and returns its handle.
func (l *intervalList) PushBack(iv Interval) int {
	h := l.alloc(iv)
	if l.tail == nilHandle {
		l.head, l.tail = h, h
		return h
	}
	l.link(l.tail, h, nilHandle)

	return h
}

// InsertAfter places iv immediately after h and returns its handle.
func (l *intervalList) InsertAfter(h int, iv Interval) int {
	nh := l.alloc(iv)
	l.link(h, nh, l.nodes[h].next)

	return nh
}

// InsertBefore places iv immediately before h and returns its handle.
func (l *intervalList) InsertBefore(h int, iv Interval) int {
	nh := l.alloc(iv)
	l.link(l.nodes[h].prev, nh, h)

	return nh
}

// Each calls fn for every interval in order.
func (l *intervalList) Each(fn func(iv *Interval)) {
	for h := l.head; h != nilHandle; h = l.nodes[h].next {
		fn(&l.nodes[h].iv)
	}
}

func (l *intervalList) alloc(iv Interval) int {
	l.nodes = append(l.nodes, node{iv: iv, prev: nilHandle, next: nilHandle})
	l.n++

	return len(l.nodes) - 1
}

// link wires h between prev and next (either may be nilHandle).
func (l *intervalList) link(prev, h, next int) {
	l.nodes[h].prev, l.nodes[h].next = prev, next
	if prev == nilHandle {
		l.head = h
	} else {
		l.nodes[prev].next = h
	}
	if next == nilHandle {
		l.tail = h
	} else {
		l.nodes[next].prev = h
	}
}
