package frontier

import "container/heap"

// pqEntry is one queued item together with its priority and the insertion
// sequence number used to break ties between equal priorities.
type pqEntry[T comparable] struct {
	item     T
	priority float64
	seq      uint64
	index    int // position inside the heap slice, maintained by Swap
}

// entryHeap implements heap.Interface over *pqEntry, ordered by
// (priority, seq) ascending.
type entryHeap[T comparable] []*pqEntry[T]

// Len returns the number of entries in the heap.
func (h entryHeap[T]) Len() int { return len(h) }

// Less orders by priority, then by insertion sequence (stable ties).
func (h entryHeap[T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}

	return h[i].seq < h[j].seq
}

// Swap exchanges two entries and keeps their index fields in sync.
func (h entryHeap[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

// Push is called by heap.Push; x must be a *pqEntry[T].
func (h *entryHeap[T]) Push(x any) {
	e := x.(*pqEntry[T])
	e.index = len(*h)
	*h = append(*h, e)
}

// Pop is called by heap.Pop and removes the last element of the slice.
func (h *entryHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]

	return e
}

// PriorityQueue is a min-priority queue of unique items with decrease-key.
//
// Each item is queued at most once; an index map from item to heap entry
// makes Update, Contains and Priority O(1) lookups. Among equal priorities,
// items pop in the order they were first inserted.
type PriorityQueue[T comparable] struct {
	heap  entryHeap[T]
	index map[T]*pqEntry[T]
	seq   uint64
}

// NewPriorityQueue returns an empty queue with room for capacity items.
func NewPriorityQueue[T comparable](capacity int) *PriorityQueue[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &PriorityQueue[T]{
		heap:  make(entryHeap[T], 0, capacity),
		index: make(map[T]*pqEntry[T], capacity),
	}
}

// Push inserts item with the given priority. If item is already queued it is
// re-keyed to priority and takes a fresh insertion position, exactly as if it
// had been removed and pushed again.
func (pq *PriorityQueue[T]) Push(item T, priority float64) {
	pq.lazyInit()
	if e, ok := pq.index[item]; ok {
		e.priority = priority
		e.seq = pq.nextSeq()
		heap.Fix(&pq.heap, e.index)
		return
	}
	e := &pqEntry[T]{item: item, priority: priority, seq: pq.nextSeq()}
	heap.Push(&pq.heap, e)
	pq.index[item] = e
}

// Pop removes and returns the item with the minimum priority.
// The boolean is false when the queue is empty.
func (pq *PriorityQueue[T]) Pop() (T, bool) {
	if len(pq.heap) == 0 {
		var zero T
		return zero, false
	}
	e := heap.Pop(&pq.heap).(*pqEntry[T])
	delete(pq.index, e.item)

	return e.item, true
}

// Update lowers the priority of item when it is queued with a strictly
// higher priority, keeping its original insertion position. An absent item
// is pushed. An item already queued with an equal or lower priority is left
// untouched. Update reports whether the queue changed.
func (pq *PriorityQueue[T]) Update(item T, priority float64) bool {
	pq.lazyInit()
	e, ok := pq.index[item]
	if !ok {
		pq.Push(item, priority)
		return true
	}
	if e.priority <= priority {
		return false
	}
	e.priority = priority
	heap.Fix(&pq.heap, e.index)

	return true
}

// Contains reports whether item is currently queued.
func (pq *PriorityQueue[T]) Contains(item T) bool {
	_, ok := pq.index[item]
	return ok
}

// Priority returns the recorded priority of a queued item.
func (pq *PriorityQueue[T]) Priority(item T) (float64, bool) {
	e, ok := pq.index[item]
	if !ok {
		return 0, false
	}

	return e.priority, true
}

// IsEmpty reports whether the queue holds no items.
func (pq *PriorityQueue[T]) IsEmpty() bool { return len(pq.heap) == 0 }

// Len returns the number of queued items.
func (pq *PriorityQueue[T]) Len() int { return len(pq.heap) }

func (pq *PriorityQueue[T]) nextSeq() uint64 {
	s := pq.seq
	pq.seq++
	return s
}

// lazyInit makes the zero value usable.
func (pq *PriorityQueue[T]) lazyInit() {
	if pq.index == nil {
		pq.index = make(map[T]*pqEntry[T])
	}
}
