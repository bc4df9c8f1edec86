package pq

import (
	"errors"
	"math"
)

// ErrNaNPriority indicates a caller attempted to push a NaN priority.
var ErrNaNPriority = errors.New("pq: NaN priority is forbidden")

// Order selects whether Top/Pop return the maximum or minimum priority.
type Order int

const (
	// MaxHeap makes Top/Pop return the id with the largest priority.
	MaxHeap Order = iota
	// MinHeap makes Top/Pop return the id with the smallest priority.
	MinHeap
)

// IndexedPQ is a binary heap over the dense id space [0, capacity).
// Each id is either absent or present with a priority; Push both
// inserts and updates (heap-repairing either direction).
type IndexedPQ struct {
	order    Order
	heap     []int       // heap[slot] = id
	pos      []int       // pos[id] = slot, or -1 if absent
	priority []float64   // priority[id], valid only while id is present
}

// New creates an empty IndexedPQ over ids [0, capacity).
func New(capacity int, order Order) *IndexedPQ {
	q := &IndexedPQ{
		order:    order,
		heap:     make([]int, 0, capacity),
		pos:      make([]int, capacity),
		priority: make([]float64, capacity),
	}
	for i := range q.pos {
		q.pos[i] = -1
	}

	return q
}

// Len returns the number of present ids.
func (q *IndexedPQ) Len() int {
	return len(q.heap)
}

// Empty reports whether no id is present.
func (q *IndexedPQ) Empty() bool {
	return len(q.heap) == 0
}

// Contains reports whether id is currently present.
func (q *IndexedPQ) Contains(id int) bool {
	return q.pos[id] != -1
}

// Push inserts id with priority p if absent, or updates its priority
// (repairing the heap in either direction) if already present. NaN
// priorities are rejected.
func (q *IndexedPQ) Push(id int, p float64) error {
	if math.IsNaN(p) {
		return ErrNaNPriority
	}

	if q.Contains(id) {
		q.priority[id] = p
		slot := q.pos[id]
		q.siftUp(slot)
		q.siftDown(q.pos[id])

		return nil
	}

	q.priority[id] = p
	slot := len(q.heap)
	q.heap = append(q.heap, id)
	q.pos[id] = slot
	q.siftUp(slot)

	return nil
}

// Top returns the extremal id and its priority without removing it.
func (q *IndexedPQ) Top() (id int, priority float64, ok bool) {
	if q.Empty() {
		return 0, 0, false
	}

	id = q.heap[0]

	return id, q.priority[id], true
}

// TopPriority returns only the extremal priority. It returns 0 when the
// queue is empty, so callers should check Empty (or use Top's ok) first.
func (q *IndexedPQ) TopPriority() float64 {
	if q.Empty() {
		return 0
	}

	return q.priority[q.heap[0]]
}

// Pop removes and returns the extremal id and its priority.
func (q *IndexedPQ) Pop() (id int, priority float64, ok bool) {
	id, priority, ok = q.Top()
	if !ok {
		return 0, 0, false
	}
	q.removeSlot(0)

	return id, priority, true
}

// Delete removes id if present and reports whether it was present.
func (q *IndexedPQ) Delete(id int) bool {
	slot := q.pos[id]
	if slot == -1 {
		return false
	}
	q.removeSlot(slot)

	return true
}

func (q *IndexedPQ) removeSlot(slot int) {
	id := q.heap[slot]
	last := len(q.heap) - 1
	q.swap(slot, last)
	q.heap = q.heap[:last]
	q.pos[id] = -1

	if slot < len(q.heap) {
		q.siftDown(slot)
		q.siftUp(slot)
	}
}

// less reports whether id a should sit above id b in heap order:
// by priority according to q.order, ties broken by the lower id.
func (q *IndexedPQ) less(a, b int) bool {
	pa, pb := q.priority[a], q.priority[b]
	if pa == pb {
		return a < b
	}
	if q.order == MaxHeap {
		return pa > pb
	}

	return pa < pb
}

func (q *IndexedPQ) parent(slot int) int { return (slot - 1) / 2 }
func (q *IndexedPQ) left(slot int) int   { return 2*slot + 1 }
func (q *IndexedPQ) right(slot int) int  { return 2*slot + 2 }

func (q *IndexedPQ) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
	q.pos[q.heap[i]] = i
	q.pos[q.heap[j]] = j
}

func (q *IndexedPQ) siftUp(slot int) {
	for slot > 0 {
		p := q.parent(slot)
		if !q.less(q.heap[slot], q.heap[p]) {
			break
		}
		q.swap(slot, p)
		slot = p
	}
}

func (q *IndexedPQ) siftDown(slot int) {
	n := len(q.heap)
	for {
		l, r, best := q.left(slot), q.right(slot), slot
		if l < n && q.less(q.heap[l], q.heap[best]) {
			best = l
		}
		if r < n && q.less(q.heap[r], q.heap[best]) {
			best = r
		}
		if best == slot {
			return
		}
		q.swap(slot, best)
		slot = best
	}
}
