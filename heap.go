package huffman

import (
	"container/heap"
)

// type queueEntry + type nodeQueue {{{

// queueEntry pairs a partial tree with its aggregate frequency.  Entries are
// ordered by (freq, seq); seq is unique, so the order is total and the tree
// shape never depends on container/heap internals.
type queueEntry struct {
	freq uint64
	seq  uint32
	node Node
}

type nodeQueue struct {
	list    []queueEntry
	nextSeq uint32
}

// Add pushes node with the next sequence number.
func (q *nodeQueue) Add(freq uint64, node Node) {
	heap.Push(q, queueEntry{freq: freq, seq: q.nextSeq, node: node})
	q.nextSeq++
}

// Take pops the lowest entry.
func (q *nodeQueue) Take() queueEntry {
	return heap.Pop(q).(queueEntry)
}

func (q *nodeQueue) Len() int {
	return len(q.list)
}

func (q *nodeQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.seq < b.seq
}

func (q *nodeQueue) Push(x interface{}) {
	q.list = append(q.list, x.(queueEntry))
}

func (q *nodeQueue) Pop() interface{} {
	last := uint(len(q.list)) - 1
	x := q.list[last]
	q.list[last] = queueEntry{}
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*nodeQueue)(nil)

// }}}
