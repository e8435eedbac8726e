// Package fatigue provides a min-heap over crew fatigue scores.
package fatigue

import (
	"container/heap"

	"github.com/crewsync/backend/internal/domain/model"
)

type entry struct {
	member  *model.CrewMember
	fatigue float64
	index   int // heap index
}

// entryHeap implements heap.Interface.
type entryHeap []*entry

func (h entryHeap) Len() int           { return len(h) }
func (h entryHeap) Less(i, j int) bool { return h[i].fatigue < h[j].fatigue }
func (h entryHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *entryHeap) Push(x any) {
	e := x.(*entry)
	e.index = len(*h)
	*h = append(*h, e)
}
func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// Heap orders crew members by fatigue score, lowest (freshest) first. Used
// for monitoring views, not for eligibility filtering. Ties between equal
// fatigue values break in heap order, which is arbitrary.
type Heap struct {
	entries entryHeap
}

// NewHeap returns an empty fatigue heap.
func NewHeap() *Heap {
	h := &Heap{entries: entryHeap{}}
	heap.Init(&h.entries)
	return h
}

// Insert adds a member with the given fatigue score.
func (h *Heap) Insert(member *model.CrewMember, fatigue float64) {
	heap.Push(&h.entries, &entry{member: member, fatigue: fatigue})
}

// ExtractLeastFatigued removes and returns the minimum-fatigue member.
// The second return is false when the heap is empty.
func (h *Heap) ExtractLeastFatigued() (*model.CrewMember, bool) {
	if h.entries.Len() == 0 {
		return nil, false
	}
	e := heap.Pop(&h.entries).(*entry)
	return e.member, true
}

// Len returns the number of members currently in the heap.
func (h *Heap) Len() int {
	return h.entries.Len()
}

// LeastFatigued returns up to n members in ascending fatigue order without
// draining the heap; extraction runs on a copy.
func (h *Heap) LeastFatigued(n int) []*model.CrewMember {
	scratch := make(entryHeap, len(h.entries))
	for i, e := range h.entries {
		scratch[i] = &entry{member: e.member, fatigue: e.fatigue, index: i}
	}
	out := make([]*model.CrewMember, 0, n)
	for len(out) < n && scratch.Len() > 0 {
		e := heap.Pop(&scratch).(*entry)
		out = append(out, e.member)
	}
	return out
}
