// Package standby holds the FIFO pool of backup crew.
package standby

import (
	"github.com/crewsync/backend/internal/domain/model"
)

// Pool is a FIFO queue of crew members flagged as backup. Populated at
// engine construction; the ranking path does not consume it, but a future
// promote-from-standby workflow would dequeue here.
type Pool struct {
	members []*model.CrewMember
}

// NewPool returns an empty standby pool.
func NewPool() *Pool {
	return &Pool{}
}

// Enqueue appends a member to the tail of the pool.
func (p *Pool) Enqueue(member *model.CrewMember) {
	p.members = append(p.members, member)
}

// Dequeue removes and returns the member at the head of the pool.
// The second return is false when the pool is empty.
func (p *Pool) Dequeue() (*model.CrewMember, bool) {
	if len(p.members) == 0 {
		return nil, false
	}
	head := p.members[0]
	p.members[0] = nil
	p.members = p.members[1:]
	return head, true
}

// Len returns the number of members waiting in the pool.
func (p *Pool) Len() int {
	return len(p.members)
}

// Members returns the pooled members in FIFO order without consuming them.
func (p *Pool) Members() []*model.CrewMember {
	out := make([]*model.CrewMember, len(p.members))
	copy(out, p.members)
	return out
}
