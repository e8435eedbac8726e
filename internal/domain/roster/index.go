// Package roster provides the qualification index over the crew roster.
package roster

import (
	"github.com/crewsync/backend/internal/domain/model"
)

// QualificationIndex maps a qualification tag (an aircraft type) to the crew
// members holding it. Built once per roster snapshot and never mutated
// afterwards; hot reloads re-index from scratch.
type QualificationIndex struct {
	byTag map[string][]*model.CrewMember
}

// NewQualificationIndex builds the index from a roster snapshot.
func NewQualificationIndex(crew []*model.CrewMember) *QualificationIndex {
	idx := &QualificationIndex{
		byTag: make(map[string][]*model.CrewMember),
	}
	for _, member := range crew {
		idx.Add(member)
	}
	return idx
}

// Add registers the member under every qualification tag they hold.
func (idx *QualificationIndex) Add(member *model.CrewMember) {
	for _, tag := range member.Qualifications {
		idx.byTag[tag] = append(idx.byTag[tag], member)
	}
}

// ByQualification returns all holders of tag in insertion order, or an empty
// slice when the tag is unknown.
func (idx *QualificationIndex) ByQualification(tag string) []*model.CrewMember {
	return idx.byTag[tag]
}

// Tags returns the number of distinct qualification tags indexed.
func (idx *QualificationIndex) Tags() int {
	return len(idx.byTag)
}
