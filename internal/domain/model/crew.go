// Package model contains domain models passed between layers.
package model

import "strings"

// Availability enumerates the duty states a crew member can be in.
// Records arrive with free-form casing ("Available", "available", "BACKUP"),
// so comparisons go through the helper methods below.
type Availability string

// Known availability states.
const (
	Available   Availability = "Available"
	Assigned    Availability = "Assigned"
	Standby     Availability = "Backup"
	Unavailable Availability = "Unavailable"
)

// IsAvailable reports whether the state means "free to take an assignment".
func (a Availability) IsAvailable() bool {
	return strings.EqualFold(string(a), string(Available))
}

// IsStandby reports whether the member belongs in the standby pool.
func (a Availability) IsStandby() bool {
	return strings.EqualFold(string(a), string(Standby))
}

// CrewMember represents one roster entry. The engine treats instances as
// immutable snapshots; the only field that changes between roster loads is
// Availability, and that mutation happens in the repository layer.
type CrewMember struct {
	EmpID          string       `json:"emp_id"`
	Name           string       `json:"name"`
	Designation    string       `json:"designation"`
	BaseLocation   string       `json:"baseLocation"`
	Availability   Availability `json:"availability"`
	AssignedFlight string       `json:"assignedFlight,omitempty"`
	Qualifications []string     `json:"qualifications"`
	Attributes     Attributes   `json:"attributes"`
}

// HoldsQualification reports whether the member carries the given tag.
func (c *CrewMember) HoldsQualification(tag string) bool {
	for _, q := range c.Qualifications {
		if q == tag {
			return true
		}
	}
	return false
}

// Flight represents the task a crew member is ranked against. Immutable for
// the lifetime of one recommendation request.
type Flight struct {
	FlightNumber string `json:"flightNumber"`
	Aircraft     string `json:"aircraft"`
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	Route        string `json:"route"`
	CrewRequired int    `json:"crewRequired"`
	CrewAssigned int    `json:"crewAssigned"`
}

// NeedsCrew reports whether the flight still has unfilled seats.
func (f *Flight) NeedsCrew() bool {
	return f.CrewAssigned < f.CrewRequired
}

// Recommendation is one ranked candidate for a flight. Produced fresh per
// request and never stored.
type Recommendation struct {
	Rank            int                `json:"rank"`
	EmpID           string             `json:"emp_id"`
	Name            string             `json:"name"`
	Designation     string             `json:"designation"`
	BaseLocation    string             `json:"baseLocation"`
	CompositeScore  float64            `json:"compositeScore"`
	AttributeValues map[string]float64 `json:"parameters"`
	Weights         map[string]float64 `json:"weights"`
	KeyStrengths    []string           `json:"keyStrengths"`
}
