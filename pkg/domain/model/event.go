package model

import (
	"time"

	"github.com/aster-works/agora/pkg/domain/types"
)

// EventRestriction limits who may enroll in an event. Zero value means
// no restriction.
type EventRestriction struct {
	Departments []string `json:"departments,omitempty"`
	ClassYears  []int    `json:"classYears,omitempty"`
	MembersOnly bool     `json:"membersOnly"`
}

// Event carries enrollment metadata consulted before a response is
// accepted: capacity, window, visibility, and eligibility restrictions.
type Event struct {
	ID          types.EventID    `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Location    string           `json:"location,omitempty"`
	Price       int              `json:"price"`
	Capacity    int              `json:"capacity"` // 0 = unlimited
	Enrolled    int              `json:"enrolled"`
	Visible     bool             `json:"visible"`
	EnrollStart time.Time        `json:"enrollStart"`
	EnrollEnd   time.Time        `json:"enrollEnd"`
	Restrict    EventRestriction `json:"restrict"`
	FormID      types.FormID     `json:"formId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EnrollmentOpen reports whether the enrollment window contains now.
// A zero window is treated as always open.
func (e *Event) EnrollmentOpen(now time.Time) bool {
	if !e.EnrollStart.IsZero() && now.Before(e.EnrollStart) {
		return false
	}
	if !e.EnrollEnd.IsZero() && now.After(e.EnrollEnd) {
		return false
	}
	return true
}

// Full reports whether the event has reached its capacity.
func (e *Event) Full() bool {
	return e.Capacity > 0 && e.Enrolled >= e.Capacity
}

// Accepts reports whether the member satisfies the event's eligibility
// restrictions. A nil member is only accepted by unrestricted events.
func (e *Event) Accepts(m *Member) bool {
	r := e.Restrict
	if m == nil {
		return !r.MembersOnly && len(r.Departments) == 0 && len(r.ClassYears) == 0
	}

	if r.MembersOnly && !m.Verified {
		return false
	}
	if len(r.Departments) > 0 && !contains(r.Departments, m.Department) {
		return false
	}
	if len(r.ClassYears) > 0 {
		found := false
		for _, y := range r.ClassYears {
			if y == m.ClassYear {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func contains(xs []string, x string) bool {
	for _, s := range xs {
		if s == x {
			return true
		}
	}
	return false
}
