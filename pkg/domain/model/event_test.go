package model_test

import (
	"testing"
	"time"

	"github.com/aster-works/agora/pkg/domain/model"
)

func TestEvent_EnrollmentOpen(t *testing.T) {
	now := time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"zero window is always open", time.Time{}, time.Time{}, true},
		{"inside window", now.Add(-time.Hour), now.Add(time.Hour), true},
		{"before start", now.Add(time.Hour), now.Add(2 * time.Hour), false},
		{"after end", now.Add(-2 * time.Hour), now.Add(-time.Hour), false},
		{"only start, passed", now.Add(-time.Hour), time.Time{}, true},
		{"only end, not reached", time.Time{}, now.Add(time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := &model.Event{EnrollStart: tt.start, EnrollEnd: tt.end}
			if got := ev.EnrollmentOpen(now); got != tt.want {
				t.Errorf("EnrollmentOpen() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvent_Full(t *testing.T) {
	if (&model.Event{Capacity: 0, Enrolled: 100}).Full() {
		t.Error("zero capacity means unlimited")
	}
	if (&model.Event{Capacity: 10, Enrolled: 9}).Full() {
		t.Error("below capacity should not be full")
	}
	if !(&model.Event{Capacity: 10, Enrolled: 10}).Full() {
		t.Error("at capacity should be full")
	}
}

func TestEvent_Accepts(t *testing.T) {
	member := &model.Member{Department: "engineering", ClassYear: 2, Verified: true}

	t.Run("unrestricted accepts anyone", func(t *testing.T) {
		ev := &model.Event{}
		if !ev.Accepts(member) || !ev.Accepts(nil) {
			t.Error("unrestricted event should accept everyone")
		}
	})

	t.Run("members only rejects nil and unverified", func(t *testing.T) {
		ev := &model.Event{Restrict: model.EventRestriction{MembersOnly: true}}
		if ev.Accepts(nil) {
			t.Error("should reject nil member")
		}
		if ev.Accepts(&model.Member{Verified: false}) {
			t.Error("should reject unverified member")
		}
		if !ev.Accepts(member) {
			t.Error("should accept verified member")
		}
	})

	t.Run("department restriction", func(t *testing.T) {
		ev := &model.Event{Restrict: model.EventRestriction{Departments: []string{"law", "engineering"}}}
		if !ev.Accepts(member) {
			t.Error("matching department should be accepted")
		}
		if ev.Accepts(&model.Member{Department: "arts"}) {
			t.Error("non-matching department should be rejected")
		}
	})

	t.Run("class year restriction", func(t *testing.T) {
		ev := &model.Event{Restrict: model.EventRestriction{ClassYears: []int{1, 2}}}
		if !ev.Accepts(member) {
			t.Error("matching year should be accepted")
		}
		if ev.Accepts(&model.Member{ClassYear: 4}) {
			t.Error("non-matching year should be rejected")
		}
	})
}
