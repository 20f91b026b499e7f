package entity

import (
	"sort"
	"time"
)

// Schedule is a single screening of its parent movie. It has no id of its
// own: the identifier is the numeric timestamp of StartAt, so schedules are
// namespaced under their movie rather than globally unique.
type Schedule struct {
	StartAt time.Time
	Price   float64  `validate:"gte=0"`
	Rooms   []string // room IDs assigned to this screening, in stored order
}

// ID returns the schedule identifier: StartAt in Unix milliseconds.
func (s Schedule) ID() int64 {
	return s.StartAt.UnixMilli()
}

// HasRoom reports whether the room is assigned to this screening.
func (s Schedule) HasRoom(roomID string) bool {
	for _, id := range s.Rooms {
		if id == roomID {
			return true
		}
	}
	return false
}

type Movie struct {
	ID        string
	Title     string `validate:"required,min=3,max=128"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Schedules []Schedule
}

// ScheduleByID returns the first schedule whose derived id matches, in
// stored order. Two schedules starting in the same millisecond collide;
// first match wins.
func (m *Movie) ScheduleByID(id int64) (*Schedule, bool) {
	for i := range m.Schedules {
		if m.Schedules[i].ID() == id {
			return &m.Schedules[i], true
		}
	}
	return nil, false
}

// MostRecentScheduleAt returns the earliest StartAt among the movie's
// schedules. The name is historical: it has always reported the earliest
// upcoming screening, not the latest. ok is false when the movie has no
// schedules.
func (m *Movie) MostRecentScheduleAt() (at time.Time, ok bool) {
	if len(m.Schedules) == 0 {
		return time.Time{}, false
	}
	at = m.Schedules[0].StartAt
	for _, s := range m.Schedules[1:] {
		if s.StartAt.Before(at) {
			at = s.StartAt
		}
	}
	return at, true
}

// SchedulesByStartAt returns the movie's schedules sorted ascending by
// StartAt. The stored order is left untouched.
func (m *Movie) SchedulesByStartAt() []Schedule {
	sorted := make([]Schedule, len(m.Schedules))
	copy(sorted, m.Schedules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartAt.Before(sorted[j].StartAt)
	})
	return sorted
}
