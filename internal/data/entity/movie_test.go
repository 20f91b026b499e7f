package entity

import (
	"testing"
	"time"
)

func TestScheduleID(t *testing.T) {
	t.Parallel()

	startAt := time.Date(2026, 9, 5, 21, 0, 0, 0, time.UTC)
	s := Schedule{StartAt: startAt}

	if s.ID() != startAt.UnixMilli() {
		t.Fatalf("ID() = %d, want %d", s.ID(), startAt.UnixMilli())
	}
}

func TestScheduleHasRoom(t *testing.T) {
	t.Parallel()

	s := Schedule{Rooms: []string{"room-1", "room-2"}}

	if !s.HasRoom("room-2") {
		t.Fatal("expected room-2 to be assigned")
	}
	if s.HasRoom("room-3") {
		t.Fatal("did not expect room-3 to be assigned")
	}
}

func TestMovieScheduleByID(t *testing.T) {
	t.Parallel()

	startAt := time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC)

	t.Run("finds schedule by derived id", func(t *testing.T) {
		m := &Movie{Schedules: []Schedule{
			{StartAt: startAt, Price: 10},
			{StartAt: startAt.Add(3 * time.Hour), Price: 12},
		}}

		schedule, ok := m.ScheduleByID(startAt.Add(3 * time.Hour).UnixMilli())
		if !ok {
			t.Fatal("expected schedule to be found")
		}
		if schedule.Price != 12 {
			t.Fatalf("expected price 12, got %v", schedule.Price)
		}
	})

	t.Run("misses unknown id", func(t *testing.T) {
		m := &Movie{Schedules: []Schedule{{StartAt: startAt}}}

		if _, ok := m.ScheduleByID(0); ok {
			t.Fatal("expected no schedule for id 0")
		}
	})

	t.Run("first match wins on colliding start times", func(t *testing.T) {
		m := &Movie{Schedules: []Schedule{
			{StartAt: startAt, Price: 10, Rooms: []string{"room-1"}},
			{StartAt: startAt, Price: 99, Rooms: []string{"room-2"}},
		}}

		schedule, ok := m.ScheduleByID(startAt.UnixMilli())
		if !ok {
			t.Fatal("expected schedule to be found")
		}
		if schedule.Price != 10 {
			t.Fatalf("expected the first stored schedule, got price %v", schedule.Price)
		}
	})
}

func TestMovieMostRecentScheduleAt(t *testing.T) {
	t.Parallel()

	early := time.Date(2026, 9, 5, 6, 0, 0, 0, time.UTC)
	late := time.Date(2026, 9, 12, 21, 0, 0, 0, time.UTC)

	t.Run("returns the earliest start", func(t *testing.T) {
		m := &Movie{Schedules: []Schedule{
			{StartAt: late},
			{StartAt: early},
			{StartAt: early.Add(9 * time.Hour)},
		}}

		at, ok := m.MostRecentScheduleAt()
		if !ok {
			t.Fatal("expected a schedule time")
		}
		if !at.Equal(early) {
			t.Fatalf("expected %v, got %v", early, at)
		}
	})

	t.Run("reports no time without schedules", func(t *testing.T) {
		m := &Movie{}

		if _, ok := m.MostRecentScheduleAt(); ok {
			t.Fatal("expected ok to be false")
		}
	})
}

func TestMovieSchedulesByStartAt(t *testing.T) {
	t.Parallel()

	first := time.Date(2026, 9, 5, 6, 0, 0, 0, time.UTC)
	second := first.Add(3 * time.Hour)
	third := first.AddDate(0, 0, 7)

	m := &Movie{Schedules: []Schedule{
		{StartAt: third},
		{StartAt: first},
		{StartAt: second},
	}}

	sorted := m.SchedulesByStartAt()

	want := []time.Time{first, second, third}
	for i, s := range sorted {
		if !s.StartAt.Equal(want[i]) {
			t.Fatalf("sorted[%d].StartAt = %v, want %v", i, s.StartAt, want[i])
		}
	}

	// The stored order must stay untouched.
	if !m.Schedules[0].StartAt.Equal(third) {
		t.Fatal("expected stored order to be preserved")
	}
}
