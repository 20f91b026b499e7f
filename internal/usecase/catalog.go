package usecase

import (
	"context"
	"fmt"

	"cinema-inventory/internal/data/entity"
	"cinema-inventory/internal/data/repository"
)

// resolveSchedule walks movie -> schedule, reporting ErrNotFound at the
// first missing ancestor.
func resolveSchedule(ctx context.Context, repo *repository.Repository, movieID string, scheduleID int64) (*entity.Movie, *entity.Schedule, error) {
	movie, err := repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, nil, fmt.Errorf("movie %s: %w", movieID, repository.ErrNotFound)
	}

	schedule, ok := movie.ScheduleByID(scheduleID)
	if !ok {
		return nil, nil, fmt.Errorf("schedule %d of movie %s: %w", scheduleID, movieID, repository.ErrNotFound)
	}

	return movie, schedule, nil
}

// resolveShowing walks movie -> schedule -> assigned room -> room catalog,
// in that order. The order decides which missing ancestor gets reported
// when several are wrong at once.
func resolveShowing(ctx context.Context, repo *repository.Repository, movieID string, scheduleID int64, roomID string) (*entity.Movie, *entity.Schedule, *entity.Room, error) {
	movie, schedule, err := resolveSchedule(ctx, repo, movieID, scheduleID)
	if err != nil {
		return nil, nil, nil, err
	}

	if !schedule.HasRoom(roomID) {
		return nil, nil, nil, fmt.Errorf("room %s not assigned to schedule %d: %w", roomID, scheduleID, repository.ErrNotFound)
	}

	room, err := repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, nil, nil, fmt.Errorf("room %s: %w", roomID, repository.ErrNotFound)
	}

	return movie, schedule, room, nil
}
