package fixtures

import (
	"context"
	"testing"

	"cinema-inventory/internal/data/repository"

	"go.uber.org/zap"
)

func TestSeed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewMemoryRepository(zap.NewNop())

	if err := Seed(ctx, repo, zap.NewNop()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rooms, err := repo.Room.FindAll(ctx)
	if err != nil {
		t.Fatalf("list rooms: %v", err)
	}
	if len(rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(rooms))
	}
	if rooms[0].Rows != 20 || rooms[0].Columns != 20 {
		t.Fatalf("expected a 20x20 room, got %dx%d", rooms[0].Rows, rooms[0].Columns)
	}

	movies, err := repo.Movie.FindAll(ctx)
	if err != nil {
		t.Fatalf("list movies: %v", err)
	}
	if len(movies) != 1 {
		t.Fatalf("expected 1 movie, got %d", len(movies))
	}

	movie := movies[0]
	if len(movie.Schedules) != 10 {
		t.Fatalf("expected 10 schedules, got %d", len(movie.Schedules))
	}
	for _, schedule := range movie.Schedules {
		if schedule.Price != 19.99 {
			t.Fatalf("expected price 19.99, got %v", schedule.Price)
		}
		if !schedule.HasRoom(rooms[0].ID) {
			t.Fatalf("expected schedule %d to run in the room", schedule.ID())
		}
	}

	// A second run against a populated store must not duplicate anything.
	if err := Seed(ctx, repo, zap.NewNop()); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	count, err := repo.Movie.Count(ctx)
	if err != nil {
		t.Fatalf("count movies: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 movie after reseed, got %d", count)
	}
}
