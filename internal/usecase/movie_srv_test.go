package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinema-inventory/internal/data/entity"
	"cinema-inventory/internal/data/repository"
	"cinema-inventory/internal/dto/response"

	"go.uber.org/zap"
)

func TestMovieService_ListMovies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewMemoryRepository(zap.NewNop())
	svc := NewMovieService(repo, zap.NewNop())

	base := time.Date(2026, 9, 5, 12, 0, 0, 0, time.UTC)

	movies := []*entity.Movie{
		{
			ID:    "movie-later",
			Title: "Late Show",
			Schedules: []entity.Schedule{
				{StartAt: base.AddDate(0, 0, 14)},
				{StartAt: base.AddDate(0, 0, 3)},
			},
		},
		{
			ID:    "movie-unscheduled",
			Title: "Shelf Warmer",
		},
		{
			ID:    "movie-sooner",
			Title: "Early Show",
			Schedules: []entity.Schedule{
				{StartAt: base.AddDate(0, 0, 1)},
			},
		},
	}
	for _, movie := range movies {
		if err := repo.Movie.Insert(ctx, movie); err != nil {
			t.Fatalf("insert movie: %v", err)
		}
	}

	doc, err := svc.ListMovies(ctx)
	if err != nil {
		t.Fatalf("list movies: %v", err)
	}

	resources, ok := doc.Data.([]response.MovieResource)
	if !ok {
		t.Fatalf("expected movie resources, got %T", doc.Data)
	}

	// Schedule-less movies are not listed; the rest sort by their earliest
	// screening.
	if len(resources) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(resources))
	}
	if resources[0].ID != "movie-sooner" || resources[1].ID != "movie-later" {
		t.Fatalf("unexpected order: %s, %s", resources[0].ID, resources[1].ID)
	}

	at := resources[1].Attributes.MostRecentScheduleAt
	if at == nil || !at.Equal(base.AddDate(0, 0, 3)) {
		t.Fatalf("expected earliest schedule time, got %v", at)
	}

	if doc.Links == nil || doc.Links.Self != response.MoviesPath() {
		t.Fatalf("unexpected self link: %+v", doc.Links)
	}
}

func TestMovieService_ListSchedules(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns schedules sorted by start time", func(t *testing.T) {
		repo := repository.NewMemoryRepository(zap.NewNop())
		svc := NewMovieService(repo, zap.NewNop())

		base := time.Date(2026, 9, 5, 6, 0, 0, 0, time.UTC)
		movie := &entity.Movie{
			ID:    "movie-1",
			Title: "The Big Sleep",
			Schedules: []entity.Schedule{
				{StartAt: base.Add(15 * time.Hour), Price: 19.99},
				{StartAt: base, Price: 19.99},
				{StartAt: base.Add(3 * time.Hour), Price: 19.99},
			},
		}
		if err := repo.Movie.Insert(ctx, movie); err != nil {
			t.Fatalf("insert movie: %v", err)
		}

		doc, err := svc.ListSchedules(ctx, "movie-1")
		if err != nil {
			t.Fatalf("list schedules: %v", err)
		}

		resources, ok := doc.Data.([]response.ScheduleResource)
		if !ok {
			t.Fatalf("expected schedule resources, got %T", doc.Data)
		}
		if len(resources) != 3 {
			t.Fatalf("expected 3 schedules, got %d", len(resources))
		}

		var prev time.Time
		for i, r := range resources {
			if i > 0 && r.Attributes.StartAt.Before(prev) {
				t.Fatalf("schedules out of order at %d", i)
			}
			prev = r.Attributes.StartAt

			if r.ID != response.ScheduleIDString(r.Attributes.StartAt.UnixMilli()) {
				t.Fatalf("schedule id %s does not match its start time", r.ID)
			}
		}

		if len(doc.Included) != 1 {
			t.Fatalf("expected the movie to be included, got %d entries", len(doc.Included))
		}
		if included, ok := doc.Included[0].(response.MovieResource); !ok || included.ID != "movie-1" {
			t.Fatalf("unexpected included resource: %+v", doc.Included[0])
		}
	})

	t.Run("unknown movie is not found", func(t *testing.T) {
		repo := repository.NewMemoryRepository(zap.NewNop())
		svc := NewMovieService(repo, zap.NewNop())

		_, err := svc.ListSchedules(ctx, "nope")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
