package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cinema-inventory/internal/data/repository"
	"cinema-inventory/internal/dto/response"

	"go.uber.org/zap"
)

type MovieService interface {
	// ListMovies returns all movies that have at least one schedule,
	// sorted ascending by their earliest schedule start.
	ListMovies(ctx context.Context) (*response.Document, error)
	// ListSchedules returns the movie's schedules sorted ascending by
	// start time.
	ListSchedules(ctx context.Context, movieID string) (*response.Document, error)
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListMovies(ctx context.Context) (*response.Document, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}

	type scheduled struct {
		resource response.MovieResource
		earliest time.Time
	}

	listed := make([]scheduled, 0, len(movies))
	for _, movie := range movies {
		// Movies without schedules are not listed.
		earliest, ok := movie.MostRecentScheduleAt()
		if !ok {
			continue
		}
		listed = append(listed, scheduled{
			resource: response.NewMovieResource(movie),
			earliest: earliest,
		})
	}

	sort.SliceStable(listed, func(i, j int) bool {
		return listed[i].earliest.Before(listed[j].earliest)
	})

	resources := make([]response.MovieResource, len(listed))
	for i, entry := range listed {
		resources[i] = entry.resource
	}

	s.log.Debug("Movies listed", zap.Int("count", len(resources)))

	doc := response.NewDocument(response.MoviesPath(), resources)
	return &doc, nil
}

func (s *movieService) ListSchedules(ctx context.Context, movieID string) (*response.Document, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to find movie",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("find movie: %w", err)
	}
	if movie == nil {
		return nil, fmt.Errorf("movie %s: %w", movieID, repository.ErrNotFound)
	}

	sorted := movie.SchedulesByStartAt()
	resources := make([]response.ScheduleResource, len(sorted))
	for i, schedule := range sorted {
		resources[i] = response.NewScheduleResource(movie.ID, schedule)
	}

	doc := response.NewDocument(response.SchedulesPath(movie.ID), resources)
	doc.Included = []any{response.NewMovieResource(movie)}
	return &doc, nil
}
