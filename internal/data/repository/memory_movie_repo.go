package repository

import (
	"context"
	"fmt"
	"sync"

	"cinema-inventory/internal/data/entity"

	"go.uber.org/zap"
)

type memoryMovieRepository struct {
	mu     sync.RWMutex
	movies map[string]*entity.Movie
	order  []string
	log    *zap.Logger
}

func NewMemoryMovieRepository(log *zap.Logger) MovieRepository {
	return &memoryMovieRepository{
		movies: make(map[string]*entity.Movie),
		log:    log.With(zap.String("repository", "movie")),
	}
}

func (r *memoryMovieRepository) Insert(ctx context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.movies[movie.ID]; ok {
		return fmt.Errorf("insert movie %s: duplicate id", movie.ID)
	}

	r.movies[movie.ID] = movie
	r.order = append(r.order, movie.ID)
	return nil
}

func (r *memoryMovieRepository) FindByID(ctx context.Context, id string) (*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie, ok := r.movies[id]
	if !ok {
		return nil, nil
	}
	return movie, nil
}

func (r *memoryMovieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := make([]*entity.Movie, 0, len(r.order))
	for _, id := range r.order {
		movies = append(movies, r.movies[id])
	}
	return movies, nil
}

func (r *memoryMovieRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.movies)), nil
}
