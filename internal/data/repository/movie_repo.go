package repository

import (
	"context"
	"fmt"

	"cinema-inventory/internal/data/entity"
	"cinema-inventory/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Insert(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id string) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	Count(ctx context.Context) (int64, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Insert(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, title, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, movie.ID, movie.Title, movie.CreatedAt, movie.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to insert movie",
			zap.Error(err),
			zap.String("movie_id", movie.ID),
		)
		return fmt.Errorf("insert movie %s: %w", movie.ID, err)
	}

	scheduleQuery := `
		INSERT INTO movie_schedules (movie_id, position, start_at, price, rooms)
		VALUES ($1, $2, $3, $4, $5)
	`

	for i, schedule := range movie.Schedules {
		_, err := r.db.Exec(ctx, scheduleQuery, movie.ID, i, schedule.StartAt, schedule.Price, schedule.Rooms)
		if err != nil {
			r.log.Error("Failed to insert movie schedule",
				zap.Error(err),
				zap.String("movie_id", movie.ID),
				zap.Int("position", i),
			)
			return fmt.Errorf("insert schedule %d for movie %s: %w", i, movie.ID, err)
		}
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id string) (*entity.Movie, error) {
	query := `
		SELECT id, title, created_at, updated_at
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id, err)
	}

	schedules, err := r.loadSchedules(ctx, id)
	if err != nil {
		return nil, err
	}
	movie.Schedules = schedules

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, created_at, updated_at
		FROM movies
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find movies", zap.Error(err))
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	byID := make(map[string]*entity.Movie)
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(&movie.ID, &movie.Title, &movie.CreatedAt, &movie.UpdatedAt)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, &movie)
		byID[movie.ID] = &movie
	}

	scheduleQuery := `
		SELECT movie_id, start_at, price, rooms
		FROM movie_schedules
		ORDER BY movie_id, position
	`

	scheduleRows, err := r.db.Query(ctx, scheduleQuery)
	if err != nil {
		r.log.Error("Failed to find movie schedules", zap.Error(err))
		return nil, fmt.Errorf("find movie schedules: %w", err)
	}
	defer scheduleRows.Close()

	for scheduleRows.Next() {
		var movieID string
		var schedule entity.Schedule
		err := scheduleRows.Scan(&movieID, &schedule.StartAt, &schedule.Price, &schedule.Rooms)
		if err != nil {
			r.log.Error("Failed to scan schedule row", zap.Error(err))
			return nil, fmt.Errorf("scan schedule row: %w", err)
		}
		if movie, ok := byID[movieID]; ok {
			movie.Schedules = append(movie.Schedules, schedule)
		}
	}

	return movies, nil
}

func (r *movieRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM movies`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("count movies: %w", err)
	}

	return count, nil
}

func (r *movieRepository) loadSchedules(ctx context.Context, movieID string) ([]entity.Schedule, error) {
	query := `
		SELECT start_at, price, rooms
		FROM movie_schedules
		WHERE movie_id = $1
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to load schedules",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, fmt.Errorf("load schedules for movie %s: %w", movieID, err)
	}
	defer rows.Close()

	var schedules []entity.Schedule
	for rows.Next() {
		var schedule entity.Schedule
		if err := rows.Scan(&schedule.StartAt, &schedule.Price, &schedule.Rooms); err != nil {
			r.log.Error("Failed to scan schedule row", zap.Error(err))
			return nil, fmt.Errorf("scan schedule row: %w", err)
		}
		schedules = append(schedules, schedule)
	}

	return schedules, nil
}
