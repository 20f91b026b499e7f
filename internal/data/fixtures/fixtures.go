// Package fixtures seeds a demo catalog on first start: one room and one
// movie screening in it over the next two weeks.
package fixtures

import (
	"context"
	"fmt"
	"time"

	"cinema-inventory/internal/data/entity"
	"cinema-inventory/internal/data/repository"
	"cinema-inventory/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	scheduleDays  = []int{7, 14}
	scheduleHours = []int{6, 9, 15, 18, 21}
)

// Seed loads the demo room and movie. It is a no-op when the catalog
// already has data.
func Seed(ctx context.Context, repo *repository.Repository, log *zap.Logger) error {
	roomCount, err := repo.Room.Count(ctx)
	if err != nil {
		return fmt.Errorf("count rooms: %w", err)
	}
	movieCount, err := repo.Movie.Count(ctx)
	if err != nil {
		return fmt.Errorf("count movies: %w", err)
	}
	if roomCount > 0 || movieCount > 0 {
		log.Debug("Catalog already populated, skipping fixtures")
		return nil
	}

	log.Info("Initializing fixture data")

	now := time.Now()

	room := &entity.Room{
		ID:        uuid.New().String(),
		Title:     "The Only Room on Earth",
		Rows:      20,
		Columns:   20,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if errs := utils.ValidateStruct(room); len(errs) > 0 {
		return fmt.Errorf("invalid fixture room: %s", utils.FormatValidationErrors(errs))
	}
	if err := repo.Room.Insert(ctx, room); err != nil {
		return err
	}

	rooms, err := repo.Room.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("list rooms: %w", err)
	}
	roomIDs := make([]string, len(rooms))
	for i, r := range rooms {
		roomIDs[i] = r.ID
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var schedules []entity.Schedule
	for _, days := range scheduleDays {
		for _, hours := range scheduleHours {
			schedules = append(schedules, entity.Schedule{
				StartAt: midnight.AddDate(0, 0, days).Add(time.Duration(hours) * time.Hour),
				Price:   19.99,
				// The only movie takes every room.
				Rooms: roomIDs,
			})
		}
	}

	movie := &entity.Movie{
		ID:        uuid.New().String(),
		Title:     "The Only Movie on Earth",
		CreatedAt: now,
		UpdatedAt: now,
		Schedules: schedules,
	}
	if errs := utils.ValidateStruct(movie); len(errs) > 0 {
		return fmt.Errorf("invalid fixture movie: %s", utils.FormatValidationErrors(errs))
	}
	if err := repo.Movie.Insert(ctx, movie); err != nil {
		return err
	}

	log.Info("Fixture data loaded",
		zap.String("room_id", room.ID),
		zap.String("movie_id", movie.ID),
		zap.Int("schedules", len(schedules)),
	)
	return nil
}
