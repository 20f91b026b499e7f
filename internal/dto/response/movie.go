package response

import (
	"time"

	"cinema-inventory/internal/data/entity"
)

type MovieAttributes struct {
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// MostRecentScheduleAt is the earliest schedule start; null when the
	// movie has no schedules. The name is kept for API compatibility.
	MostRecentScheduleAt *time.Time `json:"mostRecentScheduleAt"`
}

type MovieResource struct {
	Type          string                  `json:"type"`
	ID            string                  `json:"id"`
	Attributes    MovieAttributes         `json:"attributes"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
	Links         Links                   `json:"links"`
}

func NewMovieResource(movie *entity.Movie) MovieResource {
	var mostRecent *time.Time
	if at, ok := movie.MostRecentScheduleAt(); ok {
		mostRecent = &at
	}

	return MovieResource{
		Type: "movies",
		ID:   movie.ID,
		Attributes: MovieAttributes{
			Title:                movie.Title,
			CreatedAt:            movie.CreatedAt,
			UpdatedAt:            movie.UpdatedAt,
			MostRecentScheduleAt: mostRecent,
		},
		Relationships: map[string]Relationship{
			"schedules": {
				Links: &Links{Self: SchedulesPath(movie.ID)},
			},
		},
		Links: Links{Self: MoviePath(movie.ID)},
	}
}
