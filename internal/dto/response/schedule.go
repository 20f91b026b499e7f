package response

import (
	"time"

	"cinema-inventory/internal/data/entity"
)

type ScheduleAttributes struct {
	StartAt time.Time `json:"startAt"`
	Price   float64   `json:"price"`
}

type ScheduleResource struct {
	Type          string                  `json:"type"`
	ID            string                  `json:"id"`
	Attributes    ScheduleAttributes      `json:"attributes"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
	Links         Links                   `json:"links"`
}

func NewScheduleResource(movieID string, schedule entity.Schedule) ScheduleResource {
	id := schedule.ID()

	return ScheduleResource{
		Type: "schedules",
		ID:   ScheduleIDString(id),
		Attributes: ScheduleAttributes{
			StartAt: schedule.StartAt,
			Price:   schedule.Price,
		},
		Relationships: map[string]Relationship{
			"movie": {
				Links: &Links{Self: MoviePath(movieID)},
				Data:  &ResourceIdentifier{Type: "movies", ID: movieID},
			},
			"rooms": {
				Links: &Links{Self: RoomsPath(movieID, id)},
			},
		},
		Links: Links{Self: SchedulePath(movieID, id)},
	}
}
