package response

import (
	"time"

	"cinema-inventory/internal/data/entity"
)

type RoomAttributes struct {
	Title      string    `json:"title"`
	Rows       int       `json:"rows"`
	Columns    int       `json:"columns"`
	SeatsCount int       `json:"seatsCount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	// SeatsAvailable is derived per showing: seatsCount minus tickets sold.
	SeatsAvailable int `json:"seatsAvailable"`
}

type RoomResource struct {
	Type          string                  `json:"type"`
	ID            string                  `json:"id"`
	Attributes    RoomAttributes          `json:"attributes"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
	Links         Links                   `json:"links"`
}

// NewRoomResource projects a room in the context of one showing, carrying
// the derived seatsAvailable count.
func NewRoomResource(movieID string, scheduleID int64, room *entity.Room, seatsAvailable int) RoomResource {
	return RoomResource{
		Type: "rooms",
		ID:   room.ID,
		Attributes: RoomAttributes{
			Title:          room.Title,
			Rows:           room.Rows,
			Columns:        room.Columns,
			SeatsCount:     room.SeatsCount(),
			CreatedAt:      room.CreatedAt,
			UpdatedAt:      room.UpdatedAt,
			SeatsAvailable: seatsAvailable,
		},
		Relationships: map[string]Relationship{
			"schedule": {
				Links: &Links{Self: SchedulePath(movieID, scheduleID)},
				Data:  &ResourceIdentifier{Type: "schedules", ID: ScheduleIDString(scheduleID)},
			},
			"seats": {
				Links: &Links{Self: SeatsPath(movieID, scheduleID, room.ID)},
			},
		},
		Links: Links{Self: RoomPath(movieID, scheduleID, room.ID)},
	}
}
