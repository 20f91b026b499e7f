package response

import (
	"strconv"

	"cinema-inventory/internal/data/entity"
)

type SeatAttributes struct {
	Number    int  `json:"number"`
	Row       int  `json:"row"`
	Column    int  `json:"column"`
	Available bool `json:"available"`
}

type SeatResource struct {
	Type          string                  `json:"type"`
	ID            string                  `json:"id"`
	Attributes    SeatAttributes          `json:"attributes"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
	Links         Links                   `json:"links"`
}

func NewSeatResource(seat entity.Seat) SeatResource {
	return SeatResource{
		Type: "seats",
		ID:   strconv.Itoa(seat.SeatIndex),
		Attributes: SeatAttributes{
			Number:    seat.Number,
			Row:       seat.Row,
			Column:    seat.Column,
			Available: seat.Available,
		},
		Relationships: map[string]Relationship{
			"room": {
				Links: &Links{Self: RoomPath(seat.MovieID, seat.ScheduleID, seat.RoomID)},
				Data:  &ResourceIdentifier{Type: "rooms", ID: seat.RoomID},
			},
		},
		Links: Links{Self: SeatPath(seat.MovieID, seat.ScheduleID, seat.RoomID, seat.SeatIndex)},
	}
}
