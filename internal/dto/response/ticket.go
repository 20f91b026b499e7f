package response

import (
	"strconv"
	"time"

	"cinema-inventory/internal/data/entity"
)

type TicketAttributes struct {
	CreatedAt time.Time `json:"createdAt"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
}

type TicketResource struct {
	Type          string                  `json:"type"`
	ID            string                  `json:"id"`
	Attributes    TicketAttributes        `json:"attributes"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
	Links         Links                   `json:"links"`
}

func NewTicketResource(ticket *entity.Ticket) TicketResource {
	return TicketResource{
		Type: "tickets",
		ID:   ticket.ID,
		Attributes: TicketAttributes{
			CreatedAt: ticket.CreatedAt,
			Firstname: ticket.Firstname,
			Lastname:  ticket.Lastname,
		},
		Relationships: map[string]Relationship{
			"movie": {
				Links: &Links{Self: MoviePath(ticket.MovieID)},
				Data:  &ResourceIdentifier{Type: "movies", ID: ticket.MovieID},
			},
			"room": {
				Links: &Links{Self: RoomPath(ticket.MovieID, ticket.ScheduleID, ticket.RoomID)},
				Data:  &ResourceIdentifier{Type: "rooms", ID: ticket.RoomID},
			},
			"seat": {
				Links: &Links{Self: SeatPath(ticket.MovieID, ticket.ScheduleID, ticket.RoomID, ticket.SeatIndex)},
				Data:  &ResourceIdentifier{Type: "seats", ID: strconv.Itoa(ticket.SeatIndex)},
			},
		},
		Links: Links{Self: TicketsPath() + "/" + ticket.ID},
	}
}
