package entity

import "time"

// Ticket is the durable record that one seat for one screening has been
// sold. At most one ticket may exist per (MovieID, ScheduleID, RoomID,
// SeatIndex); the ledger enforces that on insert. Tickets are immutable
// once created.
type Ticket struct {
	ID         string
	Firstname  string `validate:"required,min=3,max=128"`
	Lastname   string `validate:"required,min=3,max=128"`
	MovieID    string `validate:"required"`
	ScheduleID int64
	RoomID     string `validate:"required"`
	SeatIndex  int    `validate:"gte=0"`
	CreatedAt  time.Time
}
