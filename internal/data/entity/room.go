package entity

import "time"

// Room is a screening room with a rectangular, row-major seat grid.
// Rooms are reference data: created once, never updated here.
type Room struct {
	ID        string
	Title     string `validate:"required,min=3,max=128"`
	Rows      int    `validate:"required,gt=0"`
	Columns   int    `validate:"required,gt=0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SeatsCount returns the total number of seats in the room.
func (r *Room) SeatsCount() int {
	return r.Rows * r.Columns
}
