package entity

import "fmt"

// SeatPosition locates a seat inside a room's row-major grid. Number is
// 1-based, as are Row and Column; the seat index they derive from is 0-based.
type SeatPosition struct {
	Number int
	Row    int
	Column int
}

// DeriveSeat maps a flat 0-based seat index to its grid position. It is
// pure and total for 0 <= seatIndex < rows*columns.
func DeriveSeat(rows, columns, seatIndex int) (SeatPosition, error) {
	if rows <= 0 || columns <= 0 {
		return SeatPosition{}, fmt.Errorf("invalid room grid %dx%d", rows, columns)
	}
	if seatIndex < 0 || seatIndex >= rows*columns {
		return SeatPosition{}, fmt.Errorf("seat index %d out of range [0, %d)", seatIndex, rows*columns)
	}

	return SeatPosition{
		Number: seatIndex + 1,
		Row:    seatIndex/columns + 1,
		Column: seatIndex%columns + 1,
	}, nil
}

// Seat is a derived, computed-on-read view of one physical seat for one
// screening. It is never stored; availability comes from the ticket ledger
// at read time.
type Seat struct {
	MovieID    string
	ScheduleID int64
	RoomID     string
	SeatIndex  int
	SeatPosition
	Available bool
}
