package request

// Seat listing sort orders.
const (
	SeatSortByNumber    = "number"
	SeatSortByAvailable = "available"
)

// ListSeatsQuery holds the optional query parameters of the seat listing.
type ListSeatsQuery struct {
	// SortBy is "number" (default) or "available". Unknown values fall
	// back to the default.
	SortBy string
	// RowFrom/RowTo bound the derived row, inclusive. Nil means unbounded.
	RowFrom *int
	RowTo   *int
}
