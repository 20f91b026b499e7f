package usecase

import (
	"context"
	"fmt"

	"cinema-inventory/internal/data/repository"
)

// AvailabilityResolver answers whether a seat is free at the moment of the
// read. The answer is advisory: it is not a reservation, and callers must
// not treat it as a guarantee through to a later booking. The ledger's
// atomic insert is the sole enforcement point.
type AvailabilityResolver struct {
	tickets repository.TicketRepository
}

func NewAvailabilityResolver(tickets repository.TicketRepository) *AvailabilityResolver {
	return &AvailabilityResolver{tickets: tickets}
}

// IsAvailable reports whether no ticket exists for the exact seat key.
func (a *AvailabilityResolver) IsAvailable(ctx context.Context, movieID string, scheduleID int64, roomID string, seatIndex int) (bool, error) {
	ticket, err := a.tickets.FindBySeat(ctx, movieID, scheduleID, roomID, seatIndex)
	if err != nil {
		return false, fmt.Errorf("check seat availability: %w", err)
	}
	return ticket == nil, nil
}
