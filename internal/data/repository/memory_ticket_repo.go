package repository

import (
	"context"
	"sync"

	"cinema-inventory/internal/data/entity"

	"go.uber.org/zap"
)

type ticketKey struct {
	movieID    string
	scheduleID int64
	roomID     string
	seatIndex  int
}

type memoryTicketRepository struct {
	mu    sync.RWMutex
	byKey map[ticketKey]*entity.Ticket
	order []*entity.Ticket
	log   *zap.Logger
}

func NewMemoryTicketRepository(log *zap.Logger) TicketRepository {
	return &memoryTicketRepository{
		byKey: make(map[ticketKey]*entity.Ticket),
		log:   log.With(zap.String("repository", "ticket")),
	}
}

// Insert holds the lock across the existence check and the write, so the
// check-and-insert is atomic with respect to concurrent callers.
func (r *memoryTicketRepository) Insert(ctx context.Context, ticket *entity.Ticket) error {
	key := ticketKey{
		movieID:    ticket.MovieID,
		scheduleID: ticket.ScheduleID,
		roomID:     ticket.RoomID,
		seatIndex:  ticket.SeatIndex,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byKey[key]; ok {
		return ErrSeatTaken
	}

	r.byKey[key] = ticket
	r.order = append(r.order, ticket)
	return nil
}

func (r *memoryTicketRepository) FindBySeat(ctx context.Context, movieID string, scheduleID int64, roomID string, seatIndex int) (*entity.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ticket, ok := r.byKey[ticketKey{movieID, scheduleID, roomID, seatIndex}]
	if !ok {
		return nil, nil
	}
	return ticket, nil
}

func (r *memoryTicketRepository) ListByShowing(ctx context.Context, movieID string, scheduleID int64, roomID string) ([]*entity.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tickets []*entity.Ticket
	for _, ticket := range r.order {
		if ticket.MovieID == movieID && ticket.ScheduleID == scheduleID && ticket.RoomID == roomID {
			tickets = append(tickets, ticket)
		}
	}
	return tickets, nil
}

func (r *memoryTicketRepository) ListAll(ctx context.Context) ([]*entity.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tickets := make([]*entity.Ticket, len(r.order))
	copy(tickets, r.order)
	return tickets, nil
}
