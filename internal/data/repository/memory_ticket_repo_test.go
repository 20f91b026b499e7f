package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"cinema-inventory/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTicket(movieID string, scheduleID int64, roomID string, seatIndex int) *entity.Ticket {
	return &entity.Ticket{
		ID:         uuid.New().String(),
		Firstname:  "Ada",
		Lastname:   "Lovelace",
		MovieID:    movieID,
		ScheduleID: scheduleID,
		RoomID:     roomID,
		SeatIndex:  seatIndex,
	}
}

func TestMemoryTicketRepository_Insert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("rejects a second ticket for the same seat", func(t *testing.T) {
		repo := NewMemoryTicketRepository(zap.NewNop())

		if err := repo.Insert(ctx, newTicket("movie-1", 1000, "room-1", 5)); err != nil {
			t.Fatalf("first insert: %v", err)
		}

		err := repo.Insert(ctx, newTicket("movie-1", 1000, "room-1", 5))
		if !errors.Is(err, ErrSeatTaken) {
			t.Fatalf("expected ErrSeatTaken, got %v", err)
		}
	})

	t.Run("same seat index in another showing is a different key", func(t *testing.T) {
		repo := NewMemoryTicketRepository(zap.NewNop())

		if err := repo.Insert(ctx, newTicket("movie-1", 1000, "room-1", 5)); err != nil {
			t.Fatalf("insert: %v", err)
		}
		if err := repo.Insert(ctx, newTicket("movie-1", 2000, "room-1", 5)); err != nil {
			t.Fatalf("insert other schedule: %v", err)
		}
		if err := repo.Insert(ctx, newTicket("movie-1", 1000, "room-2", 5)); err != nil {
			t.Fatalf("insert other room: %v", err)
		}
		if err := repo.Insert(ctx, newTicket("movie-2", 1000, "room-1", 5)); err != nil {
			t.Fatalf("insert other movie: %v", err)
		}
	})

	t.Run("exactly one concurrent insert wins", func(t *testing.T) {
		repo := NewMemoryTicketRepository(zap.NewNop())

		const writers = 64

		var wg sync.WaitGroup
		errs := make([]error, writers)

		start := make(chan struct{})
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				errs[i] = repo.Insert(ctx, newTicket("movie-1", 1000, "room-1", 7))
			}(i)
		}
		close(start)
		wg.Wait()

		var won, lost int
		for _, err := range errs {
			switch {
			case err == nil:
				won++
			case errors.Is(err, ErrSeatTaken):
				lost++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}

		if won != 1 {
			t.Fatalf("expected exactly 1 winner, got %d", won)
		}
		if lost != writers-1 {
			t.Fatalf("expected %d losers, got %d", writers-1, lost)
		}

		tickets, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("list all: %v", err)
		}
		if len(tickets) != 1 {
			t.Fatalf("expected 1 ticket in the ledger, got %d", len(tickets))
		}
	})
}

func TestMemoryTicketRepository_FindBySeat(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryTicketRepository(zap.NewNop())

	sold := newTicket("movie-1", 1000, "room-1", 5)
	if err := repo.Insert(ctx, sold); err != nil {
		t.Fatalf("insert: %v", err)
	}

	ticket, err := repo.FindBySeat(ctx, "movie-1", 1000, "room-1", 5)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if ticket == nil || ticket.ID != sold.ID {
		t.Fatalf("expected ticket %s, got %+v", sold.ID, ticket)
	}

	ticket, err = repo.FindBySeat(ctx, "movie-1", 1000, "room-1", 6)
	if err != nil {
		t.Fatalf("find free seat: %v", err)
	}
	if ticket != nil {
		t.Fatalf("expected nil for a free seat, got %+v", ticket)
	}
}

func TestMemoryTicketRepository_ListByShowing(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewMemoryTicketRepository(zap.NewNop())

	for _, ticket := range []*entity.Ticket{
		newTicket("movie-1", 1000, "room-1", 0),
		newTicket("movie-1", 1000, "room-1", 3),
		newTicket("movie-1", 2000, "room-1", 0),
		newTicket("movie-2", 1000, "room-1", 0),
		newTicket("movie-1", 1000, "room-2", 0),
	} {
		if err := repo.Insert(ctx, ticket); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	tickets, err := repo.ListByShowing(ctx, "movie-1", 1000, "room-1")
	if err != nil {
		t.Fatalf("list by showing: %v", err)
	}
	if len(tickets) != 2 {
		t.Fatalf("expected 2 tickets for the showing, got %d", len(tickets))
	}
	for _, ticket := range tickets {
		if ticket.MovieID != "movie-1" || ticket.ScheduleID != 1000 || ticket.RoomID != "room-1" {
			t.Fatalf("ticket outside the showing: %+v", ticket)
		}
	}
}
