package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-inventory/internal/data/entity"
	"cinema-inventory/internal/data/repository"
	"cinema-inventory/internal/dto/request"
	"cinema-inventory/internal/dto/response"
	"cinema-inventory/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Book validates a purchase end-to-end and commits the ticket through
	// the ledger's atomic insert.
	Book(ctx context.Context, movieID string, scheduleID int64, roomID string, seatIndex int, req *request.BookTicketRequest) (*response.Document, error)
	// ListTickets returns every sold ticket (administrative listing).
	ListTickets(ctx context.Context) (*response.Document, error)
}

type bookingService struct {
	repo         *repository.Repository
	availability *AvailabilityResolver
	log          *zap.Logger
}

func NewBookingService(repo *repository.Repository, availability *AvailabilityResolver, log *zap.Logger) BookingService {
	return &bookingService{
		repo:         repo,
		availability: availability,
		log:          log.With(zap.String("service", "booking")),
	}
}

// Book checks, in this order: movie exists, schedule exists, room assigned
// to the schedule, room exists, seat index in range, seat free, customer
// info valid. The order is part of the contract: it decides which error is
// reported when several conditions fail at once. The availability check is
// advisory only; the ledger insert is what actually prevents double
// selling, so a lost insert race still comes back as a conflict.
func (s *bookingService) Book(ctx context.Context, movieID string, scheduleID int64, roomID string, seatIndex int, req *request.BookTicketRequest) (*response.Document, error) {
	movie, _, room, err := resolveShowing(ctx, s.repo, movieID, scheduleID, roomID)
	if err != nil {
		return nil, err
	}

	if seatIndex < 0 || seatIndex >= room.SeatsCount() {
		return nil, fmt.Errorf("seat %d in room %s: %w", seatIndex, room.ID, repository.ErrNotFound)
	}

	available, err := s.availability.IsAvailable(ctx, movie.ID, scheduleID, room.ID, seatIndex)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, fmt.Errorf("seat %d of room %s: %w", seatIndex, room.ID, ErrSeatUnavailable)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	ticket := &entity.Ticket{
		ID:         uuid.New().String(),
		Firstname:  req.Firstname,
		Lastname:   req.Lastname,
		MovieID:    movie.ID,
		ScheduleID: scheduleID,
		RoomID:     room.ID,
		SeatIndex:  seatIndex,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Ticket.Insert(ctx, ticket); err != nil {
		if errors.Is(err, repository.ErrSeatTaken) {
			// Lost the insert race: another booking committed this seat
			// between the availability check and our insert.
			s.log.Info("Booking lost insert race",
				zap.String("movie_id", movie.ID),
				zap.Int64("schedule_id", scheduleID),
				zap.String("room_id", room.ID),
				zap.Int("seat_index", seatIndex),
			)
			return nil, fmt.Errorf("seat %d of room %s already sold: %w", seatIndex, room.ID, ErrSeatUnavailable)
		}
		s.log.Error("Failed to insert ticket",
			zap.Error(err),
			zap.String("movie_id", movie.ID),
			zap.Int64("schedule_id", scheduleID),
			zap.String("room_id", room.ID),
			zap.Int("seat_index", seatIndex),
		)
		return nil, fmt.Errorf("insert ticket: %w", err)
	}

	s.log.Info("Ticket booked",
		zap.String("ticket_id", ticket.ID),
		zap.String("movie_id", movie.ID),
		zap.Int64("schedule_id", scheduleID),
		zap.String("room_id", room.ID),
		zap.Int("seat_index", seatIndex),
	)

	resource := response.NewTicketResource(ticket)
	doc := response.NewDocument(resource.Links.Self, resource)
	return &doc, nil
}

func (s *bookingService) ListTickets(ctx context.Context) (*response.Document, error) {
	tickets, err := s.repo.Ticket.ListAll(ctx)
	if err != nil {
		s.log.Error("Failed to list tickets", zap.Error(err))
		return nil, fmt.Errorf("list tickets: %w", err)
	}

	resources := make([]response.TicketResource, len(tickets))
	for i, ticket := range tickets {
		resources[i] = response.NewTicketResource(ticket)
	}

	doc := response.NewDocument(response.TicketsPath(), resources)
	return &doc, nil
}
