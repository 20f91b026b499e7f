package usecase

import (
	"context"
	"fmt"
	"sort"

	"cinema-inventory/internal/data/entity"
	"cinema-inventory/internal/data/repository"
	"cinema-inventory/internal/dto/request"
	"cinema-inventory/internal/dto/response"

	"go.uber.org/zap"
)

type SeatService interface {
	// ListRooms returns the rooms assigned to a showing together with
	// their derived free-seat counts, sorted by seatsAvailable descending.
	ListRooms(ctx context.Context, movieID string, scheduleID int64) (*response.Document, error)
	// ListSeats returns the seat views of one room for one showing.
	ListSeats(ctx context.Context, movieID string, scheduleID int64, roomID string, query *request.ListSeatsQuery) (*response.Document, error)
	// GetSeat returns a single seat view.
	GetSeat(ctx context.Context, movieID string, scheduleID int64, roomID string, seatIndex int) (*response.Document, error)
}

type seatService struct {
	repo         *repository.Repository
	availability *AvailabilityResolver
	log          *zap.Logger
}

func NewSeatService(repo *repository.Repository, availability *AvailabilityResolver, log *zap.Logger) SeatService {
	return &seatService{
		repo:         repo,
		availability: availability,
		log:          log.With(zap.String("service", "seat")),
	}
}

func (s *seatService) ListRooms(ctx context.Context, movieID string, scheduleID int64) (*response.Document, error) {
	movie, schedule, err := resolveSchedule(ctx, s.repo, movieID, scheduleID)
	if err != nil {
		return nil, err
	}

	resources := make([]response.RoomResource, 0, len(schedule.Rooms))
	for _, roomID := range schedule.Rooms {
		room, err := s.repo.Room.FindByID(ctx, roomID)
		if err != nil {
			return nil, fmt.Errorf("find room: %w", err)
		}
		if room == nil {
			s.log.Warn("Schedule references unknown room",
				zap.String("movie_id", movie.ID),
				zap.Int64("schedule_id", scheduleID),
				zap.String("room_id", roomID),
			)
			continue
		}

		sold, err := s.repo.Ticket.ListByShowing(ctx, movie.ID, scheduleID, room.ID)
		if err != nil {
			return nil, fmt.Errorf("count sold seats: %w", err)
		}

		seatsAvailable := room.SeatsCount() - len(sold)
		resources = append(resources, response.NewRoomResource(movie.ID, scheduleID, room, seatsAvailable))
	}

	// Descending by free seats; assignment order breaks ties.
	sort.SliceStable(resources, func(i, j int) bool {
		return resources[i].Attributes.SeatsAvailable > resources[j].Attributes.SeatsAvailable
	})

	doc := response.NewDocument(response.RoomsPath(movie.ID, scheduleID), resources)
	return &doc, nil
}

func (s *seatService) ListSeats(ctx context.Context, movieID string, scheduleID int64, roomID string, query *request.ListSeatsQuery) (*response.Document, error) {
	movie, _, room, err := resolveShowing(ctx, s.repo, movieID, scheduleID, roomID)
	if err != nil {
		return nil, err
	}

	tickets, err := s.repo.Ticket.ListByShowing(ctx, movie.ID, scheduleID, room.ID)
	if err != nil {
		return nil, fmt.Errorf("list sold seats: %w", err)
	}

	sold := make(map[int]bool, len(tickets))
	for _, ticket := range tickets {
		sold[ticket.SeatIndex] = true
	}

	seats := make([]entity.Seat, 0, room.SeatsCount())
	for idx := 0; idx < room.SeatsCount(); idx++ {
		position, err := entity.DeriveSeat(room.Rows, room.Columns, idx)
		if err != nil {
			return nil, fmt.Errorf("derive seat %d: %w", idx, err)
		}

		if query.RowFrom != nil && position.Row < *query.RowFrom {
			continue
		}
		if query.RowTo != nil && position.Row > *query.RowTo {
			continue
		}

		seats = append(seats, entity.Seat{
			MovieID:      movie.ID,
			ScheduleID:   scheduleID,
			RoomID:       room.ID,
			SeatIndex:    idx,
			SeatPosition: position,
			Available:    !sold[idx],
		})
	}

	switch query.SortBy {
	case "", request.SeatSortByNumber:
		// Already in seat-number order.
	case request.SeatSortByAvailable:
		sort.SliceStable(seats, func(i, j int) bool {
			return seats[i].Available && !seats[j].Available
		})
	default:
		s.log.Warn("Invalid seat sort, using number order", zap.String("sort", query.SortBy))
	}

	resources := make([]response.SeatResource, len(seats))
	for i, seat := range seats {
		resources[i] = response.NewSeatResource(seat)
	}

	doc := response.NewDocument(response.SeatsPath(movie.ID, scheduleID, room.ID), resources)
	doc.Included = []any{response.NewRoomResource(movie.ID, scheduleID, room, room.SeatsCount()-len(tickets))}
	return &doc, nil
}

func (s *seatService) GetSeat(ctx context.Context, movieID string, scheduleID int64, roomID string, seatIndex int) (*response.Document, error) {
	movie, _, room, err := resolveShowing(ctx, s.repo, movieID, scheduleID, roomID)
	if err != nil {
		return nil, err
	}

	position, err := entity.DeriveSeat(room.Rows, room.Columns, seatIndex)
	if err != nil {
		return nil, fmt.Errorf("seat %d in room %s: %w", seatIndex, room.ID, repository.ErrNotFound)
	}

	available, err := s.availability.IsAvailable(ctx, movie.ID, scheduleID, room.ID, seatIndex)
	if err != nil {
		return nil, err
	}

	seat := entity.Seat{
		MovieID:      movie.ID,
		ScheduleID:   scheduleID,
		RoomID:       room.ID,
		SeatIndex:    seatIndex,
		SeatPosition: position,
		Available:    available,
	}

	doc := response.NewDocument(response.SeatPath(movie.ID, scheduleID, room.ID, seatIndex), response.NewSeatResource(seat))
	return &doc, nil
}
