package repository

import (
	"context"
	"errors"
	"fmt"

	"cinema-inventory/internal/data/entity"
	"cinema-inventory/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// TicketRepository is the ticket ledger. Insert is the single enforcement
// point for the at-most-once invariant: two concurrent inserts for the same
// seat key must yield exactly one success and one ErrSeatTaken.
type TicketRepository interface {
	Insert(ctx context.Context, ticket *entity.Ticket) error
	FindBySeat(ctx context.Context, movieID string, scheduleID int64, roomID string, seatIndex int) (*entity.Ticket, error)
	ListByShowing(ctx context.Context, movieID string, scheduleID int64, roomID string) ([]*entity.Ticket, error)
	ListAll(ctx context.Context) ([]*entity.Ticket, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

// Insert relies on the compound unique index on (movie_id, schedule_id,
// room_id, seat_index); a unique violation maps to ErrSeatTaken. No
// check-then-insert in application code.
func (r *ticketRepository) Insert(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, firstname, lastname, movie_id, schedule_id, room_id, seat_index, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		ticket.ID,
		ticket.Firstname,
		ticket.Lastname,
		ticket.MovieID,
		ticket.ScheduleID,
		ticket.RoomID,
		ticket.SeatIndex,
		ticket.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return ErrSeatTaken
		}
		r.log.Error("Failed to insert ticket",
			zap.Error(err),
			zap.String("ticket_id", ticket.ID),
			zap.String("movie_id", ticket.MovieID),
			zap.Int64("schedule_id", ticket.ScheduleID),
			zap.String("room_id", ticket.RoomID),
			zap.Int("seat_index", ticket.SeatIndex),
		)
		return fmt.Errorf("insert ticket %s: %w", ticket.ID, err)
	}

	return nil
}

func (r *ticketRepository) FindBySeat(ctx context.Context, movieID string, scheduleID int64, roomID string, seatIndex int) (*entity.Ticket, error) {
	query := `
		SELECT id, firstname, lastname, movie_id, schedule_id, room_id, seat_index, created_at
		FROM tickets
		WHERE movie_id = $1 AND schedule_id = $2 AND room_id = $3 AND seat_index = $4
	`

	var ticket entity.Ticket
	err := r.db.QueryRow(ctx, query, movieID, scheduleID, roomID, seatIndex).Scan(
		&ticket.ID,
		&ticket.Firstname,
		&ticket.Lastname,
		&ticket.MovieID,
		&ticket.ScheduleID,
		&ticket.RoomID,
		&ticket.SeatIndex,
		&ticket.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by seat",
			zap.Error(err),
			zap.String("movie_id", movieID),
			zap.Int64("schedule_id", scheduleID),
			zap.String("room_id", roomID),
			zap.Int("seat_index", seatIndex),
		)
		return nil, fmt.Errorf("find ticket by seat: %w", err)
	}

	return &ticket, nil
}

func (r *ticketRepository) ListByShowing(ctx context.Context, movieID string, scheduleID int64, roomID string) ([]*entity.Ticket, error) {
	query := `
		SELECT id, firstname, lastname, movie_id, schedule_id, room_id, seat_index, created_at
		FROM tickets
		WHERE movie_id = $1 AND schedule_id = $2 AND room_id = $3
		ORDER BY seat_index
	`

	rows, err := r.db.Query(ctx, query, movieID, scheduleID, roomID)
	if err != nil {
		r.log.Error("Failed to list tickets by showing",
			zap.Error(err),
			zap.String("movie_id", movieID),
			zap.Int64("schedule_id", scheduleID),
			zap.String("room_id", roomID),
		)
		return nil, fmt.Errorf("list tickets by showing: %w", err)
	}
	defer rows.Close()

	return scanTickets(rows)
}

func (r *ticketRepository) ListAll(ctx context.Context) ([]*entity.Ticket, error) {
	query := `
		SELECT id, firstname, lastname, movie_id, schedule_id, room_id, seat_index, created_at
		FROM tickets
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list tickets", zap.Error(err))
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	return scanTickets(rows)
}

func scanTickets(rows pgx.Rows) ([]*entity.Ticket, error) {
	var tickets []*entity.Ticket
	for rows.Next() {
		var ticket entity.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.Firstname,
			&ticket.Lastname,
			&ticket.MovieID,
			&ticket.ScheduleID,
			&ticket.RoomID,
			&ticket.SeatIndex,
			&ticket.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &ticket)
	}
	return tickets, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
