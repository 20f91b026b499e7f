package repository

import (
	"cinema-inventory/pkg/database"

	"go.uber.org/zap"
)

// Repository groups the data access for all aggregates. Movie and Room are
// read-mostly reference data; Ticket is the concurrency-critical ledger.
type Repository struct {
	Movie  MovieRepository
	Room   RoomRepository
	Ticket TicketRepository
}

// NewPostgresRepository wires the pgx-backed implementations.
func NewPostgresRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:  NewMovieRepository(db, log),
		Room:   NewRoomRepository(db, log),
		Ticket: NewTicketRepository(db, log),
	}
}

// NewMemoryRepository wires the in-memory implementations. This is the
// default store and mirrors the embedded database the service originally
// ran on.
func NewMemoryRepository(log *zap.Logger) *Repository {
	return &Repository{
		Movie:  NewMemoryMovieRepository(log),
		Room:   NewMemoryRoomRepository(log),
		Ticket: NewMemoryTicketRepository(log),
	}
}
