// Package repository defines the storage contracts for the catalog and the
// ticket ledger, together with the sentinel errors higher layers use to
// tell failure modes apart. Two backends implement the contracts: a
// Postgres one (pgx) and an in-memory one used as the default store and by
// the tests.
package repository

import "errors"

// ErrNotFound is returned when a looked-up record does not exist.
// Handlers translate it into an HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrSeatTaken is returned by TicketRepository.Insert when a ticket for
// the same (movie, schedule, room, seat) key already exists. It is an
// internal signal; the booking service always converts it to a conflict
// before it reaches a caller.
var ErrSeatTaken = errors.New("seat already taken")
