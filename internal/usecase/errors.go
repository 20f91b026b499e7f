package usecase

import "errors"

// ErrSeatUnavailable is returned when the requested seat already has a
// ticket, either at the advisory availability check or because the ledger
// insert lost the race. Handlers translate it into an HTTP 409.
var ErrSeatUnavailable = errors.New("seat not available")

// ErrInvalidInput is returned for a malformed booking payload. Handlers
// translate it into an HTTP 400.
var ErrInvalidInput = errors.New("invalid input")
