package usecase

import (
	"cinema-inventory/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Movie   MovieService
	Seat    SeatService
	Booking BookingService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	availability := NewAvailabilityResolver(repo.Ticket)

	return &Service{
		Movie:   NewMovieService(repo, log),
		Seat:    NewSeatService(repo, availability, log),
		Booking: NewBookingService(repo, availability, log),
	}
}
