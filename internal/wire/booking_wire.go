package wire

import (
	"cinema-inventory/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST .../seats/{seatIndex}/tickets - book one seat
	r.Post("/movies/{movieId}/schedules/{scheduleId}/rooms/{roomId}/seats/{seatIndex}/tickets", bookingHandler.BookSeat)

	// GET /rest/v1/tickets - administrative listing of sold tickets
	r.Get("/tickets", bookingHandler.GetTickets)
}
