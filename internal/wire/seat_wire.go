package wire

import (
	"cinema-inventory/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSeat(r chi.Router, seatHandler *adaptor.SeatHandler) {
	r.Route("/movies/{movieId}/schedules/{scheduleId}/rooms", func(r chi.Router) {
		// GET /rest/v1/movies/{movieId}/schedules/{scheduleId}/rooms
		r.Get("/", seatHandler.GetRooms)

		// GET .../rooms/{roomId}/seats (query: sort, rowFrom, rowTo)
		r.Get("/{roomId}/seats", seatHandler.GetSeats)

		// GET .../rooms/{roomId}/seats/{seatIndex}
		r.Get("/{roomId}/seats/{seatIndex}", seatHandler.GetSeat)
	})
}
