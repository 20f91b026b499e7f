package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-inventory/internal/dto/request"
	"cinema-inventory/internal/usecase"
	"cinema-inventory/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// BookSeat handles POST /rest/v1/movies/{movieId}/schedules/{scheduleId}/rooms/{roomId}/seats/{seatIndex}/tickets
func (h *BookingHandler) BookSeat(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieId")
	roomID := chi.URLParam(r, "roomId")
	scheduleID, ok := parseScheduleID(w, r)
	if !ok {
		return
	}
	seatIndex, ok := parseSeatIndex(w, r)
	if !ok {
		return
	}

	var body request.BookTicketDocument
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	doc, err := h.service.Book(r.Context(), movieID, scheduleID, roomID, seatIndex, &body.Data.Attributes)
	if err != nil {
		handleServiceError(w, h.log, err, "book seat")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, doc)
}

// GetTickets handles GET /rest/v1/tickets
func (h *BookingHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.ListTickets(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list tickets")
		return
	}

	utils.WriteJSON(w, http.StatusOK, doc)
}
