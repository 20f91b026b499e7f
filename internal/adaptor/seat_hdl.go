package adaptor

import (
	"net/http"
	"strconv"

	"cinema-inventory/internal/dto/request"
	"cinema-inventory/internal/usecase"
	"cinema-inventory/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SeatHandler struct {
	service usecase.SeatService
	log     *zap.Logger
}

func NewSeatHandler(service usecase.SeatService, log *zap.Logger) *SeatHandler {
	return &SeatHandler{
		service: service,
		log:     log.With(zap.String("handler", "seat")),
	}
}

// GetRooms handles GET /rest/v1/movies/{movieId}/schedules/{scheduleId}/rooms
func (h *SeatHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieId")
	scheduleID, ok := parseScheduleID(w, r)
	if !ok {
		return
	}

	doc, err := h.service.ListRooms(r.Context(), movieID, scheduleID)
	if err != nil {
		handleServiceError(w, h.log, err, "list rooms")
		return
	}

	utils.WriteJSON(w, http.StatusOK, doc)
}

// GetSeats handles GET /rest/v1/movies/{movieId}/schedules/{scheduleId}/rooms/{roomId}/seats
func (h *SeatHandler) GetSeats(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieId")
	roomID := chi.URLParam(r, "roomId")
	scheduleID, ok := parseScheduleID(w, r)
	if !ok {
		return
	}

	query := &request.ListSeatsQuery{SortBy: r.URL.Query().Get("sort")}
	query.RowFrom = h.parseRowBound(r, "rowFrom")
	query.RowTo = h.parseRowBound(r, "rowTo")

	doc, err := h.service.ListSeats(r.Context(), movieID, scheduleID, roomID, query)
	if err != nil {
		handleServiceError(w, h.log, err, "list seats")
		return
	}

	utils.WriteJSON(w, http.StatusOK, doc)
}

// GetSeat handles GET /rest/v1/movies/{movieId}/schedules/{scheduleId}/rooms/{roomId}/seats/{seatIndex}
func (h *SeatHandler) GetSeat(w http.ResponseWriter, r *http.Request) {
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

	doc, err := h.service.GetSeat(r.Context(), movieID, scheduleID, roomID, seatIndex)
	if err != nil {
		handleServiceError(w, h.log, err, "get seat")
		return
	}

	utils.WriteJSON(w, http.StatusOK, doc)
}

// parseRowBound reads an optional row filter bound; malformed values are
// ignored rather than rejected.
func (h *SeatHandler) parseRowBound(r *http.Request, name string) *int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		h.log.Warn("Invalid row bound, ignoring", zap.String("param", name), zap.String("value", raw))
		return nil
	}
	return &value
}

// parseScheduleID parses the numeric schedule id path segment. A
// non-numeric segment can never match a schedule, so it is a 404.
func parseScheduleID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "scheduleId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		utils.ResponseNotFound(w, "schedule "+raw+" not found")
		return 0, false
	}
	return id, true
}

// parseSeatIndex parses the seat index path segment, 404 on a non-number.
func parseSeatIndex(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "seatIndex")
	idx, err := strconv.Atoi(raw)
	if err != nil {
		utils.ResponseNotFound(w, "seat "+raw+" not found")
		return 0, false
	}
	return idx, true
}
