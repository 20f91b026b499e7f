package adaptor

import (
	"net/http"

	"cinema-inventory/internal/usecase"
	"cinema-inventory/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /rest/v1/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.ListMovies(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list movies")
		return
	}

	utils.WriteJSON(w, http.StatusOK, doc)
}

// GetSchedules handles GET /rest/v1/movies/{movieId}/schedules
func (h *MovieHandler) GetSchedules(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieId")

	doc, err := h.service.ListSchedules(r.Context(), movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "list schedules")
		return
	}

	utils.WriteJSON(w, http.StatusOK, doc)
}
