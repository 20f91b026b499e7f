package wire

import (
	"cinema-inventory/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /rest/v1/movies - movies with at least one schedule
	r.Get("/movies", movieHandler.GetMovies)

	// GET /rest/v1/movies/{movieId}/schedules - schedules of one movie
	r.Get("/movies/{movieId}/schedules", movieHandler.GetSchedules)
}
