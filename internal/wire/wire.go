// Package wire assembles the application: services, handlers, router.
package wire

import (
	"net/http"

	"cinema-inventory/internal/adaptor"
	"cinema-inventory/internal/data/repository"
	"cinema-inventory/internal/usecase"
	"cinema-inventory/pkg/middleware"
	"cinema-inventory/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "resource not found")
	})
	// Known paths answer 405 for verbs they do not implement.
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseMethodNotAllowed(w)
	})

	r.Route("/rest/v1", func(r chi.Router) {
		wireMovie(r, handler.Movie)
		wireSeat(r, handler.Seat)
		wireBooking(r, handler.Booking)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
