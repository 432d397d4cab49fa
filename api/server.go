package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	eventservice "github.com/bet-buddys/betbuddys-backend/app/modules/event/application"
	leaderboardservice "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/application"
	predictionservice "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/application"
	wagerservice "github.com/bet-buddys/betbuddys-backend/app/modules/wager/application"
	"github.com/bet-buddys/betbuddys-backend/config"
)

// Services are the application services the HTTP layer exposes. The transport
// stays thin: decode, call, encode. All rules live behind these interfaces.
type Services struct {
	Events      eventservice.Service
	Predictions predictionservice.Service
	Wagers      wagerservice.Service
	Leaderboard leaderboardservice.Service
}

// Server is the public HTTP API.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer builds the chi router with auth, rate limiting, and all routes.
func NewServer(cfg *config.Config, logger *slog.Logger, services Services) *Server {
	h := &handlers{services: services, logger: logger}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(cfg.HTTP.RequestTimeout))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(authenticator(cfg.JWT.Secret, logger))
		r.Use(rateLimiter(cfg.HTTP.RatePerSecond, cfg.HTTP.RateBurst))

		r.Route("/leaderboard", func(r chi.Router) {
			r.Get("/group/{groupID}", h.getGroupLeaderboard)
			r.Get("/group/{groupID}/export", h.exportGroupLeaderboard)
			r.Get("/group/{groupID}/chart", h.chartGroupLeaderboard)
			r.Get("/event/{eventID}", h.getEventLeaderboard)
			r.Get("/user/{userID}/group/{groupID}", h.getUserEntry)
			r.Post("/recalculate/group/{groupID}", h.recalculateLeaderboard)
		})

		r.Route("/predictions", func(r chi.Router) {
			r.Post("/", h.createPrediction)
			r.Delete("/{predictionID}", h.retractPrediction)
			r.Get("/match/{matchID}", h.getMatchPredictions)
			r.Get("/event/{eventID}/mine", h.getMyEventPredictions)
		})

		r.Route("/betting", func(r chi.Router) {
			r.Post("/events", h.createGroupEvent)
			r.Get("/events/group/{groupID}", h.getGroupEvents)
			r.Get("/events/{groupEventID}/fights", h.getGroupEventFights)
			r.Get("/events/{groupEventID}/wagers", h.getGroupEventWagers)
			r.Get("/events/{groupEventID}/wagers/mine", h.getMyWagers)
			r.Post("/wagers", h.placeWager)
			r.Post("/fights/{fightID}/result", h.finalizeFightResult)
		})

		r.Route("/events", func(r chi.Router) {
			r.Post("/", h.createEvent)
			r.Get("/{eventID}", h.getEvent)
			r.Get("/{eventID}/matches", h.getEventMatches)
		})
		r.Get("/groups/{groupID}/events", h.getGroupEventCards)

		r.Post("/matches/{matchID}/result", h.finalizeMatchResult)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           r,
			ReadHeaderTimeout: cfg.HTTP.RequestTimeout,
		},
		logger: logger,
	}
}

// Start serves until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("API server listening", slog.String("address", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
