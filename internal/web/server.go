package web

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"network-ping/internal/models"
)

// Store is the journal view served by the status API
type Store interface {
	GetRecent(hours int) ([]models.OutcomeRecord, error)
	GetStats(hours int) ([]models.Stats, error)
}

// Server exposes the outcome journal over HTTP
type Server struct {
	app   *fiber.App
	store Store
	addr  string
	log   *zap.Logger
}

// New creates a new status API server
func New(store Store, addr string, log *zap.Logger) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
		}),
		store: store,
		addr:  addr,
		log:   log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.app.Group("/api")
	api.Get("/recent", s.handleRecent)
	api.Get("/stats", s.handleStats)
}

// Start serves until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		if err := s.app.Shutdown(); err != nil {
			s.log.Warn("status API shutdown failed", zap.Error(err))
		}
	}()

	s.log.Info("status API starting", zap.String("addr", s.addr))
	return s.app.Listen(s.addr)
}
