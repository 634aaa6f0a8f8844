// Package httpapi exposes the portal API over HTTP: authentication, mock
// billing/diagnostics endpoints, and the technician tracking WebSocket.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samuelnapitupulu18/NusaCare/internal/logging"
	"github.com/samuelnapitupulu18/NusaCare/internal/server/services"
)

type Server struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	billing   *services.BillingService
	tickets   *services.TicketService
	tracking  *services.TrackingSimulator
	telemetry *services.Telemetry
	engine    *gin.Engine
}

func NewServer(
	address string,
	logger logging.Logger,
	users *services.UserService,
	billing *services.BillingService,
	tickets *services.TicketService,
	tracking *services.TrackingSimulator,
	telemetry *services.Telemetry,
) *Server {
	s := &Server{
		address:   address,
		logger:    logger.With("module", "http_server"),
		users:     users,
		billing:   billing,
		tickets:   tickets,
		tracking:  tracking,
		telemetry: telemetry,
	}
	s.engine = s.buildEngine()
	return s
}

func (s *Server) buildEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.Use(s.sessionGate())

	api.GET("/health-check", s.healthCheck)
	api.POST("/auth/register", s.register)
	api.POST("/auth/login", s.login)

	api.POST("/pay", s.pay)
	api.GET("/transactions", s.transactions)
	api.POST("/tickets", s.createTicket)
	api.POST("/tickets/:id/rate", s.rateTicket)
	api.GET("/tracking/:ticketId", s.trackTicket)

	return r
}

// Handler returns the HTTP handler, used by tests to serve the API from an
// httptest server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{Addr: s.address, Handler: s.engine}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
