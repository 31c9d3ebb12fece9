// Package httpapi exposes the feed server over HTTP/JSON.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	domain "github.com/ayushchouksey/jeclens/internal/facts"
	"github.com/ayushchouksey/jeclens/internal/logging"
	"github.com/ayushchouksey/jeclens/internal/server/auth"
	"github.com/ayushchouksey/jeclens/internal/server/config"
	"github.com/ayushchouksey/jeclens/internal/server/services"
)

// factsService and sessionsService are the slices of the application
// services the transport needs.
type factsService interface {
	List(ctx context.Context, requester *auth.Identity, category string) ([]domain.Fact, error)
	Submit(ctx context.Context, requester *auth.Identity, c domain.Candidate) (*domain.Fact, error)
	Vote(ctx context.Context, requester *auth.Identity, factID int64, metric domain.Metric) (*domain.Fact, error)
	Approve(ctx context.Context, requester *auth.Identity, factID int64) (*domain.Fact, error)
}

type sessionsService interface {
	LoginWithGoogle(ctx context.Context, idToken string) (*auth.Identity, *services.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*auth.Identity, *services.TokenPair, error)
}

type Server struct {
	facts      factsService
	sessions   sessionsService
	jwtSecret  []byte
	logger     logging.Logger
	httpServer *http.Server
}

func NewServer(cfg *config.Config, facts factsService, sessions sessionsService, logger logging.Logger) *Server {
	s := &Server{
		facts:     facts,
		sessions:  sessions,
		jwtSecret: []byte(cfg.SecretKey),
		logger:    logger.With("module", "httpapi"),
	}

	s.httpServer = &http.Server{
		Addr:              cfg.EndpointAddrHTTP,
		Handler:           s.routes(cfg),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

func (s *Server) routes(cfg *config.Config) http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(s.requestIDMiddleware, s.loggingMiddleware, s.authMiddleware)

	authSub := api.PathPrefix("/auth").Subrouter()
	limiter := rate.NewLimiter(rate.Every(cfg.AuthRateEvery), cfg.AuthRateBurst)
	authSub.Use(s.rateLimitMiddleware(limiter))
	authSub.HandleFunc("/google", s.loginGoogle).Methods(http.MethodPost)
	authSub.HandleFunc("/refresh", s.refresh).Methods(http.MethodPost)

	api.HandleFunc("/facts", s.listFacts).Methods(http.MethodGet)
	api.HandleFunc("/facts", s.createFact).Methods(http.MethodPost)
	api.HandleFunc("/facts/{id:[0-9]+}/votes/{metric}", s.vote).Methods(http.MethodPost)
	api.HandleFunc("/facts/{id:[0-9]+}/approve", s.approve).Methods(http.MethodPost)
	api.HandleFunc("/categories", s.listCategories).Methods(http.MethodGet)
	api.HandleFunc("/ping", s.ping).Methods(http.MethodGet)

	return r
}

// Handler exposes the routed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "http server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.logger.Info(ctx, "http server stopping")
	return s.httpServer.Shutdown(shutdownCtx)
}
