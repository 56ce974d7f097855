package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/htol/bookshelf/api"
	"github.com/htol/bookshelf/auth"
	"github.com/htol/bookshelf/config"
	"github.com/htol/bookshelf/logger"
	"github.com/htol/bookshelf/repo"
	"github.com/htol/bookshelf/service"
)

const shutdownTimeout = 30 * time.Second

type Server struct {
	storage *repo.Repo
	service *service.Service
	config  *config.Config
	server  *http.Server
}

func NewServer(storage *repo.Repo, cfg *config.Config, checker auth.Checker) *Server {
	svc := service.New(storage)
	return &Server{
		storage: storage,
		service: svc,
		config:  cfg,
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      api.NewHandler(svc, checker),
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
			IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		},
	}
}

// Handler returns the HTTP handler served by Run
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Run serves HTTP until ctx is cancelled or the listener fails, then shuts the
// server down gracefully and closes the storage.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Server listening", "port", s.config.Server.Port, "url", fmt.Sprintf("http://localhost:%d", s.config.Server.Port))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	err := g.Wait()

	logger.Info("Closing database connection...")
	if cerr := s.Close(); cerr != nil {
		logger.Error("Error closing storage", "error", cerr)
	}
	logger.Info("Server stopped")
	return err
}

func (s *Server) Close() error {
	if s.storage != nil {
		if err := s.storage.Close(); err != nil {
			return err
		}
	}
	return nil
}
