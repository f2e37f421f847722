package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/tx-address/internal/address"
	"github.com/tx-address/internal/config"
	"github.com/tx-address/internal/engine"
	"github.com/tx-address/internal/match"
	"github.com/tx-address/internal/postal"
	"github.com/tx-address/internal/validation"
	"github.com/tx-address/internal/web/handlers"
	"github.com/tx-address/internal/web/middleware"
)

// Server represents the web server
type Server struct {
	config     *config.Config
	parser     *address.Parser
	scorer     *match.Scorer
	searcher   *engine.AddressSearcher
	httpServer *http.Server
	router     *mux.Router
	logger     *zap.Logger
}

// NewServer creates a new web server instance. searcher may be nil, in
// which case the property search route is not registered. A nil logger
// discards output.
func NewServer(cfg *config.Config, parser *address.Parser, scorer *match.Scorer, searcher *engine.AddressSearcher, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	server := &Server{
		config:   cfg,
		parser:   parser,
		scorer:   scorer,
		searcher: searcher,
		logger:   logger,
	}

	server.setupRoutes()

	server.httpServer = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      server.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server
}

// Handler returns the routed handler with middleware applied
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	debug := s.config.Features.Debug
	apiHandler := &handlers.APIHandler{
		StoreEnabled: s.searcher != nil,
		Libpostal:    postal.Available(),
		Started:      time.Now(),
	}
	addressHandler := &handlers.AddressHandler{
		Parser:    s.parser,
		Scorer:    s.scorer,
		Validator: validation.NewAddressValidator(s.parser, validation.DefaultMinScore),
		Debug:     debug,
	}

	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/status", apiHandler.GetStatus).Methods("GET", "OPTIONS")

	api.HandleFunc("/address/parse", addressHandler.Parse).Methods("GET", "OPTIONS")
	api.HandleFunc("/address/compare", addressHandler.Compare).Methods("GET", "OPTIONS")
	api.HandleFunc("/address/normalize", addressHandler.Normalize).Methods("GET", "OPTIONS")
	api.HandleFunc("/address/terms", addressHandler.Terms).Methods("GET", "OPTIONS")
	api.HandleFunc("/address/validate", addressHandler.Validate).Methods("GET", "OPTIONS")
	api.HandleFunc("/address/components", addressHandler.Components).Methods("GET", "OPTIONS")

	// Property search needs a configured store
	if s.searcher != nil {
		searchHandler := &handlers.SearchHandler{
			Searcher: s.searcher,
			MinScore: s.config.Matching.FuzzyMatchScore,
			Debug:    debug,
			Logger:   s.logger,
		}
		api.HandleFunc("/search/address", searchHandler.SearchAddress).Methods("GET", "OPTIONS")
	}

	s.router.Use(middleware.CORS())
	s.router.Use(middleware.RequestLogging(s.logger))
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server", zap.String("addr", "http://"+s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.logger.Info("Server stopped")
	return nil
}
