package server

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	"github.com/kartoza/kinetics-lab/internal/api"
	"github.com/kartoza/kinetics-lab/internal/catalog"
	"github.com/kartoza/kinetics-lab/internal/config"
	"github.com/kartoza/kinetics-lab/internal/kinetics"
	"github.com/kartoza/kinetics-lab/internal/logging"
	"github.com/kartoza/kinetics-lab/internal/metrics"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFS embed.FS

// Server holds all the components for the web application
type Server struct {
	cfg        config.Config
	httpServer *http.Server
	router     *mux.Router
	catalog    *catalog.Catalog
	metrics    *metrics.Collector
	logger     *zap.Logger
}

// New creates a new Server with all components initialized
func New(cfg config.Config, cat *catalog.Catalog, logger *zap.Logger) (*Server, error) {
	if cat == nil {
		return nil, fmt.Errorf("server requires a catalog")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		cfg:     cfg,
		router:  mux.NewRouter(),
		catalog: cat,
		metrics: metrics.NewCollector("kinetics"),
		logger:  logger,
	}
	s.metrics.SetCatalogSize(cat.Len())

	// Set up routes
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", logging.RequestIDHeader},
		ExposedHeaders: []string{logging.RequestIDHeader},
		MaxAge:         300,
	})
	return logging.RequestID(logging.Middleware(s.logger)(corsHandler(s.router)))
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.Use(s.metrics.Middleware)

	// API routes
	apiRouter := s.router.PathPrefix("/api").Subrouter()
	apiHandler := api.NewHandler(s.catalog, kinetics.DefaultEvaluator(), s.metrics, s.logger, s.cfg)
	apiHandler.RegisterRoutes(apiRouter)

	s.router.Handle("/metrics", s.metrics.Handler()).Methods("GET")

	// Static frontend files (embedded)
	staticContent, err := fs.Sub(staticFS, "static")
	if err != nil {
		s.logger.Warn("Could not load embedded static files", zap.Error(err))
		return
	}

	// SPA fallback: serve index.html for any non-API route
	fileServer := http.FileServer(http.FS(staticContent))
	s.router.PathPrefix("/").Handler(spaHandler{staticContent: staticContent, fileServer: fileServer})
}

// Start begins listening for HTTP connections.
// It returns http.ErrServerClosed once Stop has been called.
func (s *Server) Start() error {
	s.logger.Info("Server listening", zap.String("url", fmt.Sprintf("http://localhost:%d", s.cfg.Port)))
	return s.httpServer.ListenAndServe()
}

// Stop gracefully shuts down the server. It is safe to call from another
// goroutine than Start, and before Start.
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}

// spaHandler serves the SPA, falling back to index.html for client-side routing
type spaHandler struct {
	staticContent fs.FS
	fileServer    http.Handler
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Try to open the file
	path := r.URL.Path
	if path == "/" {
		path = "index.html"
	}

	// fs.FS paths must not have a leading slash
	cleanPath := strings.TrimPrefix(path, "/")

	_, err := fs.Stat(h.staticContent, cleanPath)
	if err != nil {
		// File not found, serve index.html for SPA routing
		r.URL.Path = "/"
	}

	h.fileServer.ServeHTTP(w, r)
}
