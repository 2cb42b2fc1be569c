// Package api provides the HTTP API server for the LCA prediction service.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"lca-metals/internal/catalog"
	"lca-metals/internal/features"
	"lca-metals/internal/model"
	"lca-metals/internal/predict"
	"lca-metals/internal/recommend"
	"lca-metals/internal/report"
	contracts "lca-metals/pkg/api"
	"lca-metals/pkg/confidence"
	lcaerrors "lca-metals/pkg/errors"
)

const serviceVersion = "1.0.0"

// Server is the HTTP API server.
type Server struct {
	httpServer *http.Server
	loader     *model.Loader
	builder    *report.Builder
	validate   *validator.Validate
	config     *Config
	log        zerolog.Logger
}

// Config holds server configuration.
type Config struct {
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxRequestSize int64
}

// DefaultConfig returns default server configuration.
func DefaultConfig() *Config {
	return &Config{
		Port:           8501,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxRequestSize: 1 << 20,
	}
}

// NewServer creates a new API server backed by the given model loader.
func NewServer(loader *model.Loader, config *Config, log zerolog.Logger) *Server {
	if config == nil {
		config = DefaultConfig()
	}
	return &Server{
		loader:   loader,
		builder:  report.NewBuilder(),
		validate: validator.New(),
		config:   config,
		log:      log,
	}
}

// Router builds the chi router with all routes registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.config.WriteTimeout))
	r.Use(s.requestLogger)

	r.Get("/health", s.handleHealth)
	r.Get("/health/live", s.handleLive)
	r.Get("/health/ready", s.handleReady)
	r.Get("/version", s.handleVersion)
	r.Get("/api/v1/catalog", s.handleCatalog)
	r.Post("/api/v1/predict", s.handlePredict)
	r.Post("/api/v1/pathways", s.handlePathways)
	r.Post("/api/v1/report", s.handleReport)
	return r
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	s.log.Info().Int("port", s.config.Port).Msg("Starting LCA API server")
	return s.httpServer.ListenAndServe()
}

// StartWithGracefulShutdown starts the server and drains on SIGINT/SIGTERM.
func (s *Server) StartWithGracefulShutdown() error {
	errChan := make(chan error, 1)
	go func() {
		if err := s.Start(); !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case <-quit:
		s.log.Info().Msg("Shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(ctx)
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// =============================================================================
// HEALTH ENDPOINTS
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": serviceVersion,
	})
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	bundle := s.loader.Load()
	s.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":         "ready",
		"model_version":  bundle.Metadata.ModelVersion,
		"fallback_model": bundle.Fallback,
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	bundle := s.loader.Load()
	s.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"service_version": serviceVersion,
		"model_version":   bundle.Metadata.ModelVersion,
		"model_kind":      bundle.Kind.String(),
		"fallback_model":  bundle.Fallback,
		"source_path":     bundle.SourcePath,
	})
}

// =============================================================================
// CATALOG ENDPOINT
// =============================================================================

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"metals":      catalog.Metals,
		"processes":   catalog.Processes,
		"end_of_life": catalog.EndOfLife,
		"sectors":     catalog.Sectors,
		"routes":      catalog.Routes,
	})
}

// =============================================================================
// PREDICT ENDPOINT
// =============================================================================

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodePredictRequest(w, r)
	if !ok {
		return
	}

	resp, err := s.predictOne(req)
	if err != nil {
		s.predictionError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) predictOne(req contracts.PredictRequest) (*contracts.PredictResponse, error) {
	bundle := s.loader.Load()

	vec, approximations, err := features.Encode(bundle, req)
	if err != nil {
		return nil, err
	}

	predictor := predict.NewPredictor(bundle)
	result, err := predictor.Predict(vec)
	if err != nil {
		return nil, err
	}

	return &contracts.PredictResponse{
		Predictions:                  result,
		Confidence:                   predict.Confidence(bundle, approximations),
		Approximations:               approximations,
		ModelVersion:                 bundle.Metadata.ModelVersion,
		FallbackModel:                bundle.Fallback,
		CriticalMineral:              catalog.IsCriticalMineral(req.Metal),
		EnvironmentalRecommendations: recommend.Environmental(result),
		CircularityRecommendations:   recommend.Circularity(result),
	}, nil
}

// =============================================================================
// PATHWAYS ENDPOINT
// =============================================================================

// pathwayProcesses are the production pathways compared side by side.
var pathwayProcesses = []int{0, 1, 2}

func (s *Server) handlePathways(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodePredictRequest(w, r)
	if !ok {
		return
	}

	rows := make([]contracts.PathwayRow, 0, len(pathwayProcesses))
	confidences := make([]float64, 0, len(pathwayProcesses))
	for _, proc := range pathwayProcesses {
		variant := req
		variant.ProcessType = proc
		resp, err := s.predictOne(variant)
		if err != nil {
			s.predictionError(w, err)
			return
		}
		rows = append(rows, contracts.PathwayRow{
			Pathway:     catalog.ProcessName(proc),
			Predictions: resp.Predictions,
			Confidence:  resp.Confidence,
		})
		confidences = append(confidences, resp.Confidence)
	}

	s.jsonResponse(w, http.StatusOK, contracts.PathwaysResponse{
		Metal:    catalog.MetalName(req.Metal),
		Pathways: rows,
		Overall:  confidence.Aggregate(confidences),
	})
}

// =============================================================================
// REPORT ENDPOINT
// =============================================================================

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodePredictRequest(w, r)
	if !ok {
		return
	}

	resp, err := s.predictOne(req)
	if err != nil {
		s.predictionError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	switch format {
	case "", "json":
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.builder.Filename("lca_analysis", req.Metal, "json")))
		s.jsonResponse(w, http.StatusOK, s.builder.BuildExport(req, *resp))
	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", s.builder.Filename("LCA_Report", req.Metal, "txt")))
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, s.builder.BuildText(req, *resp))
	default:
		s.jsonError(w, http.StatusBadRequest, fmt.Sprintf("unsupported format %q", format))
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func (s *Server) decodePredictRequest(w http.ResponseWriter, r *http.Request) (contracts.PredictRequest, bool) {
	var req contracts.PredictRequest
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxRequestSize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.jsonError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return req, false
	}
	if err := s.validate.Struct(req); err != nil {
		s.jsonError(w, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return req, false
	}
	return req, true
}

func (s *Server) predictionError(w http.ResponseWriter, err error) {
	var lcaErr *lcaerrors.LCAError
	if errors.As(err, &lcaErr) && lcaErr.Recoverable {
		s.jsonError(w, http.StatusBadRequest, lcaErr.Error())
		return
	}
	s.log.Error().Err(err).Msg("prediction failed")
	s.jsonError(w, http.StatusInternalServerError, "prediction failed")
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) jsonError(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{
		"error": message,
	})
}
