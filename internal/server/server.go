package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net"
	"net/http"
	"strings"
	"time"

	"rtcalc/internal/config"
	"rtcalc/internal/logging"
	"rtcalc/internal/metrics"
	"rtcalc/internal/pipeline"
	"rtcalc/internal/render"
)

// CalculateRequest is the JSON form of a calculate call.
type CalculateRequest struct {
	Text string `json:"text"`
}

// Server serves the HTTP API.
type Server struct {
	bind    string
	token   string
	maxBody int64
	runner  *pipeline.Runner
	metrics *metrics.Collector
	logger  *slog.Logger

	listener net.Listener
	server   *http.Server
}

// New wires a server. collector may be nil to disable /metrics.
func New(cfg *config.Config, runner *pipeline.Runner, collector *metrics.Collector, logger *slog.Logger) *Server {
	s := &Server{
		bind:    cfg.Server.Bind,
		token:   cfg.Server.APIToken,
		maxBody: cfg.Server.MaxBodyBytes,
		runner:  runner,
		metrics: collector,
		logger:  logging.NewComponentLogger(logger, "api-server"),
	}
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler returns the routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/calculate", s.instrument("calculate", authMiddleware(s.token, s.handleCalculate)))
	mux.HandleFunc("/api/health", s.instrument("health", s.handleHealth))
	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.Handler())
	}
	return mux
}

// Start listens on the configured address and serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	s.logger.Info("api server listening", logging.String("address", listener.Addr().String()))
	return nil
}

// Addr returns the bound address once Start succeeded.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop shuts the server down, waiting briefly for in-flight requests.
func (s *Server) Stop() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.server.Shutdown(shutdownCtx)
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	text, status, err := s.readText(w, r)
	if err != nil {
		s.writeError(w, status, err.Error())
		return
	}

	result := s.runner.Run(r.Context(), text)
	w.Header().Set("X-Run-ID", result.RunID)
	s.writeJSON(w, http.StatusOK, render.NewDocument(result))
}

func (s *Server) readText(w http.ResponseWriter, r *http.Request) (string, int, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", http.StatusRequestEntityTooLarge, fmt.Errorf("request body exceeds %d bytes", s.maxBody)
		}
		return "", http.StatusBadRequest, fmt.Errorf("read body: %w", err)
	}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if !strings.EqualFold(mediaType, "application/json") {
		return string(body), http.StatusOK, nil
	}
	var req CalculateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "", http.StatusBadRequest, fmt.Errorf("invalid json body: %w", err)
	}
	return req.Text, http.StatusOK, nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) instrument(name string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		s.metrics.ObserveRequest(name, rec.status)
		s.logger.Debug("api request",
			logging.String("handler", name),
			logging.String("method", r.Method),
			logging.Int("status", rec.status),
		)
	}
}
