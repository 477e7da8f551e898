// Package server exposes deck building and verification over HTTP.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/benjaminschreck/go-deck/internal/config"
	"github.com/benjaminschreck/go-deck/pkg/deck"
)

// MediaTypePPTX is the media type of a presentation archive.
const MediaTypePPTX = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

const shutdownTimeout = 5 * time.Second

// Server handles deck requests. Options are applied to every build before
// the metadata carried by the request.
type Server struct {
	cfg    config.ServerConfig
	opts   []deck.Option
	router *mux.Router
	log    *deck.Logger
}

// New creates a server with its routes registered.
func New(cfg config.ServerConfig, opts ...deck.Option) *Server {
	s := &Server{
		cfg:    cfg,
		opts:   opts,
		router: mux.NewRouter(),
		log:    deck.WithField("component", "server"),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(s.logRequests)
	s.router.HandleFunc("/healthz", s.Health).Methods(http.MethodGet)
	s.router.HandleFunc("/decks", s.BuildDeck).Methods(http.MethodPost)
	s.router.HandleFunc("/decks/verify", s.VerifyDeck).Methods(http.MethodPost)
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on the configured address until ctx is cancelled,
// then drains open requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening on %s", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse carries a failure message and, for build failures, the
// stage that failed.
type ErrorResponse struct {
	Error string `json:"error"`
	Stage string `json:"stage,omitempty"`
}

// Health reports that the server is up.
// GET /healthz
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// BuildDeck turns a JSON deck into a presentation archive.
// POST /decks
func (s *Server) BuildDeck(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	d, err := deck.ParseDeck(body, deck.FormatJSON)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Stage: string(deck.StageLoad)})
		return
	}

	specs := d.Specs()
	data, err := deck.Bytes(specs, append(append([]deck.Option{}, s.opts...), d.Options()...)...)
	if err != nil {
		s.log.Error("build failed: %v", err)
		resp := ErrorResponse{Error: err.Error()}
		if stage, ok := deck.StageOf(err); ok {
			resp.Stage = string(stage)
		}
		writeJSON(w, http.StatusInternalServerError, resp)
		return
	}

	w.Header().Set("Content-Type", MediaTypePPTX)
	w.Header().Set("Content-Disposition", `attachment; filename="presentation.pptx"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Slide-Count", strconv.Itoa(len(specs)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// VerifyDeck checks the structure of an uploaded archive.
// POST /decks/verify
func (s *Server) VerifyDeck(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	report, err := deck.Verify(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Stage: string(deck.StageLoad)})
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// readBody reads the request body within the configured limit, answering
// the request itself when that fails.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	reader := io.Reader(r.Body)
	if s.cfg.MaxBodyBytes > 0 {
		reader = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, ErrorResponse{
				Error: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
			})
			return nil, false
		}
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "reading request body: " + err.Error()})
		return nil, false
	}
	return body, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.WithFields(deck.Fields{
			"status":  rec.status,
			"elapsed": time.Since(start).Round(time.Microsecond),
		}).Info("%s %s", r.Method, r.URL.Path)
	})
}
