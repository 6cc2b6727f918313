// Package server exposes the statistics comparison over HTTP, together with
// health and Prometheus metrics endpoints.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/datakit/internal/errors"
	"github.com/agbru/datakit/internal/logging"
	"github.com/agbru/datakit/internal/orchestration"
)

// Request/response body size and timing limits. The endpoint is meant for
// modest datasets; anything larger belongs in a file fed to the CLI.
const (
	maxBodyBytes      = 8 << 20
	readHeaderTimeout = 5 * time.Second
	shutdownGrace     = 10 * time.Second
)

// Server serves comparison requests over HTTP.
type Server struct {
	addr      string
	tolerance float64
	log       logging.Logger
	metrics   *Metrics
}

// New creates a Server listening on addr and comparing with the given
// absolute tolerance.
func New(addr string, tolerance float64, log logging.Logger) *Server {
	return &Server{
		addr:      addr,
		tolerance: tolerance,
		log:       log,
		metrics:   NewMetrics(),
	}
}

// Routes returns the server's HTTP handler.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/compare", s.handleCompare)
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.Handle("/metrics", s.metrics.Handler())
	return mux
}

// Run starts the HTTP server and blocks until ctx is canceled or the
// listener fails. Shutdown is graceful within shutdownGrace.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("http server listening", logging.String("addr", s.addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		s.log.Info("http server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// errorDocument is the JSON body returned for failed requests.
type errorDocument struct {
	Kind    string `json:"kind"` // "parse", "validation" or "internal"
	Message string `json:"message"`
}

// handleCompare accepts a JSON array of numbers and responds with the full
// comparison document. Validation and parse failures map to 400 with a typed
// error body; the two kinds are never conflated.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.metrics.IncrementActiveRequests()
	defer s.metrics.DecrementActiveRequests()

	var values []float64
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&values); err != nil {
		s.metrics.ObserveFailure("parse")
		s.writeError(w, http.StatusBadRequest, errorDocument{Kind: "parse", Message: err.Error()})
		return
	}

	comp, err := orchestration.CompareWithTolerance(r.Context(), values, s.tolerance)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			s.metrics.ObserveFailure("validation")
			s.writeError(w, http.StatusBadRequest, errorDocument{Kind: "validation", Message: err.Error()})
		default:
			s.metrics.ObserveFailure("internal")
			s.log.Error("comparison failed", logging.Err(err))
			s.writeError(w, http.StatusInternalServerError, errorDocument{Kind: "internal", Message: "comparison failed"})
		}
		return
	}

	s.metrics.ObserveComparison(comp.ScalarTime, comp.VectorizedTime, comp.AreEqual)
	s.log.Debug("comparison served",
		logging.Int("count", comp.Scalar.Count),
		logging.Dur("scalar_time", comp.ScalarTime),
		logging.Dur("vectorized_time", comp.VectorizedTime),
	)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(orchestration.NewComparisonDocument(comp)); err != nil {
		s.log.Error("encoding response", logging.Err(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, doc errorDocument) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		s.log.Error("encoding error response", logging.Err(err))
	}
}

// handleHealthz reports liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
