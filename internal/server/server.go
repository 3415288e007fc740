// Package server exposes the calculator over HTTP. The surface and
// the response envelope mirror the original deployment: every body is
// {"success": true, "data": ...} or {"success": false, "error", "code"}.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"jungtsi/internal/logging"
	"jungtsi/internal/store"
)

// Server wires the HTTP listener, the optional report archive and the
// handler set.
type Server struct {
	addr    string
	version string
	archive *store.Store
	httpSrv *http.Server
}

// New builds a server. archive may be nil; calculate requests are then
// served without being persisted.
func New(addr, version string, archive *store.Store) *Server {
	s := &Server{addr: addr, version: version, archive: archive}
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the routed handler, exported for httptest use.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/astrology/calculate", s.handleCalculate)
	mux.HandleFunc("POST /api/astrology/prosperity", s.handleProsperity)
	mux.HandleFunc("GET /api/astrology/reports", s.handleListReports)
	mux.HandleFunc("GET /api/astrology/reports/{id}", s.handleGetReport)
	mux.HandleFunc("GET /api/astrology/info", s.handleInfo)
	mux.HandleFunc("GET /info", s.handleInfo)
	mux.HandleFunc("GET /health", s.handleHealth)
	return withCORS(mux)
}

// Run serves until ctx is cancelled, then drains with a grace period.
func (s *Server) Run(ctx context.Context) error {
	logger := logging.New("server")
	logger.Info("listening", "addr", s.addr)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// withCORS adds the permissive CORS headers the original API served
// and answers preflight requests directly.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// --- Envelope helpers ---

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, successEnvelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorEnvelope{Success: false, Error: msg, Code: code})
}
