// Package server exposes the generator as a small JSON HTTP endpoint.
//
//	POST /generate  {"kind": "double-root", "seed": 7, "count": 3}
//	GET  /kinds     registered kinds with their titles and templates
//	GET  /health    liveness check
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/njchilds90/nadlogar/generator"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// GenerateRequest is the body of POST /generate. Count defaults to 1.
type GenerateRequest struct {
	Kind  string `json:"kind"`
	Seed  int64  `json:"seed"`
	Count int    `json:"count,omitempty"`
}

// GenerateResponse carries the generated instances in seed order.
type GenerateResponse struct {
	Instances []*generator.Instance `json:"instances"`
}

// KindInfo describes one registered problem.
type KindInfo struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Instruction string `json:"instruction"`
	Solution    string `json:"solution"`
}

// Server routes HTTP requests to a Generator.
type Server struct {
	gen      *generator.Generator
	log      *zap.Logger
	maxBatch int
	mux      *http.ServeMux
	now      func() time.Time
}

// New returns a Server. Requests asking for more than maxBatch instances
// are refused.
func New(gen *generator.Generator, log *zap.Logger, maxBatch int) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{gen: gen, log: log, maxBatch: maxBatch, mux: http.NewServeMux(), now: time.Now}
	s.mux.HandleFunc("/generate", s.recovered("/generate", s.handleGenerate))
	s.mux.HandleFunc("/kinds", s.recovered("/kinds", s.handleKinds))
	s.mux.HandleFunc("/health", s.recovered("/health", s.handleHealth))
	return s
}

// Handler returns the routing handler.
func (s *Server) Handler() http.Handler { return s.mux }

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string, readTimeout, writeTimeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln, readTimeout, writeTimeout)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener, readTimeout, writeTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       60 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.log.Info("server listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) recovered(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error("panic in handler", zap.String("route", route), zap.Any("panic", rec), zap.Stack("stack"))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		h(w, r)
	}
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req GenerateRequest
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if dec.More() {
		writeError(w, http.StatusBadRequest, "invalid JSON: trailing data")
		return
	}
	if req.Count == 0 {
		req.Count = 1
	}
	if req.Count < 0 || req.Count > s.maxBatch {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("count must be between 1 and %d", s.maxBatch))
		return
	}

	instances, err := s.gen.Batch(r.Context(), req.Kind, req.Seed, req.Count)
	switch {
	case errors.Is(err, generator.ErrUnknownKind):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, generator.ErrExhausted):
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	case err != nil:
		s.log.Error("generate failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.log.Debug("generated", zap.String("kind", req.Kind), zap.Int64("seed", req.Seed), zap.Int("count", req.Count))
	writeJSON(w, http.StatusOK, GenerateResponse{Instances: instances})
}

func (s *Server) handleKinds(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var out []KindInfo
	for _, p := range s.gen.Registry().Problems() {
		out = append(out, KindInfo{Kind: p.Kind(), Title: p.Title(), Instruction: p.Instruction(), Solution: p.Solution()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   s.now().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
