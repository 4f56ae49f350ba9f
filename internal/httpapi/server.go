// Package httpapi exposes the engine over a small JSON-over-HTTP
// binding: one POST endpoint per operation, plus GET /isprime/{n}.
// Responses are {"result": ...} on success and {"error": "..."} on
// failure; every engine failure maps to status 400.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Server routes engine operations over HTTP.
type Server struct {
	logger *slog.Logger
	mux    *http.ServeMux
}

// New returns a Server logging through logger. A nil logger falls back
// to slog.Default().
func New(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		logger: logger,
		mux:    http.NewServeMux(),
	}
	s.routes()
	return s
}

// Handler returns the root handler with request logging attached.
func (s *Server) Handler() http.Handler {
	return s.logging(s.mux)
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /modadd", s.handleModAdd)
	s.mux.HandleFunc("POST /modsub", s.handleModSub)
	s.mux.HandleFunc("POST /modmul", s.handleModMul)
	s.mux.HandleFunc("POST /modpow", s.handleModPow)
	s.mux.HandleFunc("POST /gcd", s.handleGCD)
	s.mux.HandleFunc("POST /modinverse", s.handleModInverse)
	s.mux.HandleFunc("GET /isprime/{n}", s.handleIsPrime)
	s.mux.HandleFunc("POST /caesar", s.handleCaesar)
	s.mux.HandleFunc("POST /vigenere", s.handleVigenere)
	s.mux.HandleFunc("POST /rsa/generate", s.handleRSAGenerate)
	s.mux.HandleFunc("POST /rsa/encrypt", s.handleRSAEncrypt)
	s.mux.HandleFunc("POST /rsa/decrypt", s.handleRSADecrypt)
	s.mux.HandleFunc("POST /crt", s.handleCRT)
	s.mux.HandleFunc("POST /fermat", s.handleFermat)
}

// statusRecorder captures the status code written by a handler so the
// logging middleware can report it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// decode parses the request body into v, reporting a 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) writeResult(w http.ResponseWriter, result any) {
	s.writeJSON(w, http.StatusOK, map[string]any{"result": result})
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]any{"error": message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}
