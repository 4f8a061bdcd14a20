// Package httpapi exposes a toolcall.Handler over HTTP.
//
// Routes:
//
//	GET  /tools  capability export (AllToolsSchema)
//	POST /call   one JSON tool call request; replies {"result": "..."}
//
// Failures reply {"error": "...", "kind": "..."} with 404 for an unknown tool,
// 400 for bad arguments and 500 for execution failures.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/skosovsky/toolcall"
)

// RequestIDHeader carries the per-request id, echoed when the client sends one.
const RequestIDHeader = "X-Request-ID"

// MaxBodyBytes caps the size of a POST /call body.
const MaxBodyBytes = 1 << 20

// CallResponse is the success body of POST /call.
type CallResponse struct {
	Result string `json:"result"`
}

// ErrorResponse is the failure body of every route.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

type server struct {
	h      *toolcall.Handler
	logger *slog.Logger
}

// NewHandler returns the router for h. A nil logger means slog.Default().
func NewHandler(h *toolcall.Handler, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &server{h: h, logger: logger}
	r := chi.NewRouter()
	r.Use(requestID)
	r.Get("/tools", s.tools)
	r.Post("/call", s.call)
	return r
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func (s *server) tools(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.h.AllToolsSchema(), s.logger)
}

func (s *server) call(w http.ResponseWriter, r *http.Request) {
	logger := s.logger.With("request_id", w.Header().Get(RequestIDHeader))

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		status := http.StatusBadRequest
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		logger.Warn("call: read body", "error", err)
		writeJSON(w, status, ErrorResponse{Error: "read request body: " + err.Error(), Kind: toolcall.KindBadArgs.String()}, logger)
		return
	}

	res, err := s.h.CallTool(r.Context(), body)
	if err != nil {
		kind := toolcall.KindOf(err)
		logger.Warn("call failed", "kind", kind.String(), "error", err)
		writeJSON(w, statusFor(kind), ErrorResponse{Error: err.Error(), Kind: kind.String()}, logger)
		return
	}
	writeJSON(w, http.StatusOK, CallResponse{Result: res}, logger)
}

func statusFor(k toolcall.Kind) int {
	switch k {
	case toolcall.KindNotFound:
		return http.StatusNotFound
	case toolcall.KindBadArgs:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}
