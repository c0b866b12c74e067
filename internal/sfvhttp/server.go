// Package sfvhttp wires the sfv package to an HTTP demo service: a small
// chi router that canonicalizes a field value posted in a request body.
package sfvhttp

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/sfv-go/sfv"
)

// Server canonicalizes posted Structured Field Values over HTTP.
type Server struct {
	opts sfv.ParseOptions
}

// NewServer builds a Server that parses with the given options.
func NewServer(opts sfv.ParseOptions) *Server {
	return &Server{opts: opts}
}

// Router returns the chi router exposing POST /canonicalize/{shape},
// wrapped in zerolog request logging middleware.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(hlog.NewHandler(log.Logger))
	r.Use(hlog.RequestIDHandler("req_id", "Request-Id"))
	r.Post("/canonicalize/{shape}", s.handleCanonicalize)
	return r
}

type errorResponse struct {
	Error string `json:"error"`
}

type canonicalResponse struct {
	Canonical string `json:"canonical"`
}

func (s *Server) handleCanonicalize(w http.ResponseWriter, r *http.Request) {
	shape := chi.URLParam(r, "shape")
	logger := getLogger(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, logger, http.StatusBadRequest, err)
		return
	}

	canonical, err := sfv.Canonicalize(shape, string(body), s.opts)
	if err != nil {
		writeError(w, logger, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(canonicalResponse{Canonical: canonical})
}

func writeError(w http.ResponseWriter, logger *zerolog.Logger, status int, err error) {
	logger.Warn().Err(err).Msg("Could not canonicalize field value")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}

// getLogger returns the logger from the request context, falling back to
// the global logger if none has been attached.
func getLogger(r *http.Request) *zerolog.Logger {
	logger := hlog.FromRequest(r)
	if logger.GetLevel() == zerolog.Disabled {
		logger = &log.Logger
	}
	return logger
}
