package api

import (
	"encoding/json"
	"net/http"

	"github.com/ppgiii/ViZ/pkg/errors"
	"github.com/ppgiii/ViZ/pkg/logger"
)

type response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type tickerRequest struct {
	Symbol string `json:"symbol"`
}

// handleFeed returns the current window so a page can render before the
// stream delivers its first frame.
func (s *Server) handleFeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	snapshot := s.usecase.Snapshot(r.Context())

	s.writeJSON(w, r, http.StatusOK, response{
		Status:  "success",
		Message: "success",
		Data:    snapshot,
	})
}

// handleTicker switches the feed to a new symbol. The symbol is taken as
// typed, the next poll answers whether it exists.
func (s *Server) handleTicker(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req tickerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.WarnContext(r.Context(), "ticker request decode failed",
			logger.NewField("error", err.Error()),
		)
		s.writeError(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	snapshot := s.usecase.SetSymbol(r.Context(), req.Symbol)

	s.writeJSON(w, r, http.StatusOK, response{
		Status:  "success",
		Message: "success",
		Data:    snapshot,
	})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.writeJSON(w, r, status, response{
		Status:  "error",
		Message: message,
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, body response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.ErrorContext(r.Context(), errors.TracerFromError(err))
	}
}
