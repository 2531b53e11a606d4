package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mercalabs/shelfscan/internal/images"
	"github.com/mercalabs/shelfscan/internal/scanner"
	"github.com/mercalabs/shelfscan/internal/storage"
)

type Handler struct {
	sessionStore *storage.SessionStore
	scanService  *scanner.Service
	fetcher      *images.Fetcher
	provider     string
}

// New creates the web handler over a configured scan service.
func New(scanService *scanner.Service, provider string) *Handler {
	return &Handler{
		sessionStore: storage.New(),
		scanService:  scanService,
		fetcher:      images.NewFetcher(),
		provider:     provider,
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}
