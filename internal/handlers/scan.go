package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mercalabs/shelfscan/internal/erp"
	"github.com/mercalabs/shelfscan/internal/images"
	"github.com/mercalabs/shelfscan/internal/models"
)

// maxUploadSize caps each uploaded image at 10MB.
const maxUploadSize = 10 * 1024 * 1024

// HandleScan accepts shelf images, runs the pipeline over them, and
// returns the new session with its records and summary. It takes either
// a multipart form upload ("files") or a JSON body with an image URL.
func (h *Handler) HandleScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		h.handleURLScan(w, r)
		return
	}

	h.handleUploadScan(w, r)
}

func (h *Handler) handleURLScan(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ImageURL string `json:"image_url"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	if request.ImageURL == "" {
		h.writeError(w, "image_url is required", http.StatusBadRequest)
		return
	}

	data, mimeType, filename, err := h.fetcher.Fetch(r.Context(), request.ImageURL)
	if err != nil {
		h.writeError(w, "Failed to fetch image URL: "+err.Error(), http.StatusBadRequest)
		return
	}

	results := erp.NewResultSet()
	h.scanService.ScanImage(r.Context(), filename, data, mimeType, results)

	items := []models.ImageItem{{
		ID:       "img_1",
		Filename: filename,
		Bytes:    len(data),
		Source:   "url",
	}}

	session := h.createSession(items, results)
	h.writeJSON(w, session)
}

func (h *Handler) handleUploadScan(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.writeError(w, "Failed to parse upload: "+err.Error(), http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		files = r.MultipartForm.File["file"]
	}
	if len(files) == 0 {
		h.writeError(w, "No files uploaded", http.StatusBadRequest)
		return
	}

	results := erp.NewResultSet()
	items := make([]models.ImageItem, 0, len(files))

	for i, header := range files {
		data, mimeType, err := readUpload(header)
		if err != nil {
			h.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}

		h.scanService.ScanImage(r.Context(), header.Filename, data, mimeType, results)
		items = append(items, models.ImageItem{
			ID:       fmt.Sprintf("img_%d", i+1),
			Filename: header.Filename,
			Bytes:    len(data),
			Source:   "upload",
		})
	}

	session := h.createSession(items, results)
	h.writeJSON(w, session)
}

func readUpload(header *multipart.FileHeader) ([]byte, string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !images.IsSupported(header.Filename) {
		return nil, "", fmt.Errorf("unsupported image type: %s", header.Filename)
	}

	file, err := header.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open upload %s: %w", header.Filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read upload %s: %w", header.Filename, err)
	}
	if len(data) > maxUploadSize {
		return nil, "", fmt.Errorf("file too large (max 10MB): %s", header.Filename)
	}

	return images.Normalize(data, ext)
}

func (h *Handler) createSession(items []models.ImageItem, results *erp.ResultSet) *models.ScanSession {
	session := &models.ScanSession{
		ID:        uuid.NewString(),
		Images:    items,
		Records:   results.All(),
		Summary:   results.Summary(),
		Provider:  h.provider,
		Model:     h.scanService.Model,
		CreatedAt: time.Now(),
	}
	h.sessionStore.Set(session.ID, session)
	return session
}
