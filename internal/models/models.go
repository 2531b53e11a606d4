package models

import (
	"time"

	"github.com/mercalabs/shelfscan/internal/erp"
)

// ScanSession groups the images and results of one web scan.
type ScanSession struct {
	ID        string       `json:"id"`
	Images    []ImageItem  `json:"images"`
	Records   []erp.Record `json:"records"`
	Summary   erp.Summary  `json:"summary"`
	Provider  string       `json:"provider,omitempty"`
	Model     string       `json:"model,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// ImageItem represents one uploaded or fetched shelf image.
type ImageItem struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Bytes    int    `json:"bytes"`
	Source   string `json:"source"` // "upload" or "url"
}
