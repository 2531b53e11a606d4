package images

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// maxFetchSize caps remote image downloads at 10MB.
const maxFetchSize = 10 * 1024 * 1024

// Fetcher retrieves shelf images from remote URLs for the web surface.
type Fetcher struct {
	HTTPClient *http.Client
}

// NewFetcher creates a fetcher with a bounded request timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch downloads an image and returns its normalized bytes, MIME type,
// and a filename derived from the URL path.
func (f *Fetcher) Fetch(ctx context.Context, imageURL string) ([]byte, string, string, error) {
	parsed, err := url.Parse(imageURL)
	if err != nil {
		return nil, "", "", fmt.Errorf("invalid image URL: %w", err)
	}

	filename := path.Base(parsed.Path)
	ext := strings.ToLower(path.Ext(filename))
	if !supportedExtensions[ext] {
		return nil, "", "", fmt.Errorf("unsupported image extension in URL: %q", imageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", "", fmt.Errorf("image download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchSize))
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to read image body: %w", err)
	}

	normalized, mimeType, err := Normalize(data, ext)
	if err != nil {
		return nil, "", "", err
	}

	slog.Info("Downloaded image", "url", imageURL, "bytes", len(normalized))
	return normalized, mimeType, filename, nil
}
