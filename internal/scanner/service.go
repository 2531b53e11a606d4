// Package scanner runs the extraction-normalization-merge pipeline over
// shelf images: vision extraction, response parsing, per-candidate
// catalog lookup, and record merging into a result set.
package scanner

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/mercalabs/shelfscan/internal/erp"
	"github.com/mercalabs/shelfscan/internal/images"
	"github.com/mercalabs/shelfscan/internal/ocr"
	"github.com/mercalabs/shelfscan/internal/openfoodfacts"
	"github.com/mercalabs/shelfscan/internal/vision"
)

// lookupTimeout bounds each catalog lookup.
const lookupTimeout = 30 * time.Second

// Lookup is the catalog boundary consumed during a scan.
type Lookup interface {
	Search(ctx context.Context, productName string) (*openfoodfacts.Product, error)
}

// Service drives sequential image processing. One image is fully handled
// before the next begins; there is no fan-out across images or candidates.
type Service struct {
	provider vision.Provider
	lookup   Lookup

	Model       string
	Temperature float64
	MaxTokens   int
}

// New creates a scan service over the given provider and catalog lookup.
func New(provider vision.Provider, lookup Lookup) *Service {
	return &Service{
		provider:    provider,
		lookup:      lookup,
		Model:       vision.DefaultModel,
		Temperature: vision.DefaultTemperature,
		MaxTokens:   vision.DefaultMaxTokens,
	}
}

// ScanFolder processes every supported image in dir into a fresh result
// set. On cancellation the partial set is returned along with the
// context error; records appended so far are retained.
func (s *Service) ScanFolder(ctx context.Context, dir string) (*erp.ResultSet, error) {
	paths, err := images.ListFolder(dir)
	if err != nil {
		return nil, err
	}
	return s.ScanPaths(ctx, paths)
}

// ScanPaths processes the given image files in order.
func (s *Service) ScanPaths(ctx context.Context, paths []string) (*erp.ResultSet, error) {
	results := erp.NewResultSet()
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		s.scanOne(ctx, filepath.Base(path), path, results)
	}
	return results, nil
}

// ScanImage processes one already-loaded image into results. The web
// surface uses this for uploads that never touch the filesystem.
func (s *Service) ScanImage(ctx context.Context, imageName string, data []byte, mimeType string, results *erp.ResultSet) {
	slog.Info("Processing image", "image", imageName)

	raw, err := s.provider.ExtractText(ctx, vision.Config{
		Model:       s.Model,
		Temperature: s.Temperature,
		MaxTokens:   s.MaxTokens,
		Prompt:      vision.Prompt,
		Image:       data,
		MIMEType:    mimeType,
	})
	if err != nil {
		slog.Error("Vision extraction failed", "image", imageName, "err", err)
		results.Append(erp.ExtractionError(imageName))
		return
	}

	candidates, outcome := ocr.Parse(raw)
	if outcome == ocr.OutcomeNotDetected {
		slog.Warn("No products detected", "image", imageName)
		results.Append(erp.NotDetected(imageName))
		return
	}

	slog.Info("Products detected", "image", imageName, "count", len(candidates))

	for _, candidate := range candidates {
		var match *openfoodfacts.Product
		if !erp.IsSentinel(candidate.Name) {
			match = s.search(ctx, candidate.Name)
		}
		results.Append(erp.Merge(candidate, imageName, match))
	}
}

func (s *Service) scanOne(ctx context.Context, imageName, path string, results *erp.ResultSet) {
	data, mimeType, err := images.Load(path)
	if err != nil {
		slog.Error("Failed to load image", "image", imageName, "err", err)
		results.Append(erp.ExtractionError(imageName))
		return
	}
	s.ScanImage(ctx, imageName, data, mimeType, results)
}

// search maps every lookup failure to "no match": at this boundary a
// transport error is indistinguishable from an absent product.
func (s *Service) search(ctx context.Context, productName string) *openfoodfacts.Product {
	lookupCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	match, err := s.lookup.Search(lookupCtx, productName)
	if err != nil {
		if errors.Is(err, openfoodfacts.ErrNotFound) {
			slog.Warn("Product not in catalog", "product", productName)
		} else {
			slog.Warn("Catalog lookup failed", "product", productName, "err", err)
		}
		return nil
	}

	slog.Info("Catalog match", "product", productName,
		"match", match.ProductName, "kcal_100g", match.Nutriments.EnergyKcal)
	return match
}
