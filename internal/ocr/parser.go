// Package ocr decodes raw vision-model output into product candidates.
//
// The model answers in one of two shapes depending on the prompt version:
// a comma-separated plain-text list, or a JSON array of objects with
// nombre/detalle/proveedor/categoria fields. Both are supported; the
// format is picked by structural sniffing or by calling the per-format
// entry point directly.
package ocr

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/mercalabs/shelfscan/internal/erp"
)

// Outcome reports whether a parse produced candidates or hit a sentinel.
type Outcome int

const (
	// OutcomeProducts means at least one candidate was parsed.
	OutcomeProducts Outcome = iota
	// OutcomeNotDetected means the output was empty, the not-detected
	// marker, or contained no usable entries.
	OutcomeNotDetected
)

// structuredEntry mirrors one object of the model's JSON array output.
type structuredEntry struct {
	Nombre    string `json:"nombre"`
	Detalle   string `json:"detalle"`
	Proveedor string `json:"proveedor"`
	Categoria string `json:"categoria"`
	Cantidad  int    `json:"cantidad"`
}

// Parse decodes raw model output, sniffing the format: output starting
// with a JSON array bracket is parsed as the structured format, anything
// else as a plain comma-separated list. Candidate order always matches
// the model's left-to-right order.
func Parse(raw string) ([]erp.Candidate, Outcome) {
	trimmed := strings.TrimSpace(raw)
	if isSentinel(trimmed) {
		return nil, OutcomeNotDetected
	}

	if strings.HasPrefix(trimmed, "[") {
		return ParseStructured(trimmed)
	}
	return ParseText(trimmed)
}

// ParseText decodes the plain-text format: a comma-separated list of
// product names. Empty segments are dropped.
func ParseText(raw string) ([]erp.Candidate, Outcome) {
	trimmed := strings.TrimSpace(raw)
	if isSentinel(trimmed) {
		return nil, OutcomeNotDetected
	}

	var candidates []erp.Candidate
	for _, segment := range strings.Split(trimmed, ",") {
		name := strings.TrimSpace(segment)
		if name == "" {
			continue
		}
		candidates = append(candidates, erp.Candidate{Name: name})
	}

	if len(candidates) == 0 {
		return nil, OutcomeNotDetected
	}
	return candidates, OutcomeProducts
}

// ParseStructured decodes the JSON-array format. Entries with a missing
// or empty nombre are skipped rather than failing the whole batch.
func ParseStructured(raw string) ([]erp.Candidate, Outcome) {
	trimmed := strings.TrimSpace(raw)
	if isSentinel(trimmed) {
		return nil, OutcomeNotDetected
	}

	var entries []structuredEntry
	if err := json.Unmarshal([]byte(trimmed), &entries); err != nil {
		slog.Warn("Unable to decode structured model output", "err", err)
		return nil, OutcomeNotDetected
	}

	var candidates []erp.Candidate
	for _, entry := range entries {
		name := strings.TrimSpace(entry.Nombre)
		if name == "" {
			continue
		}
		candidates = append(candidates, erp.Candidate{
			Name:     name,
			Detail:   strings.TrimSpace(entry.Detalle),
			Supplier: strings.TrimSpace(entry.Proveedor),
			Category: strings.TrimSpace(entry.Categoria),
			Quantity: entry.Cantidad,
		})
	}

	if len(candidates) == 0 {
		return nil, OutcomeNotDetected
	}
	return candidates, OutcomeProducts
}

func isSentinel(trimmed string) bool {
	return trimmed == "" || strings.EqualFold(trimmed, erp.SentinelNotDetected)
}
