package erp

import "sync"

// ResultSet is the append-only, insertion-ordered collection of records
// produced by one scan run. Appends are serialized so the web surface
// can share a set per session; insertion order is the only order a
// consumer may rely on.
type ResultSet struct {
	mu      sync.Mutex
	records []Record
}

// Summary aggregates a result set's detection outcomes. Found counts
// detections regardless of catalog-match success; CatalogMatched counts
// enrichment separately.
type Summary struct {
	Total          int     `json:"total"`
	Found          int     `json:"encontrados"`
	NotFound       int     `json:"no_encontrados"`
	OCRErrors      int     `json:"errores_ocr"`
	CatalogMatched int     `json:"con_catalogo"`
	SuccessRate    float64 `json:"tasa_exito"`
}

// NewResultSet creates an empty result set.
func NewResultSet() *ResultSet {
	return &ResultSet{}
}

// Append adds a fully constructed record to the end of the set.
func (rs *ResultSet) Append(record Record) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.records = append(rs.records, record)
}

// All returns the records in insertion order.
func (rs *ResultSet) All() []Record {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	out := make([]Record, len(rs.records))
	copy(out, rs.records)
	return out
}

// Len reports the number of records in the set.
func (rs *ResultSet) Len() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return len(rs.records)
}

// Clear discards all records.
func (rs *ResultSet) Clear() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.records = nil
}

// Summary computes the aggregate counts over the current records.
func (rs *ResultSet) Summary() Summary {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	summary := Summary{Total: len(rs.records)}
	for _, record := range rs.records {
		switch record.Status {
		case StatusFound:
			summary.Found++
		case StatusNotDetected:
			summary.NotFound++
		case StatusOCRError:
			summary.OCRErrors++
		}
		if record.CatalogMatched {
			summary.CatalogMatched++
		}
	}

	if summary.Total > 0 {
		summary.SuccessRate = float64(summary.Found) / float64(summary.Total) * 100
	}

	return summary
}
