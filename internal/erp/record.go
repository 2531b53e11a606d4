// Package erp holds the canonical inventory record and the logic that
// turns extracted candidates and catalog matches into export-ready rows.
package erp

import "fmt"

// Sentinel product names the vision model (or the extraction boundary)
// emits instead of real data.
const (
	SentinelNotDetected = "NO_DETECTADO"
	SentinelError       = "ERROR"
)

// Status classifies a record's detection outcome. It is assigned once at
// merge time and carried as typed data from there on.
type Status int

const (
	// StatusFound means a product name was detected in the image,
	// whether or not the catalog lookup succeeded.
	StatusFound Status = iota
	// StatusNotDetected means the vision model found no products.
	StatusNotDetected
	// StatusOCRError means the extraction call itself failed.
	StatusOCRError
)

// String returns the ERP label used in exports and summaries.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "ENCONTRADO"
	case StatusNotDetected:
		return "NO_ENCONTRADO"
	case StatusOCRError:
		return "ERROR_OCR"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MarshalJSON renders the status as its ERP label.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON parses an ERP label back into its status value.
func (s *Status) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"ENCONTRADO"`:
		*s = StatusFound
	case `"NO_ENCONTRADO"`:
		*s = StatusNotDetected
	case `"ERROR_OCR"`:
		*s = StatusOCRError
	default:
		return fmt.Errorf("unknown status %s", data)
	}
	return nil
}

// Candidate is one product entry extracted from a shelf image before
// catalog enrichment. Quantity zero means the model supplied no explicit
// count and the default of 1 applies at merge time.
type Candidate struct {
	Name     string
	Detail   string
	Supplier string
	Category string
	Quantity int
}

// Record is one draft inventory row in the ERP schema. Price, stock and
// expiry fields are always nil at creation; operators fill them in after
// the export is reviewed.
type Record struct {
	Name           string   `json:"nombre"`
	Barcode        string   `json:"codigoBarras"`
	Detail         string   `json:"detalle"`
	Quantity       int      `json:"cantidad"`
	SourceImage    string   `json:"imagen"`
	PurchasePrice  *float64 `json:"precioCompra"`
	SalePrice      *float64 `json:"precioVenta"`
	Stock          *int     `json:"stock"`
	StockMinimum   *int     `json:"stockMinimo"`
	Supplier       string   `json:"proveedor"`
	Category       string   `json:"categoria"`
	ExpiryDate     *string  `json:"fechaVencimiento"`
	Status         Status   `json:"estado"`
	CatalogMatched bool     `json:"catalogo"`
}
