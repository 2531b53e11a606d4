// Package export renders a result set into the fixed ERP table and
// serializes it to XLSX or delimited text.
package export

import (
	"strconv"

	"github.com/mercalabs/shelfscan/internal/erp"
)

// Columns is the fixed ERP column order. It never depends on which
// optional fields happen to be populated.
var Columns = []string{
	"nombre",
	"codigoBarras",
	"detalle",
	"cantidad",
	"imagen",
	"precioCompra",
	"precioVenta",
	"stock",
	"stockMinimo",
	"proveedor",
	"categoria",
	"fechaVencimiento",
}

// StatusColumn is the additive internal column used for summaries.
const StatusColumn = "estado"

// Table is a flat, ordered render of a result set.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Options controls table rendering.
type Options struct {
	// IncludeStatus appends the internal estado column.
	IncludeStatus bool
}

// Format renders the result set with the fixed column order. Nil
// operator-filled fields render as empty cells without reordering or
// dropping columns.
func Format(rs *erp.ResultSet, opts Options) Table {
	headers := make([]string, 0, len(Columns)+1)
	headers = append(headers, Columns...)
	if opts.IncludeStatus {
		headers = append(headers, StatusColumn)
	}

	records := rs.All()
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := []string{
			record.Name,
			record.Barcode,
			record.Detail,
			strconv.Itoa(record.Quantity),
			record.SourceImage,
			formatFloat(record.PurchasePrice),
			formatFloat(record.SalePrice),
			formatInt(record.Stock),
			formatInt(record.StockMinimum),
			record.Supplier,
			record.Category,
			formatString(record.ExpiryDate),
		}
		if opts.IncludeStatus {
			row = append(row, record.Status.String())
		}
		rows = append(rows, row)
	}

	return Table{Headers: headers, Rows: rows}
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
