package export

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// SheetName is the single sheet every workbook carries.
const SheetName = "Productos"

// maxColumnWidth caps auto-sized columns.
const maxColumnWidth = 50

// WriteXLSX writes the table to path as a single-sheet workbook,
// creating parent directories as needed.
func WriteXLSX(t Table, path string) error {
	if len(t.Rows) == 0 {
		return fmt.Errorf("no results to export")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := buildWorkbook(t)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	slog.Info("Results exported", "path", path, "rows", len(t.Rows))
	return nil
}

// WriteXLSXTo streams the workbook to w, for HTTP downloads.
func WriteXLSXTo(t Table, w io.Writer) error {
	if len(t.Rows) == 0 {
		return fmt.Errorf("no results to export")
	}

	f, err := buildWorkbook(t)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func buildWorkbook(t Table) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := writeRow(f, 1, t.Headers); err != nil {
		f.Close()
		return nil, err
	}
	for i, row := range t.Rows {
		if err := writeRow(f, i+2, row); err != nil {
			f.Close()
			return nil, err
		}
	}

	if err := autoSizeColumns(f, t); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

func writeRow(f *excelize.File, rowNum int, cells []string) error {
	values := make([]interface{}, len(cells))
	for i, cell := range cells {
		values[i] = cell
	}
	cellRef, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, cellRef, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}

// autoSizeColumns sets each column width to its longest cell plus
// padding, capped at maxColumnWidth.
func autoSizeColumns(f *excelize.File, t Table) error {
	for col := range t.Headers {
		width := utf8.RuneCountInString(t.Headers[col])
		for _, row := range t.Rows {
			if col < len(row) {
				if n := utf8.RuneCountInString(row[col]); n > width {
					width = n
				}
			}
		}

		width += 2
		if width > maxColumnWidth {
			width = maxColumnWidth
		}

		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, name, name, float64(width)); err != nil {
			return fmt.Errorf("failed to size column %s: %w", name, err)
		}
	}
	return nil
}
