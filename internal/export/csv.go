package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// WriteCSV writes the table as delimited text to w.
func WriteCSV(t Table, w io.Writer) error {
	if len(t.Rows) == 0 {
		return fmt.Errorf("no results to export")
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(t.Headers); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteCSVFile writes the table to a file, creating parent directories
// as needed.
func WriteCSVFile(t Table, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(t, f); err != nil {
		return err
	}

	slog.Info("Results exported", "path", path, "rows", len(t.Rows))
	return nil
}
