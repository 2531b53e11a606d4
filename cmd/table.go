package cmd

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/mercalabs/shelfscan/internal/erp"
)

func renderSummary(summary erp.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Resumen del escaneo")

	tw.AppendRow(table.Row{"Total de productos", summary.Total})
	tw.AppendRow(table.Row{"Encontrados", summary.Found})
	tw.AppendRow(table.Row{"No encontrados", summary.NotFound})
	tw.AppendRow(table.Row{"Errores OCR", summary.OCRErrors})
	tw.AppendRow(table.Row{"Con datos de catálogo", summary.CatalogMatched})
	tw.AppendRow(table.Row{"Tasa de éxito", fmt.Sprintf("%.1f%%", summary.SuccessRate)})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
	})

	return tw.Render()
}

func renderProduct(headers []string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	return tw.Render()
}
