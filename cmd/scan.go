package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mercalabs/shelfscan/internal/export"
	"github.com/mercalabs/shelfscan/internal/images"
	"github.com/mercalabs/shelfscan/internal/openfoodfacts"
	"github.com/mercalabs/shelfscan/internal/scanner"
)

// defaultOutput is where results land when --output is not given.
var defaultOutput = filepath.Join("output", "shelfscan_results.xlsx")

func newScanCmd() *cobra.Command {
	var (
		output       string
		apiKey       string
		providerName string
		model        string
		format       string
		demoMode     bool
	)

	cmd := &cobra.Command{
		Use:   "scan <folder>",
		Short: "Scan a folder of shelf photos and export ERP inventory rows",
		Long: `Scans every supported image in the folder: product names are extracted
with the vision model, each candidate is looked up in Open Food Facts,
and the merged records are exported to a spreadsheet.`,
		Example: `  # Scan with the GEMINI_API_KEY from the environment or .env
  shelfscan scan ./photos

  # Custom output file and CSV format
  shelfscan scan ./photos -o inventario.csv --format csv

  # Try it without an API key
  shelfscan scan ./photos --demo`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, providerLabel, err := newProvider(providerName, apiKey, demoMode)
			if err != nil {
				return err
			}
			if model == "" {
				model = defaultModelFor(providerLabel)
			}

			paths, err := images.ListFolder(args[0])
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				slog.Warn("No images found in folder", "folder", args[0],
					"supported", strings.Join(images.SupportedExtensions(), ", "))
				return nil
			}

			service := scanner.New(provider, openfoodfacts.NewClient(""))
			service.Model = model

			slog.Info("Starting scan", "images", len(paths), "provider", providerLabel, "model", model)

			results, scanErr := service.ScanPaths(cmd.Context(), paths)
			if scanErr != nil {
				// Interrupted: keep already-appended records out of the
				// export and let main report exit code 130.
				return scanErr
			}

			if format == "csv" && output == defaultOutput {
				output = strings.TrimSuffix(output, ".xlsx") + ".csv"
			}

			table := export.Format(results, export.Options{IncludeStatus: true})
			switch format {
			case "xlsx":
				if err := export.WriteXLSX(table, output); err != nil {
					return fmt.Errorf("export failed: %w", err)
				}
			case "csv":
				if err := export.WriteCSVFile(table, output); err != nil {
					return fmt.Errorf("export failed: %w", err)
				}
			default:
				return fmt.Errorf("unsupported format: %s", format)
			}

			fmt.Println(renderSummary(results.Summary()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", defaultOutput, "Output file path")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Gemini API key (falls back to GEMINI_API_KEY, then .env)")
	cmd.Flags().StringVar(&providerName, "provider", "gemini", "Vision provider: gemini, ollama, openai")
	cmd.Flags().StringVar(&model, "model", "", "Vision model (defaults per provider)")
	cmd.Flags().StringVar(&format, "format", "xlsx", "Export format: xlsx or csv")
	cmd.Flags().BoolVar(&demoMode, "demo", false, "Demo mode: simulated detections, no API key needed")

	return cmd
}
