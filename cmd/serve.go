package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/mercalabs/shelfscan/internal/handlers"
	"github.com/mercalabs/shelfscan/internal/openfoodfacts"
	"github.com/mercalabs/shelfscan/internal/scanner"
)

func newServeCmd() *cobra.Command {
	var (
		port         string
		apiKey       string
		providerName string
		model        string
		demoMode     bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web API for interactive shelf scanning",
		Long: `Starts a JSON API that accepts shelf image uploads (or image URLs),
runs them through the extraction pipeline, and serves the resulting
sessions and their XLSX/CSV exports.`,
		Example: `  # Start on the default port 8888
  shelfscan serve

  # Demo mode on a custom port
  shelfscan serve --port 3000 --demo`,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, providerLabel, err := newProvider(providerName, apiKey, demoMode)
			if err != nil {
				return err
			}
			if model == "" {
				model = defaultModelFor(providerLabel)
			}

			service := scanner.New(provider, openfoodfacts.NewClient(""))
			service.Model = model
			handler := handlers.New(service, providerLabel)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/scan", handler.HandleScan)
			mux.HandleFunc("/api/sessions", handler.HandleSessions)
			mux.HandleFunc("/api/sessions/", handler.HandleSessionDetail)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Shelfscan API available", "addr", addr, "provider", providerLabel, "model", model)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8888", "Port to listen on")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Gemini API key (falls back to GEMINI_API_KEY, then .env)")
	cmd.Flags().StringVar(&providerName, "provider", "gemini", "Vision provider: gemini, ollama, openai")
	cmd.Flags().StringVar(&model, "model", "", "Vision model (defaults per provider)")
	cmd.Flags().BoolVar(&demoMode, "demo", false, "Demo mode: simulated detections, no API key needed")

	return cmd
}
