package handlers

import (
	"net/http"

	"github.com/mercalabs/shelfscan/internal/erp"
	"github.com/mercalabs/shelfscan/internal/export"
)

// handleSessionExport streams a session's records as XLSX (default) or
// CSV. The estado column is included unless ?status=0 is passed.
func (h *Handler) handleSessionExport(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	session, exists := h.sessionStore.Get(sessionID)
	if !exists {
		h.writeError(w, "Session not found", http.StatusNotFound)
		return
	}

	results := erp.NewResultSet()
	for _, record := range session.Records {
		results.Append(record)
	}

	table := export.Format(results, export.Options{
		IncludeStatus: r.URL.Query().Get("status") != "0",
	})

	switch r.URL.Query().Get("format") {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="shelfscan_`+sessionID+`.csv"`)
		if err := export.WriteCSV(table, w); err != nil {
			h.writeError(w, "Export failed: "+err.Error(), http.StatusInternalServerError)
		}
	case "", "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="shelfscan_`+sessionID+`.xlsx"`)
		if err := export.WriteXLSXTo(table, w); err != nil {
			h.writeError(w, "Export failed: "+err.Error(), http.StatusInternalServerError)
		}
	default:
		h.writeError(w, "Unsupported format", http.StatusBadRequest)
	}
}
