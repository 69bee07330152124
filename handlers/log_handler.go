package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"geetafreight/repository"
)

type LogHandler struct {
	Repo repository.LogRepository
}

// GetLog returns the processing log for one date. JSON by default;
// format=csv streams the same filtered rows as a download. No entries for
// the date is an empty result, not an error.
func (h *LogHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "missing date parameter (expected YYYY-MM-DD)",
		})
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "invalid date: " + dateStr,
		})
		return
	}

	entries, err := h.Repo.QueryByDate(date)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "failed to read processing log: " + err.Error(),
		})
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="Ewaybill_Log_%s.csv"`, dateStr))

		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"Job No", "BE No", "Vehicle No", "Processed Date"})
		for _, e := range entries {
			_ = cw.Write([]string{e.JobNo, e.BENo, e.VehicleNo, e.ProcessedAt.Format("2006-01-02 15:04:05")})
		}
		cw.Flush()
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: fmt.Sprintf("%d log entries for %s", len(entries), dateStr),
		Data:    entries,
	})
}
