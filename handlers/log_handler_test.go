package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"geetafreight/models"
	"geetafreight/repository"
)

func testLogHandler(t *testing.T) *LogHandler {
	t.Helper()
	repo := repository.NewCSVLogRepo(filepath.Join(t.TempDir(), "log.csv"))
	err := repo.Append([]models.LogEntry{
		{JobNo: "J1", BENo: "BE1", VehicleNo: "GJ01AB1234",
			ProcessedAt: time.Date(2025, 3, 14, 10, 30, 0, 0, time.Local)},
		{JobNo: "J2", BENo: "BE2", VehicleNo: "MH04XY9999",
			ProcessedAt: time.Date(2025, 3, 15, 9, 0, 0, 0, time.Local)},
	})
	if err != nil {
		t.Fatalf("seed log: %v", err)
	}
	return &LogHandler{Repo: repo}
}

func TestGetLogJSON(t *testing.T) {
	h := testLogHandler(t)

	rec := httptest.NewRecorder()
	h.GetLog(rec, httptest.NewRequest(http.MethodGet, "/log?date=2025-03-14", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success bool              `json:"success"`
		Message string            `json:"message"`
		Data    []models.LogEntry `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Message != "1 log entries for 2025-03-14" {
		t.Errorf("response = %+v", resp)
	}
	if len(resp.Data) != 1 || resp.Data[0].JobNo != "J1" {
		t.Errorf("data = %v", resp.Data)
	}
}

func TestGetLogCSV(t *testing.T) {
	h := testLogHandler(t)

	rec := httptest.NewRecorder()
	h.GetLog(rec, httptest.NewRequest(http.MethodGet, "/log?date=2025-03-15&format=csv", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "Ewaybill_Log_2025-03-15.csv") {
		t.Errorf("content disposition = %q", got)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "Job No,BE No,Vehicle No,Processed Date\n") {
		t.Errorf("csv header missing: %q", body)
	}
	if !strings.Contains(body, "J2,BE2,MH04XY9999,2025-03-15 09:00:00") {
		t.Errorf("csv row missing: %q", body)
	}
	if strings.Contains(body, "J1") {
		t.Error("csv contains entry from another date")
	}
}

func TestGetLogEmptyDateIsNotAnError(t *testing.T) {
	h := testLogHandler(t)

	rec := httptest.NewRecorder()
	h.GetLog(rec, httptest.NewRequest(http.MethodGet, "/log?date=2025-03-20", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "0 log entries for 2025-03-20") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestGetLogRejectsBadDate(t *testing.T) {
	h := testLogHandler(t)

	for _, q := range []string{"/log", "/log?date=14-03-2025"} {
		rec := httptest.NewRecorder()
		h.GetLog(rec, httptest.NewRequest(http.MethodGet, q, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", q, rec.Code)
		}
	}
}
