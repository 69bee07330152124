package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"geetafreight/ewaybill"
	"geetafreight/repository"
)

func testEwayHandler(t *testing.T) (*EwayHandler, *repository.CSVLogRepo) {
	t.Helper()
	dir := t.TempDir()
	tr := ewaybill.NewTransformer(nil)
	tr.Now = func() time.Time {
		return time.Date(2025, 3, 14, 10, 30, 0, 0, time.Local)
	}
	logRepo := repository.NewCSVLogRepo(filepath.Join(dir, "Ewaybill_Processing_Log.csv"))
	return &EwayHandler{
		Transformer: tr,
		LogRepo:     logRepo,
		OutputDir:   filepath.Join(dir, "output"),
	}, logRepo
}

func registerWorkbook(t *testing.T, headers []string, rows ...[]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		t.Fatalf("set header: %v", err)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func generateRequest(t *testing.T, register []byte, items, vehicleNo, distanceKm string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if register != nil {
		part, err := mw.CreateFormFile("import_register", "register.xlsx")
		if err != nil {
			t.Fatalf("create register part: %v", err)
		}
		part.Write(register)
	}
	if items != "" {
		part, err := mw.CreateFormFile("item_report", "items.csv")
		if err != nil {
			t.Fatalf("create item part: %v", err)
		}
		part.Write([]byte(items))
	}
	mw.WriteField("vehicle_no", vehicleNo)
	mw.WriteField("distance_km", distanceKm)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/ewaybill/generate", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

const testItemCSV = "Job No,BE No,Assessable Value (INR),SWS Duty Amt,BCD Foregone,Total Basic Duty (INR),IGST,IGST Rate,Product Desc,CTH,Quantity,Unit\n" +
	"J1,BE1,1000,10,5,50,207,18,Widget,8501,10,PCS\n"

func testRegisterXLSX(t *testing.T) []byte {
	return registerWorkbook(t,
		[]string{"Job No", "BE No", "BE Date", "Supplier/Exporter", "Importer", "Importer Address"},
		[]interface{}{"J1", "BE1", "2025-01-15", "Global Exports GmbH", "Acme Industries Ltd", "Acme, 12 Road, Ahmedabad, Gujarat, 380001"},
	)
}

func TestGenerateEndToEnd(t *testing.T) {
	h, logRepo := testEwayHandler(t)

	rec := httptest.NewRecorder()
	h.Generate(rec, generateRequest(t, testRegisterXLSX(t), testItemCSV, "GJ01AB1234", "50"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp ApiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Message != "E-Way Bill successfully generated!" {
		t.Errorf("response = %+v", resp)
	}

	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data = %T", resp.Data)
	}
	filename, _ := data["filename"].(string)
	if filename != "EWB_BE1_20250314_103000.xlsx" {
		t.Errorf("filename = %q", filename)
	}

	saved := filepath.Join(h.OutputDir, filename)
	if _, err := os.Stat(saved); err != nil {
		t.Errorf("saved workbook missing: %v", err)
	}

	entries, err := logRepo.QueryByDate(time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("query log: %v", err)
	}
	if len(entries) != 1 || entries[0].JobNo != "J1" || entries[0].BENo != "BE1" {
		t.Errorf("log entries = %v", entries)
	}
}

func TestGenerateValidation(t *testing.T) {
	h, _ := testEwayHandler(t)

	cases := []struct {
		name    string
		req     *http.Request
		status  int
		message string
	}{
		{
			"missing register",
			generateRequest(t, nil, testItemCSV, "GJ01AB1234", "50"),
			http.StatusBadRequest,
			"Please upload the Import Job Register (Excel) file.",
		},
		{
			"missing item report",
			generateRequest(t, testRegisterXLSX(t), "", "GJ01AB1234", "50"),
			http.StatusBadRequest,
			"Please upload the Item Report (CSV) file.",
		},
		{
			"missing vehicle number",
			generateRequest(t, testRegisterXLSX(t), testItemCSV, "  ", "50"),
			http.StatusBadRequest,
			"Please enter the Vehicle Number.",
		},
		{
			"zero distance",
			generateRequest(t, testRegisterXLSX(t), testItemCSV, "GJ01AB1234", "0"),
			http.StatusBadRequest,
			"Please enter a valid Approximate Distance (km) greater than 0.",
		},
		{
			"unparseable distance",
			generateRequest(t, testRegisterXLSX(t), testItemCSV, "GJ01AB1234", "fifty"),
			http.StatusBadRequest,
			"Please enter a valid Approximate Distance (km) greater than 0.",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Generate(rec, c.req)
			if rec.Code != c.status {
				t.Fatalf("status = %d, want %d", rec.Code, c.status)
			}
			var resp ApiResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Message != c.message {
				t.Errorf("message = %q, want %q", resp.Message, c.message)
			}
		})
	}
}

func TestGenerateSchemaErrorIsUnprocessable(t *testing.T) {
	h, logRepo := testEwayHandler(t)

	register := registerWorkbook(t, []string{"Job No", "BE No"})
	rec := httptest.NewRecorder()
	h.Generate(rec, generateRequest(t, register, testItemCSV, "GJ01AB1234", "50"))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Missing columns in Import Job Register") {
		t.Errorf("body = %s", rec.Body.String())
	}

	entries, err := logRepo.QueryByDate(time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("query log: %v", err)
	}
	if len(entries) != 0 {
		t.Error("failed batch must not be logged")
	}
}

func TestGenerateMissingJobNumberIsUnprocessable(t *testing.T) {
	h, _ := testEwayHandler(t)

	items := testItemCSV + "J9,BE9,1,0,0,0,0,18,Thing,8501,1,PCS\n"
	rec := httptest.NewRecorder()
	h.Generate(rec, generateRequest(t, testRegisterXLSX(t), items, "GJ01AB1234", "50"))

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Missing Job Numbers: J9") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestDownload(t *testing.T) {
	h, _ := testEwayHandler(t)
	if err := os.MkdirAll(h.OutputDir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(h.OutputDir, "EWB_BE1_20250314_103000.xlsx")
	if err := os.WriteFile(path, []byte("workbook bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	h.Download(rec, httptest.NewRequest(http.MethodGet, "/ewaybill/download?file=EWB_BE1_20250314_103000.xlsx", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, "EWB_BE1_20250314_103000.xlsx") {
		t.Errorf("content disposition = %q", got)
	}

	rec = httptest.NewRecorder()
	h.Download(rec, httptest.NewRequest(http.MethodGet, "/ewaybill/download?file=nope.xlsx", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing file: status = %d, want 404", rec.Code)
	}

	// path traversal collapses to the base name
	rec = httptest.NewRecorder()
	h.Download(rec, httptest.NewRequest(http.MethodGet, "/ewaybill/download?file=..%2F..%2Fetc%2Fpasswd", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("traversal attempt: status = %d, want 404", rec.Code)
	}
}
