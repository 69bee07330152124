package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"geetafreight/ewaybill"
	"geetafreight/parser"
	"geetafreight/repository"
	"geetafreight/utils"
)

const registerSheet = "Sheet1"

// EwayHandler runs the transform for an uploaded Import Job Register and
// Item Report pair and serves the generated workbooks back.
type EwayHandler struct {
	Transformer *ewaybill.Transformer
	LogRepo     repository.LogRepository
	OutputDir   string
}

// Generate handles the multipart upload, runs the transform, saves the
// workbook and appends the processing log.
func (h *EwayHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, ApiResponse{
			Success: false,
			Message: "Invalid request method",
		})
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Invalid upload: " + err.Error(),
		})
		return
	}

	registerFile, _, err := r.FormFile("import_register")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Please upload the Import Job Register (Excel) file.",
		})
		return
	}
	defer registerFile.Close()

	itemFile, _, err := r.FormFile("item_report")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Please upload the Item Report (CSV) file.",
		})
		return
	}
	defer itemFile.Close()

	vehicleNo := strings.TrimSpace(r.FormValue("vehicle_no"))
	if vehicleNo == "" {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Please enter the Vehicle Number.",
		})
		return
	}

	distanceKm, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("distance_km")), 64)
	if err != nil || distanceKm <= 0 {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Please enter a valid Approximate Distance (km) greater than 0.",
		})
		return
	}

	register, err := parser.ReadXLSX(registerFile, registerSheet)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Could not read Import Job Register: " + err.Error(),
		})
		return
	}

	items, err := parser.ReadCSV(itemFile)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "Could not read Item Report: " + err.Error(),
		})
		return
	}

	result, err := h.Transformer.Transform(register, items, vehicleNo, distanceKm)
	if err != nil {
		var schemaErr *ewaybill.SchemaError
		var refErr *ewaybill.ReferentialError
		if errors.As(err, &schemaErr) || errors.As(err, &refErr) {
			writeJSON(w, http.StatusUnprocessableEntity, ApiResponse{
				Success: false,
				Message: err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	if err := os.MkdirAll(h.OutputDir, os.ModePerm); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "failed to create output directory: " + err.Error(),
		})
		return
	}
	savePath := filepath.Join(h.OutputDir, result.Filename)
	if err := os.WriteFile(savePath, result.Workbook, 0644); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "failed to save workbook: " + err.Error(),
		})
		return
	}

	if err := h.LogRepo.Append(result.LogEntries); err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "failed to write processing log: " + err.Error(),
		})
		return
	}

	// Archive to R2 when configured; a failed upload never blocks the run.
	if os.Getenv("R2_BUCKET") != "" {
		if _, err := utils.UploadToR2(result.Workbook, result.Filename, utils.ContentTypeXLSX); err != nil {
			log.Printf("failed to archive %s to R2: %v", result.Filename, err)
		}
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "E-Way Bill successfully generated!",
		Data: map[string]interface{}{
			"filename":    result.Filename,
			"job_numbers": result.JobNumbers,
		},
	})
}

// Download serves a generated workbook as an attachment.
func (h *EwayHandler) Download(w http.ResponseWriter, r *http.Request) {
	filename := filepath.Base(r.URL.Query().Get("file"))
	if filename == "" || filename == "." {
		http.Error(w, "missing file name", http.StatusBadRequest)
		return
	}

	path := filepath.Join(h.OutputDir, filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	http.ServeFile(w, r, path)
}
