package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"geetafreight/repository"
	"geetafreight/utils"
)

type PDFHandler struct {
	Repo     *repository.PDFRepository
	SavePath string
}

// WaybillPDF renders a previously generated workbook as a printable PDF
// and saves it beside the workbook.
func (h *PDFHandler) WaybillPDF(w http.ResponseWriter, r *http.Request) {
	filename := filepath.Base(r.URL.Query().Get("file"))
	if filename == "" || filename == "." {
		http.Error(w, "missing file name", http.StatusBadRequest)
		return
	}

	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./output"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		http.Error(w, "failed to create save directory: "+err.Error(), http.StatusInternalServerError)
		return
	}

	pdfBytes, err := utils.GenerateWaybillPDF(h.Repo, filename)
	if err != nil {
		http.Error(w, "failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(pdfBytes) == 0 {
		http.Error(w, "no generated E-Way Bill found", http.StatusNotFound)
		return
	}

	pdfName := strings.TrimSuffix(filename, filepath.Ext(filename)) + ".pdf"
	savePath := filepath.Join(saveDir, pdfName)
	if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
		http.Error(w, "failed to save PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(fmt.Sprintf(`{"success":true,"file":"%s"}`, pdfName)))
}
