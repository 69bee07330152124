package repository

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// PDFRepository reads generated workbooks back for PDF rendering.
type PDFRepository struct {
	OutputDir string
}

func NewPDFRepository(outputDir string) *PDFRepository {
	return &PDFRepository{OutputDir: outputDir}
}

// GetRunForPDF loads a generated workbook by filename. Returns nil columns
// when the file does not exist.
func (r *PDFRepository) GetRunForPDF(filename string) ([]string, [][]string, error) {
	path := filepath.Join(r.OutputDir, filepath.Base(filename))
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("workbook %s has no rows", filename)
	}

	return rows[0], rows[1:], nil
}
