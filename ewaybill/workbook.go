package ewaybill

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"geetafreight/models"
)

const outputSheet = "Sheet1"

// buildWorkbook materialises the batch as an XLSX buffer in the bulk
// upload column order.
func buildWorkbook(rows []models.EwaybillRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(models.EwaybillColumns))
	for i, c := range models.EwaybillColumns {
		header[i] = c
	}
	if err := f.SetSheetRow(outputSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := rows[i].Values()
		if err := f.SetSheetRow(outputSheet, cell, &values); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
