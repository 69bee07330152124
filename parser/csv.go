package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadCSV parses a delimited item report. The first record is the header;
// ragged data rows are tolerated and short rows read as empty cells.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV file")
	}
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		columns[i] = strings.TrimSpace(h)
	}

	table := &Table{Columns: columns}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read CSV row: %w", err)
		}
		table.Rows = append(table.Rows, newRow(columns, record))
	}
	return table, nil
}
