package models

// WaybillPDFData carries one generated run, read back from its workbook,
// into the printable waybill template.
type WaybillPDFData struct {
	Filename   string     // source workbook name
	Columns    []string   // header row
	Rows       [][]string // data rows as rendered in the workbook
	Date       string     // formatted generation date
	Total      float64    // sum of Total Invoice Value
	TotalWords string
	RowCount   int
}
