package utils

import (
	"bytes"
	"context"
	"html/template"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"geetafreight/models"
	"geetafreight/repository"
)

const waybillTemplate = `
<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
@page {
	size: A4 landscape;
	margin: 20px;
}
body {
	font-family: Arial, Helvetica, sans-serif;
	font-size: 9px;
	margin: 0;
	padding: 0;
}
h1 {
	font-size: 16px;
	text-align: center;
	margin: 4px 0;
}
p.meta {
	text-align: center;
	margin: 2px 0 10px 0;
}
table {
	border-collapse: collapse;
	width: 100%;
}
th, td {
	border: 1px solid #444;
	padding: 2px 4px;
	text-align: left;
	word-break: break-word;
}
tr {
	page-break-inside: avoid;
}
tfoot td {
	font-weight: bold;
}
</style>
</head>
<body>
<h1>E-Way Bill - Geeta Freight Forwarders Pvt Ltd</h1>
<p class="meta">{{.Filename}} &mdash; generated {{.Date}} &mdash; {{.RowCount}} line item(s)</p>
<table>
	<thead>
		<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
	</thead>
	<tbody>
		{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}
	</tbody>
</table>
<p>Total Invoice Value: {{printf "%.2f" .Total}} ({{.TotalWords}})</p>
</body>
</html>`

// GenerateWaybillPDF renders a generated run as a printable PDF via
// headless Chrome. Returns (nil, nil) when the workbook does not exist.
func GenerateWaybillPDF(repo *repository.PDFRepository, filename string) ([]byte, error) {
	columns, rows, err := repo.GetRunForPDF(filename)
	if err != nil {
		return nil, err
	}
	if columns == nil {
		return nil, nil
	}

	total := sumColumn(columns, rows, "Total Invoice Value")

	data := models.WaybillPDFData{
		Filename:   filename,
		Columns:    columns,
		Rows:       rows,
		Date:       time.Now().Format("02-Jan-2006"),
		Total:      total,
		TotalWords: NumberToCurrencyWords(total),
		RowCount:   len(rows),
	}

	tmpl, err := template.New("waybill").Parse(waybillTemplate)
	if err != nil {
		return nil, err
	}
	var html bytes.Buffer
	if err := tmpl.Execute(&html, data); err != nil {
		return nil, err
	}

	tmpDir := os.TempDir()
	tmpHTML := filepath.Join(tmpDir, "ewaybill_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, html.Bytes(), 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithLandscape(true).
				WithPaperWidth(11.7). // A4 landscape
				WithPaperHeight(8.27).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}

func sumColumn(columns []string, rows [][]string, name string) float64 {
	idx := -1
	for i, c := range columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0
	}

	var total float64
	for _, row := range rows {
		if idx >= len(row) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
		if err == nil {
			total += v
		}
	}
	return total
}
