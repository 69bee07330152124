package ewaybill

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"geetafreight/models"
	"geetafreight/parser"
)

// Fixed shipment metadata for import consignments. Goods always despatch
// from the air cargo complex and move by road under a regular vehicle.
const (
	subTypeImport       = "Import"
	documentTypeBE      = "Bill of Entry"
	billFromGSTIN       = "URP"
	billFromState       = "99"
	despatchFromAddress = "AIR CARGO COMPLEX"
	despatchFromPlace   = "SAHAR ANDHERI EAST"
	despatchFromPIN     = "400099"
	billToStateCode     = "27"
	transporterName     = "Geeta Freight Forwarders Pvt Ltd"
	transporterID       = "27AAACG8785D1ZE"
	transportMode       = "Road"
	vehicleTypeRegular  = "Regular"
	transporterDocNo    = "LR"

	productNameLimit = 100
	outputDateLayout = "02-01-2006"
)

// RequiredRegisterColumns must all be present in the Import Job Register.
var RequiredRegisterColumns = []string{
	"Job No", "BE No", "BE Date", "Supplier/Exporter", "Importer", "Importer Address",
}

// RequiredItemColumns must all be present in the Item Report.
var RequiredItemColumns = []string{
	"Job No", "Assessable Value (INR)", "SWS Duty Amt", "BCD Foregone",
	"Total Basic Duty (INR)", "IGST", "IGST Rate", "Product Desc", "CTH",
	"Quantity", "Unit",
}

// numericItemColumns are coerced leniently: unparseable or missing values
// become 0 rather than failing the batch.
var numericItemColumns = []string{
	"Assessable Value (INR)", "SWS Duty Amt", "BCD Foregone",
	"Total Basic Duty (INR)", "IGST",
}

// Result is the outcome of one successful run.
type Result struct {
	Workbook   []byte
	Filename   string
	JobNumbers []string
	Rows       []models.EwaybillRow
	LogEntries []models.LogEntry
}

// Transformer joins an Import Job Register against an Item Report and
// derives one E-Way Bill line per matched item.
type Transformer struct {
	GSTIN GSTINTable
	Now   func() time.Time
}

func NewTransformer(gstin GSTINTable) *Transformer {
	if gstin == nil {
		gstin = DefaultGSTINTable()
	}
	return &Transformer{GSTIN: gstin, Now: time.Now}
}

// Transform validates, joins and derives the output batch. Exactly one of
// (Result, error) is non-nil. Only SchemaError and ReferentialError can
// fail a batch; everything downstream degrades per-row.
func (t *Transformer) Transform(register, items *parser.Table, vehicleNo string, distanceKm float64) (*Result, error) {
	if err := checkSchema(register, items); err != nil {
		return nil, err
	}
	if err := checkJobNumbers(register, items); err != nil {
		return nil, err
	}

	now := t.Now()
	joined := join(register, items)

	var (
		result    Result
		seenJobs  = make(map[string]struct{})
		seenPairs = make(map[[2]string]struct{})
	)

	for _, row := range joined {
		jobNo := row["Job No"]
		if _, ok := seenJobs[jobNo]; !ok {
			seenJobs[jobNo] = struct{}{}
			result.JobNumbers = append(result.JobNumbers, jobNo)
		}

		pair := [2]string{jobNo, row["BE No"]}
		if _, ok := seenPairs[pair]; !ok {
			seenPairs[pair] = struct{}{}
			result.LogEntries = append(result.LogEntries, models.LogEntry{
				JobNo:       jobNo,
				BENo:        row["BE No"],
				VehicleNo:   vehicleNo,
				ProcessedAt: now,
			})
		}

		result.Rows = append(result.Rows, t.deriveRow(row, vehicleNo, distanceKm, now))
	}

	workbook, err := buildWorkbook(result.Rows)
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	result.Workbook = workbook

	firstBE := ""
	if len(joined) > 0 {
		firstBE = joined[0]["BE No"]
	}
	result.Filename = fmt.Sprintf("EWB_%s_%s.xlsx", firstBE, now.Format("20060102_150405"))

	return &result, nil
}

// deriveRow computes the tax and address fields for one joined line item.
func (t *Transformer) deriveRow(row parser.Row, vehicleNo string, distanceKm float64, now time.Time) models.EwaybillRow {
	assessable := parseAmount(row["Assessable Value (INR)"])
	swsDuty := parseAmount(row["SWS Duty Amt"])
	bcdForegone := parseAmount(row["BCD Foregone"])
	basicDuty := parseAmount(row["Total Basic Duty (INR)"])
	igst := parseAmount(row["IGST"])

	taxableValue := assessable + swsDuty + bcdForegone + basicDuty
	invoiceValue := taxableValue + igst

	importerAddress := row["Importer Address"]
	billToState := stateFromAddress(importerAddress)
	billToGSTIN := t.GSTIN[billToState]
	stateCode := ""
	if len(billToGSTIN) >= 2 {
		stateCode = billToGSTIN[:2]
	}

	shipToPIN, cleanAddress := extractPINCode(importerAddress)
	shipToAddress, shipToPlace := splitShipTo(cleanAddress)

	product := truncate(row["Product Desc"], productNameLimit)

	return models.EwaybillRow{
		SubType:             subTypeImport,
		DocumentType:        documentTypeBE,
		DocumentNo:          row["BE No"],
		DocumentDate:        formatBEDate(row["BE Date"]),
		BillFromCompanyName: row["Supplier/Exporter"],
		BillFromGSTIN:       billFromGSTIN,
		BillFromState:       billFromState,
		DespatchFromAddress: despatchFromAddress,
		DespatchFromPlace:   despatchFromPlace,
		DespatchFromPINCode: despatchFromPIN,
		BillToStateCode:     billToStateCode,
		BillToCompanyName:   row["Importer"],
		BillToGSTIN:         billToGSTIN,
		BillToState:         stateCode,
		ShipToAddress:       shipToAddress,
		ShipToPlace:         shipToPlace,
		ShipToPINCode:       shipToPIN,
		ShipToState:         stateCode,
		ProductName:         product,
		ProductDescription:  product,
		HSN:                 row["CTH"],
		Quantity:            row["Quantity"],
		Unit:                row["Unit"],
		TaxableValue:        taxableValue,
		IGSTRate:            row["IGST Rate"],
		IGSTAmount:          igst,
		TotalInvoiceValue:   invoiceValue,
		TransporterName:     transporterName,
		TransporterID:       transporterID,
		ApproxDistanceKM:    distanceKm,
		Mode:                transportMode,
		VehicleType:         vehicleTypeRegular,
		VehicleNo:           vehicleNo,
		TransporterDocNo:    transporterDocNo,
		TransporterDocDate:  now.Format(outputDateLayout),
	}
}

func checkSchema(register, items *parser.Table) error {
	missingRegister := register.Missing(RequiredRegisterColumns)
	missingItems := items.Missing(RequiredItemColumns)
	if len(missingRegister) > 0 || len(missingItems) > 0 {
		return &SchemaError{RegisterMissing: missingRegister, ItemsMissing: missingItems}
	}
	return nil
}

func checkJobNumbers(register, items *parser.Table) error {
	known := make(map[string]struct{}, len(register.Rows))
	for _, row := range register.Rows {
		known[row["Job No"]] = struct{}{}
	}

	missing := make(map[string]struct{})
	for _, row := range items.Rows {
		if _, ok := known[row["Job No"]]; !ok {
			missing[row["Job No"]] = struct{}{}
		}
	}
	if len(missing) == 0 {
		return nil
	}

	jobNos := make([]string, 0, len(missing))
	for j := range missing {
		jobNos = append(jobNos, j)
	}
	sort.Strings(jobNos)
	return &ReferentialError{JobNos: jobNos}
}

// join inner-joins item rows to register rows on (Job No, BE No). Register
// columns are merged into the item row; item rows whose pair has no match
// are dropped, which is how items under a different BE of the same job fall
// out of the batch.
func join(register, items *parser.Table) []parser.Row {
	type key struct{ jobNo, beNo string }
	registerByKey := make(map[key]parser.Row, len(register.Rows))
	for _, row := range register.Rows {
		registerByKey[key{row["Job No"], row["BE No"]}] = row
	}

	var joined []parser.Row
	for _, item := range items.Rows {
		match, ok := registerByKey[key{item["Job No"], item["BE No"]}]
		if !ok {
			continue
		}
		merged := make(parser.Row, len(item)+len(match))
		for k, v := range item {
			merged[k] = v
		}
		for k, v := range match {
			merged[k] = v
		}
		joined = append(joined, merged)
	}
	return joined
}

// parseAmount coerces a numeric cell, tolerating thousands separators and
// surrounding whitespace. Anything unparseable is 0 by policy.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

var beDateLayouts = []string{
	"2006-01-02", "02-01-2006", "2006-01-02 15:04:05", "01-02-06",
	"02/01/2006", "2/1/2006", "2006/01/02",
}

// formatBEDate renders the BE date as dd-mm-yyyy when the cell parses;
// otherwise the raw text passes through.
func formatBEDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range beDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format(outputDateLayout)
		}
	}
	return s
}

// truncate limits s to n characters, not bytes, so multibyte product
// descriptions are never cut mid-rune.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
