package models

// EwaybillColumns is the exact header order the E-Way Bill bulk upload
// template expects. Do not reorder.
var EwaybillColumns = []string{
	"Sub-type", "Document Type", "Document No", "Document Date",
	"Bill from Company Name", "Bill from GSTIN ID", "Bill from State",
	"Despatch from Address", "Despatch from Place", "Despatch from PIN Code",
	"Bill to State Code", "Bill to Company Name", "Bill to GSTIN ID",
	"Bill to State", "Ship to Address", "Ship to Place", "Ship to PIN Code",
	"Ship to State", "Product Name", "Product Description", "HSN",
	"Quantity", "Unit", "Taxable Value", "CGST Rate", "SGST/UTGST Rate",
	"IGST Rate", "Cess Rate", "CGST Amount", "SGST Amount", "IGST Amount",
	"CESS Amount", "Total Invoice Value", "Transporter Name", "Transporter ID",
	"Approx Distance (km)", "Mode", "Vehicle Type", "Vehicle No",
	"Transporter Doc No", "Transporter Doc Date",
}

// EwaybillRow is one output line of the generated spreadsheet, one per
// joined item row.
type EwaybillRow struct {
	SubType             string  `json:"sub_type"`
	DocumentType        string  `json:"document_type"`
	DocumentNo          string  `json:"document_no"`
	DocumentDate        string  `json:"document_date"`
	BillFromCompanyName string  `json:"bill_from_company_name"`
	BillFromGSTIN       string  `json:"bill_from_gstin"`
	BillFromState       string  `json:"bill_from_state"`
	DespatchFromAddress string  `json:"despatch_from_address"`
	DespatchFromPlace   string  `json:"despatch_from_place"`
	DespatchFromPINCode string  `json:"despatch_from_pin_code"`
	BillToStateCode     string  `json:"bill_to_state_code"`
	BillToCompanyName   string  `json:"bill_to_company_name"`
	BillToGSTIN         string  `json:"bill_to_gstin"`
	BillToState         string  `json:"bill_to_state"`
	ShipToAddress       string  `json:"ship_to_address"`
	ShipToPlace         string  `json:"ship_to_place"`
	ShipToPINCode       string  `json:"ship_to_pin_code"`
	ShipToState         string  `json:"ship_to_state"`
	ProductName         string  `json:"product_name"`
	ProductDescription  string  `json:"product_description"`
	HSN                 string  `json:"hsn"`
	Quantity            string  `json:"quantity"`
	Unit                string  `json:"unit"`
	TaxableValue        float64 `json:"taxable_value"`
	CGSTRate            float64 `json:"cgst_rate"`
	SGSTRate            float64 `json:"sgst_rate"`
	IGSTRate            string  `json:"igst_rate"`
	CessRate            float64 `json:"cess_rate"`
	CGSTAmount          float64 `json:"cgst_amount"`
	SGSTAmount          float64 `json:"sgst_amount"`
	IGSTAmount          float64 `json:"igst_amount"`
	CessAmount          float64 `json:"cess_amount"`
	TotalInvoiceValue   float64 `json:"total_invoice_value"`
	TransporterName     string  `json:"transporter_name"`
	TransporterID       string  `json:"transporter_id"`
	ApproxDistanceKM    float64 `json:"approx_distance_km"`
	Mode                string  `json:"mode"`
	VehicleType         string  `json:"vehicle_type"`
	VehicleNo           string  `json:"vehicle_no"`
	TransporterDocNo    string  `json:"transporter_doc_no"`
	TransporterDocDate  string  `json:"transporter_doc_date"`
}

// Values returns the row in EwaybillColumns order for spreadsheet output.
func (r *EwaybillRow) Values() []interface{} {
	return []interface{}{
		r.SubType, r.DocumentType, r.DocumentNo, r.DocumentDate,
		r.BillFromCompanyName, r.BillFromGSTIN, r.BillFromState,
		r.DespatchFromAddress, r.DespatchFromPlace, r.DespatchFromPINCode,
		r.BillToStateCode, r.BillToCompanyName, r.BillToGSTIN,
		r.BillToState, r.ShipToAddress, r.ShipToPlace, r.ShipToPINCode,
		r.ShipToState, r.ProductName, r.ProductDescription, r.HSN,
		r.Quantity, r.Unit, r.TaxableValue, r.CGSTRate, r.SGSTRate,
		r.IGSTRate, r.CessRate, r.CGSTAmount, r.SGSTAmount, r.IGSTAmount,
		r.CessAmount, r.TotalInvoiceValue, r.TransporterName, r.TransporterID,
		r.ApproxDistanceKM, r.Mode, r.VehicleType, r.VehicleNo,
		r.TransporterDocNo, r.TransporterDocDate,
	}
}
