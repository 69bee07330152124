package ewaybill

import (
	"encoding/json"
	"fmt"
	"os"
)

// GSTINTable maps a state or union-territory name to the company GSTIN
// registered there. Lookups on unknown states return "".
type GSTINTable map[string]string

// DefaultGSTINTable returns the registered GSTINs per state.
func DefaultGSTINTable() GSTINTable {
	return GSTINTable{
		"Gujarat":              "24AAACS0764L1ZC",
		"Haryana":              "06AAACS0764L1ZA",
		"Tamil Nadu":           "33AAACS0764L1ZD",
		"Karnataka":            "29AAACS0764L1Z2",
		"Maharashtra":          "27AAACS0764L1Z6",
		"Delhi":                "07AAACS0764L1Z8",
		"West Bengal":          "19AAACS0764L1Z3",
		"Madhya Pradesh":       "23AAACS0764L1ZE",
		"Uttar Pradesh":        "09AAACS0764L1Z4",
		"Goa":                  "30AAACS0764L1ZJ",
		"Puducherry":           "34AAACS0764L1ZB",
		"Chandigarh":           "04AAACS0764L1ZE",
		"Telangana":            "36AAACS0764L1Z7",
		"Chhattisgarh":         "22AAACS0764L1ZG",
		"Jammu & Kashmir":      "01AAACS0764L1ZK",
		"Himachal Pradesh":     "02AAACS0764L1ZI",
		"Punjab":               "03AAACS0764L1ZG",
		"Uttarakhand":          "05AAACS0764L1ZC",
		"Rajasthan":            "08AAACS0764L1Z6",
		"Bihar":                "10AAACS0764L1ZL",
		"Assam":                "18AAACS0764L1Z5",
		"Jharkhand":            "20AAACS0764L1ZK",
		"Odisha":               "21AAACS0764L1ZI",
		"Andhra Pradesh (New)": "37AAACS0764L1Z5",
		"Kerala":               "32AAACS0764L1ZF",
		"Meghalaya":            "17AAACS0764L1Z7",
	}
}

// LoadGSTINTable reads a state to GSTIN mapping from a JSON file, for
// deployments registered under a different PAN.
func LoadGSTINTable(path string) (GSTINTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read GSTIN table: %w", err)
	}
	var table GSTINTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("parse GSTIN table: %w", err)
	}
	return table, nil
}
