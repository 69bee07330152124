package ewaybill

import "testing"

func TestStateFromAddress(t *testing.T) {
	cases := []struct{ address, want string }{
		{"123 Street, City, State, 400099", "State"},
		{"Plot 5, MIDC, Pune, Maharashtra, 411001", "Maharashtra"},
		{"single segment", ""},
		{"", ""},
	}
	for _, c := range cases {
		if got := stateFromAddress(c.address); got != c.want {
			t.Errorf("stateFromAddress(%q) = %q, want %q", c.address, got, c.want)
		}
	}
}

func TestExtractPINCode(t *testing.T) {
	cases := []struct{ address, wantPIN, wantRest string }{
		{"123 Street, City, State, 400099", "400099", "123 Street, City, State,"},
		// two PIN-shaped tokens: the last one wins
		{"110001 Building, Delhi, 110002", "110002", "110001 Building, Delhi,"},
		{"no pin here", "", "no pin here"},
		// seven digits is not a PIN
		{"Plot 1234567, Mumbai", "", "Plot 1234567, Mumbai"},
	}
	for _, c := range cases {
		pin, rest := extractPINCode(c.address)
		if pin != c.wantPIN || rest != c.wantRest {
			t.Errorf("extractPINCode(%q) = (%q, %q), want (%q, %q)",
				c.address, pin, rest, c.wantPIN, c.wantRest)
		}
	}
}

func TestSplitShipTo(t *testing.T) {
	cases := []struct{ in, wantAddr, wantPlace string }{
		{"one two three four", "one two", "three four"},
		{"one two three", "one", "two three"},
		{"one", "", "one"},
		{"", "", ""},
	}
	for _, c := range cases {
		addr, place := splitShipTo(c.in)
		if addr != c.wantAddr || place != c.wantPlace {
			t.Errorf("splitShipTo(%q) = (%q, %q), want (%q, %q)",
				c.in, addr, place, c.wantAddr, c.wantPlace)
		}
	}
}

func TestDefaultGSTINTable(t *testing.T) {
	table := DefaultGSTINTable()
	if got := table["Gujarat"]; got != "24AAACS0764L1ZC" {
		t.Errorf("Gujarat GSTIN = %q", got)
	}
	if got := table["Maharashtra"]; len(got) < 2 || got[:2] != "27" {
		t.Errorf("Maharashtra GSTIN = %q, want 27 prefix", got)
	}
	if _, ok := table["Atlantis"]; ok {
		t.Error("unexpected entry for unknown state")
	}
}
