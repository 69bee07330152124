package ewaybill

import (
	"regexp"
	"strings"
)

var pinCodeRe = regexp.MustCompile(`\b\d{6}\b`)

// stateFromAddress takes the second-to-last comma-separated segment of the
// importer address as the state name.
func stateFromAddress(address string) string {
	parts := strings.Split(strings.TrimSpace(address), ",")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[len(parts)-2])
}

// extractPINCode finds the last 6-digit token in the raw address. The
// returned remainder is everything before that token, trimmed; when no
// token exists the address comes back unmodified with an empty PIN.
func extractPINCode(address string) (pin, remainder string) {
	matches := pinCodeRe.FindAllString(address, -1)
	if len(matches) == 0 {
		return "", address
	}
	pin = matches[len(matches)-1]
	if idx := strings.Index(address, pin); idx >= 0 {
		remainder = strings.TrimSpace(address[:idx])
	} else {
		remainder = address
	}
	return pin, remainder
}

// splitShipTo divides the cleaned address into ship-to address and place at
// the word midpoint. This mirrors the bulk-template convention the ops team
// has always used; it is a positional split, not a semantic one.
func splitShipTo(address string) (shipToAddress, shipToPlace string) {
	words := strings.Fields(address)
	mid := len(words) / 2
	return strings.Join(words[:mid], " "), strings.Join(words[mid:], " ")
}
