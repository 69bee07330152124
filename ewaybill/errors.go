package ewaybill

import (
	"fmt"
	"strings"
)

// SchemaError reports every required column absent from either input,
// grouped by source. It aborts the batch before any row is processed.
type SchemaError struct {
	RegisterMissing []string
	ItemsMissing    []string
}

func (e *SchemaError) Error() string {
	var b strings.Builder
	if len(e.RegisterMissing) > 0 {
		fmt.Fprintf(&b, "Missing columns in Import Job Register: %s. ", strings.Join(e.RegisterMissing, ", "))
	}
	if len(e.ItemsMissing) > 0 {
		fmt.Fprintf(&b, "Missing columns in Item Report: %s.", strings.Join(e.ItemsMissing, ", "))
	}
	return strings.TrimSpace(b.String())
}

// ReferentialError reports job numbers that appear in the item report but
// not in the job register. It aborts the batch before the join.
type ReferentialError struct {
	JobNos []string
}

func (e *ReferentialError) Error() string {
	return "Missing Job Numbers: " + strings.Join(e.JobNos, ", ")
}
