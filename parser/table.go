package parser

// Table is a header-addressed view of one uploaded tabular file. Cells
// missing from a ragged row read back as "".
type Table struct {
	Columns []string
	Rows    []Row
}

type Row map[string]string

// Missing returns the required columns absent from the table, in the order
// they were asked for.
func (t *Table) Missing(required []string) []string {
	have := make(map[string]struct{}, len(t.Columns))
	for _, c := range t.Columns {
		have[c] = struct{}{}
	}
	var missing []string
	for _, c := range required {
		if _, ok := have[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}

func newRow(columns, cells []string) Row {
	row := make(Row, len(columns))
	for i, c := range columns {
		if i < len(cells) {
			row[c] = cells[i]
		} else {
			row[c] = ""
		}
	}
	return row
}
