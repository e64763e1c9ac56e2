package eurlex

// Row maps a result variable name to its bound value. Unbound variables
// are absent from the map.
type Row map[string]string

// ResultSet is the tabular result of a SPARQL select query.
type ResultSet struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Len returns the number of rows.
func (rs *ResultSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.Rows)
}

// Values returns the value of column in every row, with "" for unbound cells.
func (rs *ResultSet) Values(column string) []string {
	if rs == nil {
		return nil
	}
	out := make([]string, len(rs.Rows))
	for i, row := range rs.Rows {
		out[i] = row[column]
	}
	return out
}
