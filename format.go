package eurlex

import "strings"

// FormatResultSet renders a result set as tab-separated values with a
// header line. Tabs and newlines inside values are replaced by spaces.
func FormatResultSet(rs *ResultSet) string {
	if rs == nil || len(rs.Columns) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.Join(rs.Columns, "\t"))
	for _, row := range rs.Rows {
		b.WriteByte('\n')
		for i, col := range rs.Columns {
			if i > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(cellReplacer.Replace(row[col]))
		}
	}
	return b.String()
}

var cellReplacer = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ")
