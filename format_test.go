package eurlex_test

import (
	"testing"

	"github.com/fwojciec/eurlex"
	"github.com/stretchr/testify/assert"
)

func TestFormatResultSet(t *testing.T) {
	t.Parallel()

	t.Run("renders header and rows in column order", func(t *testing.T) {
		t.Parallel()

		rs := &eurlex.ResultSet{
			Columns: []string{"work", "celex"},
			Rows: []eurlex.Row{
				{"celex": "32016R0679", "work": "w1"},
				{"work": "w2"},
			},
		}

		assert.Equal(t, "work\tcelex\nw1\t32016R0679\nw2\t", eurlex.FormatResultSet(rs))
	})

	t.Run("flattens tabs and newlines in values", func(t *testing.T) {
		t.Parallel()

		rs := &eurlex.ResultSet{
			Columns: []string{"title"},
			Rows:    []eurlex.Row{{"title": "Judgment\tof the Court\non appeal"}},
		}

		assert.Equal(t, "title\nJudgment of the Court on appeal", eurlex.FormatResultSet(rs))
	})

	t.Run("returns empty string without columns", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, eurlex.FormatResultSet(nil))
		assert.Empty(t, eurlex.FormatResultSet(&eurlex.ResultSet{}))
	})
}
