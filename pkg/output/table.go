// pkg/output/table.go

package output

import (
	"bytes"
	"io"
	"strings"
	"text/tabwriter"
)

// Table collects rows and writes them as space-aligned columns. Cells must
// not contain tabs or ANSI escapes; both break alignment.
type Table struct {
	headers []string
	rows    [][]string
	rule    string
}

// NewTable starts a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers, rule: "-"}
}

// WithRule sets the character drawn under the headers; empty disables it.
func (t *Table) WithRule(rule string) *Table {
	t.rule = rule
	return t
}

// Row appends one row. Missing trailing cells render empty.
func (t *Table) Row(values ...string) *Table {
	t.rows = append(t.rows, values)
	return t
}

func (t *Table) Len() int { return len(t.rows) }

// WriteTo renders the table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	if len(t.headers) > 0 {
		writeCells(tw, t.headers)
		if t.rule != "" {
			rules := make([]string, len(t.headers))
			for i, h := range t.headers {
				rules[i] = strings.Repeat(t.rule, len(h))
			}
			writeCells(tw, rules)
		}
	}
	for _, row := range t.rows {
		writeCells(tw, row)
	}
	if err := tw.Flush(); err != nil {
		return 0, err
	}

	n, err := w.Write(buf.Bytes())
	return int64(n), err
}

// tabwriter buffers in memory, so these writes cannot fail before Flush.
func writeCells(tw *tabwriter.Writer, cells []string) {
	_, _ = io.WriteString(tw, strings.Join(cells, "\t")+"\n")
}
