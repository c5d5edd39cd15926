// Package report serializes a ranked attribute-weight list, the
// evaluator's primary output, as plain text or CSV.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gocarina/gocsv"

	"github.com/cdipaolo/relieff/relieff"
)

// Row is the CSV-marshaled shape of one ranked attribute.
type Row struct {
	AttributeName string  `csv:"attribute"`
	Weight        float64 `csv:"weight"`
}

// WriteTable writes ranks as an aligned plain-text table.
func WriteTable(w io.Writer, ranks []relieff.Rank) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ATTRIBUTE\tWEIGHT")
	for _, r := range ranks {
		fmt.Fprintf(tw, "%s\t%g\n", r.AttributeName, r.Weight)
	}
	return tw.Flush()
}

// WriteCSV writes ranks as CSV using gocsv's struct-tag marshaling.
func WriteCSV(w io.Writer, ranks []relieff.Rank) error {
	rows := make([]Row, len(ranks))
	for i, r := range ranks {
		rows[i] = Row{AttributeName: r.AttributeName, Weight: r.Weight}
	}
	return gocsv.Marshal(rows, w)
}
