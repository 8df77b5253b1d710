// Package annotate exports a per-leaf annotation table from a Newick
// document, pairing each raw label with the fields the cleaner recovered
// from it. The CSV feeds downstream spreadsheets; the tree itself is the
// product of the pipeline, the table is the audit trail.
package annotate

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"prolink/internal/newick"
)

// Row is one exported annotation record.
type Row struct {
	Raw        string
	Accessions []string
	Species    string
	Cluster    string
	Canonical  string
}

// Collect gathers one Row per cluster-bearing label span in doc, in
// document order.
func Collect(doc string, c *newick.Cleaner) []Row {
	var rows []Row
	c.EachLabel(doc, func(raw string) {
		p := c.Parse(raw)
		rows = append(rows, Row{
			Raw:        raw,
			Accessions: p.Accessions,
			Species:    strings.Join(p.Species, " "),
			Cluster:    p.Cluster,
			Canonical:  p.Canonical(),
		})
	})
	return rows
}

// WriteCSV writes the annotation table for doc to w and returns the
// number of data rows.
func WriteCSV(w io.Writer, doc string, c *newick.Cleaner) (int, error) {
	rows := Collect(doc, c)

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"raw_label", "accessions", "species", "cluster", "canonical"}); err != nil {
		return 0, fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{r.Raw, strings.Join(r.Accessions, ";"), r.Species, r.Cluster, r.Canonical}
		if err := cw.Write(record); err != nil {
			return 0, fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, fmt.Errorf("flush csv: %w", err)
	}
	return len(rows), nil
}
