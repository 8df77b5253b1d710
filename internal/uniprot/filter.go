package uniprot

import (
	"context"
	"fmt"

	"prolink/internal/fasta"
	"prolink/internal/logging"
)

// FilterResult summarizes one filtering pass.
type FilterResult struct {
	Total   int // records in the input
	Kept    int // records written to the output
	Dropped int // records with an accession UniProt does not know
}

// Filter removes records whose accession code fails validation. Records
// without any recognizable accession are kept: absence of a database
// identifier is not evidence against the sequence. The extract function
// maps a FASTA description to its accession code ("" when none).
func (c *Client) Filter(ctx context.Context, inPath, outPath string, extract func(string) string) (*FilterResult, error) {
	recs, err := fasta.ReadFile(inPath)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]string, len(recs))
	var codes []string
	for _, rec := range recs {
		if code := extract(rec.Description); code != "" {
			byID[rec.ID] = code
			codes = append(codes, code)
		}
	}

	valid, err := c.ValidateAll(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("validate accessions: %w", err)
	}

	kept := recs[:0]
	for _, rec := range recs {
		code, has := byID[rec.ID]
		if !has || valid[code] {
			kept = append(kept, rec)
		}
	}

	if err := fasta.WriteFile(outPath, kept); err != nil {
		return nil, err
	}

	res := &FilterResult{Total: len(recs), Kept: len(kept), Dropped: len(recs) - len(kept)}
	logging.New("uniprot").Info("filtered sequences",
		"total", res.Total, "kept", res.Kept, "dropped", res.Dropped, "output", outPath)
	return res, nil
}
