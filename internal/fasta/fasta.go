// Package fasta reads and writes protein FASTA files for the filtering
// step ahead of alignment. Records are held whole: the pipeline works on
// sequence sets small enough to sort and filter in memory.
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one FASTA entry. ID is the first whitespace-delimited token
// of the header; Description is the full header line without the ">".
type Record struct {
	ID          string
	Description string
	Seq         []byte
}

// Read parses all records from r. Sequence lines are concatenated;
// blank lines are skipped. A sequence line before any header is an error.
func Read(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	// Some exporters emit the whole sequence on a single line.
	const maxLine = 16 * 1024 * 1024
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		recs []Record
		cur  *Record
	)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			recs = append(recs, Record{})
			cur = &recs[len(recs)-1]
			cur.Description = string(line[1:])
			if fields := strings.Fields(cur.Description); len(fields) > 0 {
				cur.ID = fields[0]
			}
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("fasta: sequence data before first header")
		}
		cur.Seq = append(cur.Seq, line...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta: scan: %w", err)
	}
	return recs, nil
}

// ReadFile parses all records from the file at path.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fasta: open: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// wrapWidth is the sequence line width used on output.
const wrapWidth = 60

// Write emits records to w, wrapping sequences at 60 columns.
func Write(w io.Writer, recs []Record) error {
	bw := bufio.NewWriter(w)
	for _, rec := range recs {
		header := rec.Description
		if header == "" {
			header = rec.ID
		}
		if _, err := fmt.Fprintf(bw, ">%s\n", header); err != nil {
			return fmt.Errorf("fasta: write header: %w", err)
		}
		for off := 0; off < len(rec.Seq); off += wrapWidth {
			end := off + wrapWidth
			if end > len(rec.Seq) {
				end = len(rec.Seq)
			}
			if _, err := fmt.Fprintf(bw, "%s\n", rec.Seq[off:end]); err != nil {
				return fmt.Errorf("fasta: write sequence: %w", err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("fasta: flush: %w", err)
	}
	return nil
}

// WriteFile writes records to path, truncating any existing file.
func WriteFile(path string, recs []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("fasta: create: %w", err)
	}
	if err := Write(f, recs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
