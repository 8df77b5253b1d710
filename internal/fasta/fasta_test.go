package fasta

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sample = `>WP_058328214.1 alkene reductase [Sinorhizobium sp. Sb3]
MKLNARP
QWERTY
>WP_062476070.1 MULTISPECIES: alkene reductase [unclassified Rhizobium]

MMMM
`

func TestRead(t *testing.T) {
	recs, err := Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	want := []Record{
		{
			ID:          "WP_058328214.1",
			Description: "WP_058328214.1 alkene reductase [Sinorhizobium sp. Sb3]",
			Seq:         []byte("MKLNARPQWERTY"),
		},
		{
			ID:          "WP_062476070.1",
			Description: "WP_062476070.1 MULTISPECIES: alkene reductase [unclassified Rhizobium]",
			Seq:         []byte("MMMM"),
		},
	}
	if diff := cmp.Diff(want, recs); diff != "" {
		t.Errorf("records (-want +got):\n%s", diff)
	}
}

func TestRead_SequenceBeforeHeader(t *testing.T) {
	if _, err := Read(strings.NewReader("MKLN\n>id\nMM\n")); err == nil {
		t.Fatal("expected error for sequence before header")
	}
}

func TestWrite_WrapsAt60(t *testing.T) {
	long := bytes.Repeat([]byte("A"), 130)
	var buf bytes.Buffer
	if err := Write(&buf, []Record{{ID: "x", Description: "x test", Seq: long}}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 3 sequence lines", len(lines))
	}
	if lines[0] != ">x test" {
		t.Errorf("header = %q", lines[0])
	}
	if len(lines[1]) != 60 || len(lines[2]) != 60 || len(lines[3]) != 10 {
		t.Errorf("wrap widths = %d/%d/%d, want 60/60/10", len(lines[1]), len(lines[2]), len(lines[3]))
	}
}

func TestRoundTripFile(t *testing.T) {
	recs, err := Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.fasta")
	if err := WriteFile(path, recs); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	back, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if diff := cmp.Diff(recs, back); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}
