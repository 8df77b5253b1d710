package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCleanCommand_InPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.nwk")
	doc := "(WP_058328214.1_alkene_reductase_Escherichia_coli_---C5:0.1,'NoClusterHere_protein':0.2);"
	if err := os.WriteFile(path, []byte(doc), 0600); err != nil {
		t.Fatalf("write tree: %v", err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"clean", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("clean: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "(E_coli_---C5:0.1,'NoClusterHere_protein':0.2);"
	if string(data) != want {
		t.Errorf("cleaned tree = %q, want %q", data, want)
	}
	if !strings.Contains(out.String(), "Cleaned 1 labels") {
		t.Errorf("unexpected output: %s", out.String())
	}
}

func TestAnnotateCommand_Stdout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.nwk")
	if err := os.WriteFile(path, []byte("(Escherichia_coli_---C5:0.1);"), 0600); err != nil {
		t.Fatalf("write tree: %v", err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"annotate", "--input", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("annotate: %v", err)
	}

	if !strings.Contains(out.String(), "E_coli_---C5") {
		t.Errorf("csv missing canonical label: %s", out.String())
	}
	if !strings.Contains(out.String(), "raw_label,accessions,species,cluster,canonical") {
		t.Errorf("csv missing header: %s", out.String())
	}
}
