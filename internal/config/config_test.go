package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileOverridesAndKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prolink.yaml")
	content := `
protein_name: ene_reductase
accession_prefixes: [WP]
tree:
  type: ML
tools:
  settle: 10s
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ProteinName != "ene_reductase" {
		t.Errorf("protein_name = %q, want ene_reductase", cfg.ProteinName)
	}
	if diff := cmp.Diff([]string{"WP"}, cfg.AccessionPrefixes); diff != "" {
		t.Errorf("accession_prefixes (-want +got):\n%s", diff)
	}
	if cfg.Tree.Type != "ML" {
		t.Errorf("tree.type = %q, want ML", cfg.Tree.Type)
	}
	if cfg.Tools.Settle.Std() != 10*time.Second {
		t.Errorf("tools.settle = %v, want 10s", cfg.Tools.Settle.Std())
	}

	// Untouched fields keep their defaults.
	if cfg.Tree.Bootstrap != 100 {
		t.Errorf("tree.bootstrap = %d, want default 100", cfg.Tree.Bootstrap)
	}
	if cfg.Tools.Muscle != "muscle" || cfg.Tools.MegaCC != "megacc" {
		t.Errorf("tool paths lost defaults: %+v", cfg.Tools)
	}
	if cfg.UniProt.BatchSize != 100 {
		t.Errorf("uniprot.batch_size = %d, want default 100", cfg.UniProt.BatchSize)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("tree: [unclosed"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
