// Package pipeline sequences one phylogenetic run: align the sequences,
// build the tree, locate the file the builder actually wrote, normalize
// its labels and persist the result. Stages run sequentially and block;
// the first failure aborts the run with nothing half-written.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"prolink/internal/config"
	"prolink/internal/logging"
	"prolink/internal/newick"
)

// Runner drives the external tools and owns the tree document for the
// duration of a run.
type Runner struct {
	Muscle      string
	MegaCC      string
	ConfigDir   string
	Settle      time.Duration
	FallbackExt string
	Cleaner     *newick.Cleaner

	log *slog.Logger
}

// NewRunner builds a Runner from settings, compiling the label cleaner
// once up front.
func NewRunner(cfg config.Config) (*Runner, error) {
	cleaner, err := newick.New(newick.Options{
		ProteinName:       cfg.ProteinName,
		AccessionPrefixes: cfg.AccessionPrefixes,
	})
	if err != nil {
		return nil, fmt.Errorf("build cleaner: %w", err)
	}
	return &Runner{
		Muscle:      cfg.Tools.Muscle,
		MegaCC:      cfg.Tools.MegaCC,
		ConfigDir:   cfg.Tools.ConfigDir,
		Settle:      cfg.Tools.Settle.Std(),
		FallbackExt: cfg.Tools.FallbackExt,
		Cleaner:     cleaner,
		log:         logging.New("pipeline"),
	}, nil
}

// RunOptions names the paths and tree parameters of one run.
type RunOptions struct {
	InputPath   string // sequences to align
	AlignedPath string // alignment output
	TreePath    string // requested tree output
	TreeType    string
	Bootstrap   int
}

// Result summarizes a completed run.
type Result struct {
	RunID       string `json:"run_id"`
	AlignedPath string `json:"aligned_path"`
	TreePath    string `json:"tree_path"` // located path, may differ from the requested one
	Labels      int    `json:"labels"`    // label spans rewritten
}

// Run executes align → build tree → locate output → normalize → persist,
// terminal on the first failure.
func (r *Runner) Run(ctx context.Context, opts RunOptions) (*Result, error) {
	runID := uuid.NewString()
	log := r.log.With("run_id", runID)

	log.Info("aligning sequences", "input", opts.InputPath, "output", opts.AlignedPath)
	if err := r.Align(ctx, opts.InputPath, opts.AlignedPath); err != nil {
		return nil, err
	}

	log.Info("building tree", "type", opts.TreeType, "bootstrap", opts.Bootstrap, "output", opts.TreePath)
	if err := r.BuildTree(ctx, opts.TreeType, opts.Bootstrap, opts.AlignedPath, opts.TreePath); err != nil {
		return nil, err
	}

	located, err := r.LocateOutput(ctx, opts.TreePath)
	if err != nil {
		return nil, err
	}
	if located != opts.TreePath {
		log.Info("tree written to fallback path", "path", located)
	}

	labels, err := r.Normalize(located)
	if err != nil {
		return nil, err
	}
	log.Info("tree normalized", "path", located, "labels", labels)

	return &Result{
		RunID:       runID,
		AlignedPath: opts.AlignedPath,
		TreePath:    located,
		Labels:      labels,
	}, nil
}

// Normalize reads the tree document whole, rewrites its labels and
// writes it back to the same path. The write happens only after the full
// scan succeeds, so the document on disk is never half-normalized.
// It returns the number of label spans rewritten.
func (r *Runner) Normalize(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read tree %s: %w", path, err)
	}
	doc := string(data)
	labels := r.Cleaner.CountLabels(doc)
	cleaned := r.Cleaner.CleanTree(doc)
	if err := os.WriteFile(path, []byte(cleaned), 0644); err != nil {
		return 0, fmt.Errorf("write tree %s: %w", path, err)
	}
	return labels, nil
}
