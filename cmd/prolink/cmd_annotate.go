package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"prolink/internal/annotate"
	"prolink/internal/config"
	"prolink/internal/newick"
)

var annotateFlags struct {
	input      string
	output     string
	configPath string
}

var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Export a CSV of label annotations from a tree file",
	Long: `Annotate scans the tree file for cluster-tagged labels and writes
one CSV row per label: the raw text, the accession codes it carried, the
species descriptor, the cluster tag and the canonical form. Without -o
the table goes to stdout.`,
	RunE: runAnnotate,
}

func init() {
	f := annotateCmd.Flags()
	f.StringVarP(&annotateFlags.input, "input", "i", "", "Input tree file (required)")
	f.StringVarP(&annotateFlags.output, "output", "o", "", "Output CSV path (default stdout)")
	f.StringVar(&annotateFlags.configPath, "config", "", "Path to settings YAML")
	_ = annotateCmd.MarkFlagRequired("input")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(annotateFlags.configPath)
	if err != nil {
		return err
	}

	cleaner, err := newick.New(newick.Options{
		ProteinName:       cfg.ProteinName,
		AccessionPrefixes: cfg.AccessionPrefixes,
	})
	if err != nil {
		return err
	}

	data, err := os.ReadFile(annotateFlags.input)
	if err != nil {
		return fmt.Errorf("read tree: %w", err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if annotateFlags.output != "" {
		f, err := os.Create(annotateFlags.output)
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		defer f.Close()
		w = f
	}

	rows, err := annotate.WriteCSV(w, string(data), cleaner)
	if err != nil {
		return err
	}
	if annotateFlags.output != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d annotations: %s\n", rows, annotateFlags.output)
	}
	return nil
}
