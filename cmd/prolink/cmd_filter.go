package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"prolink/internal/config"
	"prolink/internal/newick"
	"prolink/internal/uniprot"
)

var filterFlags struct {
	input      string
	output     string
	configPath string
	baseURL    string
	batchSize  int
	parallel   int
}

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Drop sequences whose accession codes UniProt does not know",
	Long: `Filter validates every accession code found in the FASTA headers
against the UniProt search API (in batches) and writes a FASTA with only
the validated records. Sequences without any accession code are kept.`,
	RunE: runFilter,
}

func init() {
	f := filterCmd.Flags()
	f.StringVarP(&filterFlags.input, "input", "i", "", "Input FASTA (required)")
	f.StringVarP(&filterFlags.output, "output", "o", "", "Output FASTA (required)")
	f.StringVar(&filterFlags.configPath, "config", "", "Path to settings YAML")
	f.StringVar(&filterFlags.baseURL, "base-url", "", "UniProt API base URL (overrides config)")
	f.IntVar(&filterFlags.batchSize, "batch-size", 0, "Accessions per query (overrides config)")
	f.IntVar(&filterFlags.parallel, "parallel", 0, "Concurrent batch queries (overrides config)")
	_ = filterCmd.MarkFlagRequired("input")
	_ = filterCmd.MarkFlagRequired("output")
}

func runFilter(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(filterFlags.configPath)
	if err != nil {
		return err
	}
	if filterFlags.baseURL != "" {
		cfg.UniProt.BaseURL = filterFlags.baseURL
	}
	if filterFlags.batchSize > 0 {
		cfg.UniProt.BatchSize = filterFlags.batchSize
	}
	if filterFlags.parallel > 0 {
		cfg.UniProt.Parallel = filterFlags.parallel
	}

	cleaner, err := newick.New(newick.Options{
		ProteinName:       cfg.ProteinName,
		AccessionPrefixes: cfg.AccessionPrefixes,
	})
	if err != nil {
		return err
	}

	client := uniprot.NewClient(uniprot.Config{
		BaseURL:   cfg.UniProt.BaseURL,
		BatchSize: cfg.UniProt.BatchSize,
		Parallel:  cfg.UniProt.Parallel,
	})

	res, err := client.Filter(cmd.Context(), filterFlags.input, filterFlags.output, cleaner.FindAccession)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Kept %d of %d sequences (%d dropped): %s\n",
		res.Kept, res.Total, res.Dropped, filterFlags.output)
	return nil
}
