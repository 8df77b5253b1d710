package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prolink/internal/config"
	"prolink/internal/newick"
)

var cleanFlags struct {
	output      string
	configPath  string
	proteinName string
}

var cleanCmd = &cobra.Command{
	Use:   "clean <tree-file>",
	Short: "Normalize the labels of an existing Newick tree file",
	Long: `Clean rewrites every cluster-tagged label in the tree file into
canonical species_cluster form. Without -o the file is rewritten in
place; labels without a cluster marker are left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	f := cleanCmd.Flags()
	f.StringVarP(&cleanFlags.output, "output", "o", "", "Write the cleaned tree here instead of in place")
	f.StringVar(&cleanFlags.configPath, "config", "", "Path to settings YAML")
	f.StringVar(&cleanFlags.proteinName, "protein-name", "", "Protein-name phrase to strip (overrides config)")
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cleanFlags.configPath)
	if err != nil {
		return err
	}
	if cleanFlags.proteinName != "" {
		cfg.ProteinName = cleanFlags.proteinName
	}

	cleaner, err := newick.New(newick.Options{
		ProteinName:       cfg.ProteinName,
		AccessionPrefixes: cfg.AccessionPrefixes,
	})
	if err != nil {
		return err
	}

	inPath := args[0]
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read tree: %w", err)
	}
	doc := string(data)
	labels := cleaner.CountLabels(doc)
	cleaned := cleaner.CleanTree(doc)

	outPath := cleanFlags.output
	if outPath == "" {
		outPath = inPath
	}
	if err := os.WriteFile(outPath, []byte(cleaned), 0644); err != nil {
		return fmt.Errorf("write tree: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Cleaned %d labels: %s\n", labels, outPath)
	return nil
}
