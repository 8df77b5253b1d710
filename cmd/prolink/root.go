// prolink is the phylogenetic pipeline CLI: align sequences, build a
// tree with an external builder, and normalize the taxonomic labels in
// the resulting Newick document.
//
// Usage:
//
//	prolink run --input seqs.fasta [--out-dir dir] [--config prolink.yaml]
//	prolink clean <tree-file> [-o cleaned.nwk]
//	prolink filter --input seqs.fasta --output valid.fasta
//	prolink annotate --input tree.nwk [--output labels.csv]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"prolink/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "prolink",
	Short: "Protein phylogeny pipeline with Newick label normalization",
	Long: "Prolink aligns protein sequences with MUSCLE, builds a phylogenetic\n" +
		"tree with MEGA-CC and rewrites the noisy sequence labels in the tree\n" +
		"into canonical species_cluster form.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logging.ParseLevel(rootFlags.logLevel), rootFlags.logFormat)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(annotateCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
