// Package config holds the pipeline settings file. Everything the label
// cleaner and the external-tool drivers treat as tunable lives here, so
// the rest of the code never hardcodes a pattern or a binary name.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that unmarshals from YAML strings like "5s".
type Duration time.Duration

// UnmarshalYAML accepts either a Go duration string or integer nanoseconds.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		dur, perr := time.ParseDuration(s)
		if perr != nil {
			return fmt.Errorf("parse duration %q: %w", s, perr)
		}
		*d = Duration(dur)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("duration must be a string or integer nanoseconds")
	}
	*d = Duration(n)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is the full settings surface of a pipeline run.
type Config struct {
	// ProteinName is the protein-name phrase stripped from labels.
	// Underscores in the phrase match either underscore or whitespace.
	ProteinName string `yaml:"protein_name"`

	// AccessionPrefixes are the accession-code prefixes recognized when
	// stripping database identifiers (e.g. WP_058328214.1).
	AccessionPrefixes []string `yaml:"accession_prefixes"`

	Tree    TreeConfig    `yaml:"tree"`
	Tools   ToolsConfig   `yaml:"tools"`
	UniProt UniProtConfig `yaml:"uniprot"`
}

// TreeConfig selects the MEGA-CC analysis to run.
type TreeConfig struct {
	Type      string `yaml:"type"`      // e.g. NJ, ML
	Bootstrap int    `yaml:"bootstrap"` // bootstrap replications
}

// ToolsConfig locates the external binaries and their support files.
type ToolsConfig struct {
	Muscle      string   `yaml:"muscle"`
	MegaCC      string   `yaml:"megacc"`
	ConfigDir   string   `yaml:"config_dir"`   // directory of <type>_<bootstrap>.mao files
	Settle      Duration `yaml:"settle"`       // wait for the tree file to appear
	FallbackExt string   `yaml:"fallback_ext"` // alternate extension MEGA-CC may write
}

// UniProtConfig drives the accession validation service.
type UniProtConfig struct {
	BaseURL   string `yaml:"base_url"`
	BatchSize int    `yaml:"batch_size"`
	Parallel  int    `yaml:"parallel"`
}

// Default returns the built-in settings, matching the canonical variant
// of the cleaner (WP/XP/NP prefixes, alkene_reductase phrase).
func Default() Config {
	return Config{
		ProteinName:       "alkene_reductase",
		AccessionPrefixes: []string{"WP", "XP", "NP"},
		Tree: TreeConfig{
			Type:      "NJ",
			Bootstrap: 100,
		},
		Tools: ToolsConfig{
			Muscle:      "muscle",
			MegaCC:      "megacc",
			ConfigDir:   "mega_configs",
			Settle:      Duration(5 * time.Second),
			FallbackExt: ".nwk",
		},
		UniProt: UniProtConfig{
			BaseURL:   "https://rest.uniprot.org",
			BatchSize: 100,
			Parallel:  4,
		},
	}
}

// Load reads a YAML settings file over Default(). Fields absent from the
// file keep their defaults. An empty path returns Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config yaml: %w", err)
	}
	cfg.fillZero()
	return cfg, nil
}

// fillZero restores defaults for fields an explicit file left empty.
func (c *Config) fillZero() {
	def := Default()
	if c.ProteinName == "" {
		c.ProteinName = def.ProteinName
	}
	if len(c.AccessionPrefixes) == 0 {
		c.AccessionPrefixes = def.AccessionPrefixes
	}
	if c.Tree.Type == "" {
		c.Tree.Type = def.Tree.Type
	}
	if c.Tree.Bootstrap == 0 {
		c.Tree.Bootstrap = def.Tree.Bootstrap
	}
	if c.Tools.Muscle == "" {
		c.Tools.Muscle = def.Tools.Muscle
	}
	if c.Tools.MegaCC == "" {
		c.Tools.MegaCC = def.Tools.MegaCC
	}
	if c.Tools.ConfigDir == "" {
		c.Tools.ConfigDir = def.Tools.ConfigDir
	}
	if c.Tools.Settle == 0 {
		c.Tools.Settle = def.Tools.Settle
	}
	if c.Tools.FallbackExt == "" {
		c.Tools.FallbackExt = def.Tools.FallbackExt
	}
	if c.UniProt.BaseURL == "" {
		c.UniProt.BaseURL = def.UniProt.BaseURL
	}
	if c.UniProt.BatchSize == 0 {
		c.UniProt.BatchSize = def.UniProt.BatchSize
	}
	if c.UniProt.Parallel == 0 {
		c.UniProt.Parallel = def.UniProt.Parallel
	}
}
