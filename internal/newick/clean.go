package newick

import (
	"fmt"
	"regexp"
	"strings"
)

// Options configures the noise patterns the Cleaner strips from labels.
// The zero value is usable: Defaults are applied by New.
type Options struct {
	// ProteinName is the protein-name phrase to delete from labels.
	// Underscores inside the phrase match either underscore or whitespace
	// in the label, so "alkene_reductase" also strips "alkene reductase".
	ProteinName string

	// AccessionPrefixes are the accession-code prefixes to recognize
	// (two/three letters, e.g. WP, XP, NP).
	AccessionPrefixes []string
}

// DefaultProteinName is the phrase stripped when Options.ProteinName is empty.
const DefaultProteinName = "alkene_reductase"

// DefaultAccessionPrefixes covers RefSeq protein accession families.
var DefaultAccessionPrefixes = []string{"WP", "XP", "NP"}

// ParsedLabel is the explicit capture of one raw label's semantic fields.
// Cluster is empty when the species+cluster shape could not be found; in
// that case Residual carries the noise-stripped text and the label
// degrades to it instead of failing.
type ParsedLabel struct {
	Species    []string // organism descriptor tokens, in order
	Cluster    string   // "---C<digits>", empty on degrade
	Accessions []string // accession codes found (normalized, e.g. WP_058328214.1)
	Residual   string   // fully stripped text, always set
}

// Cleaner holds the compiled pattern set for one configuration. It is
// immutable after New and safe for reuse across documents.
type Cleaner struct {
	accession      *regexp.Regexp
	multispecies   *regexp.Regexp
	protein        *regexp.Regexp
	unclassified   *regexp.Regexp
	sameDomains    *regexp.Regexp
	underscoreRun  *regexp.Regexp
	whitespaceRun  *regexp.Regexp
	speciesCluster *regexp.Regexp
	labelSpan      *regexp.Regexp
}

// New compiles a Cleaner for the given options. Empty option fields take
// the package defaults.
func New(opts Options) (*Cleaner, error) {
	if opts.ProteinName == "" {
		opts.ProteinName = DefaultProteinName
	}
	if len(opts.AccessionPrefixes) == 0 {
		opts.AccessionPrefixes = DefaultAccessionPrefixes
	}

	prefixes := make([]string, 0, len(opts.AccessionPrefixes))
	for _, p := range opts.AccessionPrefixes {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		prefixes = append(prefixes, regexp.QuoteMeta(p))
	}
	if len(prefixes) == 0 {
		return nil, fmt.Errorf("no usable accession prefixes")
	}

	accession, err := regexp.Compile(`(?i)(?:` + strings.Join(prefixes, "|") + `)[\s_]\d{9}\.\d`)
	if err != nil {
		return nil, fmt.Errorf("compile accession pattern: %w", err)
	}

	protein, err := regexp.Compile(`(?i)` + phrasePattern(opts.ProteinName))
	if err != nil {
		return nil, fmt.Errorf("compile protein-name pattern: %w", err)
	}

	return &Cleaner{
		accession:     accession,
		multispecies:  regexp.MustCompile(`(?i)MULTISPECIES:\s*`),
		protein:       protein,
		unclassified:  regexp.MustCompile(`(?i)\bunclassified\b`),
		sameDomains:   regexp.MustCompile(`(?i)[-_]*Same[_\s]*Domains`),
		underscoreRun: regexp.MustCompile(`_{2,}`),
		whitespaceRun: regexp.MustCompile(`\s{2,}`),
		// Species: a leading alphanumeric word extended by space- or
		// underscore-joined continuations, immediately followed across
		// separators by the cluster marker.
		speciesCluster: regexp.MustCompile(`([A-Za-z0-9]+(?:[ _][A-Za-z0-9./-]+)*)[ _-]+(---C\d+)`),
		// Label spans in a document, tried in order: single-quoted,
		// double-quoted, then a bare run of label characters. All three
		// require a cluster marker so structural syntax never matches.
		labelSpan: regexp.MustCompile(`'[^']*---C\d+[^']*'|"[^"]*---C\d+[^"]*"|[A-Za-z0-9 _.\-]*---C\d+[A-Za-z0-9 _.\-]*`),
	}, nil
}

// phrasePattern quotes a phrase for regexp use, with each underscore
// widened to match underscore or whitespace.
func phrasePattern(phrase string) string {
	parts := strings.Split(phrase, "_")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return strings.Join(parts, `[\s_]`)
}

// Parse decomposes one raw label. It is total: every input yields a
// ParsedLabel, degrading to a pass-through Residual when the stripped
// text has no species+cluster shape. The strip stages run in a fixed
// order; later stages rely on earlier ones having removed confounders.
func (c *Cleaner) Parse(raw string) ParsedLabel {
	s := stripQuotes(raw)

	var accessions []string
	for _, m := range c.accession.FindAllString(s, -1) {
		accessions = append(accessions, NormalizeAccession(m))
	}

	s = c.accession.ReplaceAllString(s, "")
	s = c.multispecies.ReplaceAllString(s, "")
	s = c.protein.ReplaceAllString(s, "")
	s = c.unclassified.ReplaceAllString(s, "")
	s = c.sameDomains.ReplaceAllString(s, "")
	s = c.underscoreRun.ReplaceAllString(s, "_")
	s = c.whitespaceRun.ReplaceAllString(s, " ")
	s = strings.Trim(s, " _\t")

	parsed := ParsedLabel{Accessions: accessions, Residual: s}

	m := c.speciesCluster.FindStringSubmatch(s)
	if m == nil {
		return parsed
	}
	parsed.Species = splitTokens(m[1])
	parsed.Cluster = m[2]
	return parsed
}

// CleanLabel is the full parse-then-rewrite of one raw label.
func (c *Cleaner) CleanLabel(raw string) string {
	return c.Parse(raw).Canonical()
}

// FindAccession returns the first accession code in s, normalized, or ""
// when none is present. Used by the UniProt filter on FASTA headers.
func (c *Cleaner) FindAccession(s string) string {
	m := c.accession.FindString(s)
	if m == "" {
		return ""
	}
	return NormalizeAccession(m)
}

// NormalizeAccession canonicalizes a matched accession code to the
// underscore form the reference database uses (e.g. "wp 058328214.1"
// becomes "WP_058328214.1").
func NormalizeAccession(code string) string {
	code = strings.ToUpper(code)
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return '_'
		}
		return r
	}, code)
}

// stripQuotes removes one layer of matching surrounding quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '\'' || first == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// splitTokens splits a species span on its separators.
func splitTokens(span string) []string {
	return strings.FieldsFunc(span, func(r rune) bool {
		return r == ' ' || r == '_'
	})
}
