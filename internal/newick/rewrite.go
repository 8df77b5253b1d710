package newick

import (
	"strings"
	"unicode/utf8"
)

// Canonical renders the parsed label in its final form:
// <abbreviated-or-full-species>_<cluster>. Degraded parses return the
// stripped residual unchanged; a parse with a cluster but no species
// emits the cluster alone, never a dangling separator.
//
// The rewrite is a fixed point: applying Parse+Canonical to its own
// output yields the same string, since the output carries none of the
// stripped noise and a one-rune genus cannot shorten further.
func (p ParsedLabel) Canonical() string {
	if p.Cluster == "" {
		return p.Residual
	}
	if len(p.Species) == 0 {
		return p.Cluster
	}
	return strings.Join(abbreviateGenus(p.Species), "_") + "_" + p.Cluster
}

// abbreviateGenus shortens the genus to its initial when a species
// epithet follows. Tokens beginning with "sp" are left alone: for a
// "Genus sp. strain" designation the genus is the only information, and
// abbreviating it would destroy it.
func abbreviateGenus(tokens []string) []string {
	if len(tokens) < 2 || strings.HasPrefix(tokens[1], "sp") {
		return tokens
	}
	out := make([]string, len(tokens))
	copy(out, tokens)
	r, _ := utf8.DecodeRuneInString(out[0])
	out[0] = string(r)
	return out
}
