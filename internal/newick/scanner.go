package newick

// CleanTree rewrites every label span in a Newick document and returns
// the result. A span is a quoted run (single or double) or a bare run of
// label characters, and is only a span at all if it contains a cluster
// marker; the document outside matched spans is returned byte for byte.
//
// Matches are non-overlapping, leftmost first. Because the rewriter only
// emits alphanumerics, underscores, dots, hyphens and the cluster
// marker, the output is always legal in a label position of the host
// grammar: no commas, parentheses, colons or semicolons can appear.
func (c *Cleaner) CleanTree(doc string) string {
	return c.labelSpan.ReplaceAllStringFunc(doc, c.CleanLabel)
}

// CountLabels reports how many label spans CleanTree would rewrite.
func (c *Cleaner) CountLabels(doc string) int {
	return len(c.labelSpan.FindAllStringIndex(doc, -1))
}

// EachLabel visits every label span in document order without rewriting
// anything.
func (c *Cleaner) EachLabel(doc string, visit func(raw string)) {
	for _, span := range c.labelSpan.FindAllString(doc, -1) {
		visit(span)
	}
}
