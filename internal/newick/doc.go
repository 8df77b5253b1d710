// Package newick rewrites the taxonomic labels embedded in a Newick tree
// document into a canonical, deduplicated form.
//
// Raw labels coming out of the tree builder carry database accession
// codes, multi-organism markers, the protein name under study and other
// descriptive noise around the part that actually matters: the organism
// descriptor and its similarity-cluster tag (---C<digits>). The Cleaner
// strips the noise in a fixed stage order, extracts the species+cluster
// shape, abbreviates the genus where that loses no information, and
// splices the result back into the document without touching any
// structural tree syntax.
//
// Only spans bearing a cluster marker are ever rewritten; everything
// else in the document is passed through byte for byte.
package newick
