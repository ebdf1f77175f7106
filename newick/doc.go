/*
Package newick provides facilities for reading trees in the Newick format.
The format used is roughly equivalent to the conventions established here:
http://evolution.genetics.washington.edu/phylip/newick_doc.html. Comments
and quoted labels are not implemented.

An informal description of the Newick format can be found here:
http://evolution.genetics.washington.edu/phylip/newicktree.html.

A tree is read with Parse or with a Reader. Parsing is done one token at a
time by a small state machine that keeps a cursor on the node currently
being built, so arbitrarily deep trees never grow the call stack. Only the
first tree in the input (terminated by a ';') is read. Anything after the
terminal is ignored.

Nodes returned by the parser carry a label, an optional branch length and
their children in input order. The Sequence and Preferences fields are
never set by the parser. They exist for algorithms (ancestral sequence
reconstruction, for example) that annotate the tree during their own
traversals. AttachSequences fills in leaf sequences from a set of
sequences, typically read with the fasta package.
*/
package newick
