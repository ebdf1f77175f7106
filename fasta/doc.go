/*
Package fasta provides routines for reading FASTA and aligned FASTA files
into sequences. It is used to supply leaf sequences to trees read with the
newick package.

The format used is the one described by NCBI:
http://blast.ncbi.nlm.nih.gov/blastcgihelp.shtml

By default, sequences are checked to make sure they contain only valid
characters: a-z, A-Z, * and -. All lowercase letters are translated to their
upper case equivalent.
*/
package fasta
