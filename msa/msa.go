// Package msa reads multiple sequence alignments in the A2M, A3M and
// Stockholm formats. Every reader returns the aligned rows with only the
// match columns kept, so the n'th residue of every row belongs to the n'th
// column of the alignment.
package msa

import (
	"fmt"
	"io"

	"github.com/TuftsBCB/seq"

	"github.com/TuftsBCB/phylo/fasta"
)

func translateA2M(b byte) (seq.Residue, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return seq.Residue(b), true
	case b >= 'A' && b <= 'Z':
		return seq.Residue(b), true
	case b == '*':
		return 0, true
	case b == '-':
		return '-', true
	case b == '.':
		return '.', true
	}
	return 0, false
}

// Read will read a single MSA from the input, where the input can be formatted
// in FASTA, A2M or A3M formats. Sequences are read until io.EOF.
//
// Lower case residues and '.' are insertions relative to the match columns
// and are dropped, which is what makes A3M rows (where insertion columns are
// not padded) line up with each other.
func Read(reader io.Reader) ([]seq.Sequence, error) {
	r := fasta.NewReader(reader)
	r.TrustSequences = false
	return read(r)
}

// ReadTrusted will read a single MSA from trusted input, where the input can
// be formatted in FASTA, A2M or A3M formats. Sequences are read until io.EOF.
//
// "Trust" in this context means that the input doesn't contain any illegal
// characters in the sequence. Trusting the input should be faster.
func ReadTrusted(reader io.Reader) ([]seq.Sequence, error) {
	r := fasta.NewReader(reader)
	r.TrustSequences = true
	return read(r)
}

func read(r *fasta.Reader) ([]seq.Sequence, error) {
	var seqs []seq.Sequence
	for {
		s, err := readSequence(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		s.Residues = matchColumns(s.Residues)
		if len(seqs) > 0 && len(s.Residues) != len(seqs[0].Residues) {
			return nil, fmt.Errorf("Sequence '%s' has length %d, but other "+
				"sequences have length %d.",
				s.Name, len(s.Residues), len(seqs[0].Residues))
		}
		seqs = append(seqs, s)
	}
	return seqs, nil
}

func readSequence(r *fasta.Reader) (seq.Sequence, error) {
	s, err := r.ReadSequence(translateA2M) // A2M encompasses FASTA/A3M
	if len(s.Name) > 0 || s.Residues != nil {
		return s, nil
	}
	if err == nil {
		err = io.EOF
	}
	return seq.Sequence{}, err
}

// matchColumns keeps the upper case residues and deletions ('-').
func matchColumns(rs []seq.Residue) []seq.Residue {
	kept := make([]seq.Residue, 0, len(rs))
	for _, r := range rs {
		if (r >= 'A' && r <= 'Z') || r == '-' {
			kept = append(kept, r)
		}
	}
	return kept
}
