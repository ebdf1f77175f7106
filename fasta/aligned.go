package fasta

import (
	"fmt"
	"io"

	"github.com/TuftsBCB/seq"
)

// AlignedReader reads aligned FASTA input, where every sequence has the
// same length and the n'th residue of any sequence is the n'th column of
// the alignment.
type AlignedReader struct {
	// See the exported fields of Reader for options.
	*Reader
	seqLen int // set after the first read
}

func NewAlignedReader(r io.Reader) *AlignedReader {
	return &AlignedReader{
		Reader: NewReader(r),
		seqLen: -1,
	}
}

// ReadAll will read all sequences in the aligned FASTA input. All sequences
// have the same length, otherwise an error occurs.
func (r *AlignedReader) ReadAll() ([]seq.Sequence, error) {
	seqs := make([]seq.Sequence, 0, 100)
	for {
		s, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, s)
	}
	return seqs, nil
}

// Read will read the next sequence in the aligned FASTA input.
//
// See (*Reader).Read for more details.
func (r *AlignedReader) Read() (seq.Sequence, error) {
	s, err := r.Reader.Read()
	if err != nil {
		return seq.Sequence{}, err
	}
	if r.seqLen == -1 {
		r.seqLen = len(s.Residues)
	} else if r.seqLen != len(s.Residues) {
		return seq.Sequence{},
			fmt.Errorf("Sequence '%s' has length %d, but other "+
				"sequences have length %d.", s.Name, len(s.Residues), r.seqLen)
	}
	return s, nil
}
