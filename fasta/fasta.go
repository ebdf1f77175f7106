package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/TuftsBCB/seq"
)

// A Reader reads sequences from FASTA encoded input.
//
// If TrustSequences is true, then sequence data will not be checked to make
// sure that it conforms to the NCBI spec. (See the Read method for details.)
// By default, TrustSequences is false.
type Reader struct {
	// When set to true, the sequences will not be checked for errors.
	// This may be set at any time.
	TrustSequences bool
	buf            *bufio.Reader
	line           int
	nextHeader     []byte
}

func NewReader(r io.Reader) *Reader {
	return &Reader{
		TrustSequences: false,
		buf:            bufio.NewReader(r),
		line:           1,
		nextHeader:     nil,
	}
}

// ReadAll will read all sequences in the FASTA input and return them as a
// slice. If an error is encountered, processing is stopped, and the error is
// returned.
func (r *Reader) ReadAll() ([]seq.Sequence, error) {
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

// Read will read the next sequence in the FASTA input. The header line
// (without the '>') becomes the name of the sequence.
//
// The only characters allowed in the sequence section are a-z, A-Z, * and -.
// Any other character will result in an error, unless TrustSequences is set.
// Lower case letters are translated to upper case.
//
// Blank lines, leading and trailing whitespace are always ignored.
//
// It is NOT safe to call this function from multiple goroutines.
func (r *Reader) Read() (seq.Sequence, error) {
	s, err := r.ReadSequence(TranslateNormal)
	if err == io.EOF {
		if isNull(s) {
			return seq.Sequence{}, err
		}
		return s, nil
	}
	if err != nil {
		return seq.Sequence{}, fmt.Errorf("Error on line %d: %w", r.line, err)
	}
	return s, nil
}

// ReadSequence reads the next entry, checking each sequence character with
// translate. It is exported for packages that read FASTA-like files with a
// different alphabet.
func (r *Reader) ReadSequence(translate Translator) (seq.Sequence, error) {
	s := seq.Sequence{}
	seenHeader := false

	// The header of this entry may have been read while finishing the
	// previous one.
	if r.nextHeader != nil {
		s.Name = trimHeader(r.nextHeader)
		r.nextHeader = nil
		seenHeader = true
	}
	for {
		line, err := r.buf.ReadBytes('\n')
		if err == io.EOF {
			if len(line) == 0 {
				return s, io.EOF
			}
		} else if err != nil {
			return seq.Sequence{}, err
		}
		line = bytes.TrimSpace(line)

		if len(line) == 0 {
			r.line++
			continue
		}

		if !seenHeader {
			if line[0] != '>' {
				return seq.Sequence{},
					fmt.Errorf("Expected '>', got '%c'.", line[0])
			}
			s.Name = trimHeader(line)
			seenHeader = true

			r.line++
			continue
		} else if line[0] == '>' {
			r.nextHeader = line
			r.line++
			return s, nil
		}

		if s.Residues == nil {
			s.Residues = make([]seq.Residue, 0, 50)
		}
		for _, b := range line {
			if r.TrustSequences {
				s.Residues = append(s.Residues, seq.Residue(b))
				continue
			}
			res, ok := translate(b)
			if !ok {
				return seq.Sequence{},
					fmt.Errorf("Invalid character '%c'.", b)
			}
			s.Residues = append(s.Residues, res)
		}
		r.line++
	}
}

// A Translator is a function that accepts a single character, checks whether
// it's valid, and maps it to a residue.
type Translator func(b byte) (seq.Residue, bool)

// TranslateNormal is the default translator for regular (and aligned) FASTA
// files.
func TranslateNormal(b byte) (seq.Residue, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return seq.Residue(b - 'a' + 'A'), true
	case b >= 'A' && b <= 'Z':
		return seq.Residue(b), true
	case b == '*':
		return '*', true
	case b == '-':
		return '-', true
	}
	return 0, false
}

func isNull(s seq.Sequence) bool {
	return len(s.Name) == 0 && s.Residues == nil
}

func trimHeader(line []byte) string {
	return string(bytes.TrimSpace(bytes.TrimLeft(line, ">")))
}
