package msa

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/TuftsBCB/seq"
)

// ReadStockholm reads an MSA from a Stockholm formatted file. Note that
// features are completely ignored. This reader only checks for the Stockholm
// header (and version), and then slurps up the sequence data.
//
// Interleaved alignments, where the rows are split over several blocks, are
// joined by sequence name in the order the names first appear. Both '.' and
// '-' are read as gaps and residues are upper cased.
func ReadStockholm(r io.Reader) ([]seq.Sequence, error) {
	return readStockholm(r, false)
}

// ReadStockholmTrusted is the same as ReadStockholm, except it does not check
// if each residue is valid. This may be faster.
func ReadStockholmTrusted(r io.Reader) ([]seq.Sequence, error) {
	return readStockholm(r, true)
}

func readStockholm(r io.Reader, trusted bool) ([]seq.Sequence, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New("First line does not contain 'STOCKHOLM 1.0'.")
	}
	first := bytes.ToLower(bytes.Trim(scanner.Bytes(), " #"))
	if !bytes.Equal([]byte("stockholm 1.0"), first) {
		return nil, errors.New("First line does not contain 'STOCKHOLM 1.0'.")
	}

	var seqs []seq.Sequence
	rows := make(map[string]int)
	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.HasPrefix(line, []byte("//")) {
			break
		}

		pieces := bytes.Fields(line)
		if len(pieces) < 2 {
			return nil, fmt.Errorf("Line %d has no sequence name.", lineNum)
		}
		residues, err := asResidues(pieces[len(pieces)-1], trusted)
		if err != nil {
			return nil, fmt.Errorf("Error on line %d: %w", lineNum, err)
		}

		name := string(concat(pieces[0 : len(pieces)-1]))
		if i, ok := rows[name]; ok {
			seqs[i].Residues = append(seqs[i].Residues, residues...)
			continue
		}
		rows[name] = len(seqs)
		seqs = append(seqs, seq.Sequence{Name: name, Residues: residues})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	for _, s := range seqs {
		if len(s.Residues) != len(seqs[0].Residues) {
			return nil, fmt.Errorf("Sequence '%s' has length %d, but other "+
				"sequences have length %d.",
				s.Name, len(s.Residues), len(seqs[0].Residues))
		}
	}
	return seqs, nil
}

func asResidues(brs []byte, trusted bool) ([]seq.Residue, error) {
	rs := make([]seq.Residue, 0, len(brs))
	for _, b := range brs {
		if trusted {
			rs = append(rs, seq.Residue(b))
			continue
		}
		res, ok := translateStockholm(b)
		if !ok {
			return nil, fmt.Errorf("Invalid Stockholm residue '%c'.", b)
		}
		rs = append(rs, res)
	}
	return rs, nil
}

func concat(bs [][]byte) []byte {
	var ret []byte
	for _, b := range bs {
		ret = append(ret, b...)
	}
	return ret
}

func translateStockholm(b byte) (seq.Residue, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return seq.Residue(b - 'a' + 'A'), true
	case b >= 'A' && b <= 'Z':
		return seq.Residue(b), true
	case b == '-', b == '.':
		return '-', true
	}
	return 0, false
}
