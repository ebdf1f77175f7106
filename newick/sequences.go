package newick

import (
	"errors"
	"fmt"
	"strings"

	"github.com/TuftsBCB/seq"
)

// AttachSequences sets the Sequence of every leaf below t to the residues
// of the sequence with the same name. The name of a sequence is the first
// whitespace separated word of seq.Sequence.Name, so FASTA headers with
// trailing descriptions match their leaf labels.
//
// All sequences must have the same length, every leaf must be labeled with
// a unique name and every leaf must have a sequence. Sequences without a
// matching leaf are ignored. If an error is returned, no leaf is modified.
func (t *Tree) AttachSequences(seqs []seq.Sequence) error {
	byName := make(map[string]seq.Sequence, len(seqs))
	length := -1
	for _, s := range seqs {
		name := SequenceName(s)
		if len(name) == 0 {
			return errors.New("Found a sequence without a name.")
		}
		if _, ok := byName[name]; ok {
			return fmt.Errorf("Sequence '%s' appears more than once.", name)
		}
		if length == -1 {
			length = len(s.Residues)
		} else if length != len(s.Residues) {
			return fmt.Errorf("Sequence '%s' has length %d, but other "+
				"sequences have length %d.", name, len(s.Residues), length)
		}
		byName[name] = s
	}

	leaves := t.Leaves()
	residues := make([]string, len(leaves))
	seen := make(map[string]bool, len(leaves))
	for i, leaf := range leaves {
		if len(leaf.Label) == 0 {
			return fmt.Errorf("Leaf %d has no label to match a sequence "+
				"against.", i+1)
		}
		if seen[leaf.Label] {
			return fmt.Errorf("Leaf label '%s' appears more than once.",
				leaf.Label)
		}
		seen[leaf.Label] = true

		s, ok := byName[leaf.Label]
		if !ok {
			return fmt.Errorf("No sequence found for leaf '%s'.", leaf.Label)
		}
		residues[i] = residueString(s.Residues)
	}
	for i, leaf := range leaves {
		leaf.Sequence = residues[i]
	}
	return nil
}

// SequenceName returns the first word of the name of s.
func SequenceName(s seq.Sequence) string {
	fields := strings.Fields(s.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func residueString(rs []seq.Residue) string {
	bs := make([]byte, len(rs))
	for i, r := range rs {
		bs[i] = byte(r)
	}
	return string(bs)
}
