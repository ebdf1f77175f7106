package newick

import (
	"sort"
	"strings"

	"github.com/TuftsBCB/seq"
)

// ResidueSet is a set of residues allowed at a single sequence position.
// The zero value is a nil set; use NewResidueSet before calling Add.
type ResidueSet map[seq.Residue]struct{}

// NewResidueSet returns a set holding the residues given.
func NewResidueSet(residues ...seq.Residue) ResidueSet {
	set := make(ResidueSet, len(residues))
	for _, r := range residues {
		set[r] = struct{}{}
	}
	return set
}

func (set ResidueSet) Add(r seq.Residue) {
	set[r] = struct{}{}
}

func (set ResidueSet) Has(r seq.Residue) bool {
	_, ok := set[r]
	return ok
}

func (set ResidueSet) Len() int {
	return len(set)
}

// Residues returns the members of the set in ascending order.
func (set ResidueSet) Residues() []seq.Residue {
	rs := make([]seq.Residue, 0, len(set))
	for r := range set {
		rs = append(rs, r)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	return rs
}

// Intersect returns a new set with the residues present in both sets.
func (set ResidueSet) Intersect(other ResidueSet) ResidueSet {
	out := make(ResidueSet)
	for r := range set {
		if other.Has(r) {
			out[r] = struct{}{}
		}
	}
	return out
}

// Union returns a new set with the residues present in either set.
func (set ResidueSet) Union(other ResidueSet) ResidueSet {
	out := make(ResidueSet, len(set)+len(other))
	for r := range set {
		out[r] = struct{}{}
	}
	for r := range other {
		out[r] = struct{}{}
	}
	return out
}

func (set ResidueSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for _, r := range set.Residues() {
		b.WriteByte(byte(r))
	}
	b.WriteByte('}')
	return b.String()
}

// MarshalText writes the residues of the set in ascending order.
func (set ResidueSet) MarshalText() ([]byte, error) {
	rs := set.Residues()
	bs := make([]byte, len(rs))
	for i, r := range rs {
		bs[i] = byte(r)
	}
	return bs, nil
}

// Preferences holds one ResidueSet per sequence position.
type Preferences []ResidueSet

// NewPreferences returns n empty residue sets.
func NewPreferences(n int) Preferences {
	prefs := make(Preferences, n)
	for i := range prefs {
		prefs[i] = make(ResidueSet)
	}
	return prefs
}
