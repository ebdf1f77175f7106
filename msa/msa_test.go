package msa

import (
	"strings"
	"testing"

	"github.com/TuftsBCB/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rows(seqs []seq.Sequence) map[string]string {
	m := make(map[string]string, len(seqs))
	for _, s := range seqs {
		rs := make([]byte, len(s.Residues))
		for i, r := range s.Residues {
			rs[i] = byte(r)
		}
		m[s.Name] = string(rs)
	}
	return m
}

func TestReadA2M(t *testing.T) {
	seqs, err := Read(strings.NewReader(
		">s1 first row\nAC.GT-\n>s2\nA-aGTT\n>s3\nAC.G\nTT\n"))
	require.NoError(t, err)
	require.Len(t, seqs, 3)
	assert.Equal(t, "s1 first row", seqs[0].Name)
	assert.Equal(t, map[string]string{
		"s1 first row": "ACGT-",
		"s2":           "A-GTT",
		"s3":           "ACGTT",
	}, rows(seqs))
}

func TestReadA3M(t *testing.T) {
	seqs, err := Read(strings.NewReader(
		">s1\nACGT-\n>s2\nA-aaGTT\n>s3\nAgCGTT*\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"s1": "ACGT-",
		"s2": "A-GTT",
		"s3": "ACGTT",
	}, rows(seqs))
}

func TestReadErrors(t *testing.T) {
	_, err := Read(strings.NewReader(">s1\nACGT\n>s2\nACG\n"))
	require.Error(t, err)
	assert.Equal(t, "Sequence 's2' has length 3, but other sequences "+
		"have length 4.", err.Error())

	_, err = Read(strings.NewReader(">s1\nAC1T\n"))
	require.Error(t, err)
	assert.Equal(t, "Invalid character '1'.", err.Error())

	seqs, err := ReadTrusted(strings.NewReader(">s1\nAC1T\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"s1": "ACT"}, rows(seqs))
}

const stockholmInput = `# STOCKHOLM 1.0
#=GF ID example

s1   AC.GT
s2   ACaGT
#=GC SS_cons ..<>.
//
s3 this is after the end
`

func TestReadStockholm(t *testing.T) {
	seqs, err := ReadStockholm(strings.NewReader(stockholmInput))
	require.NoError(t, err)
	require.Len(t, seqs, 2)
	assert.Equal(t, "s1", seqs[0].Name)
	assert.Equal(t, map[string]string{
		"s1": "AC-GT",
		"s2": "ACAGT",
	}, rows(seqs))
}

func TestReadStockholmInterleaved(t *testing.T) {
	seqs, err := ReadStockholm(strings.NewReader(
		"#STOCKHOLM 1.0\ns1 AC\ns2 A-\n\ns1 GT\ns2 GT\n//\n"))
	require.NoError(t, err)
	require.Len(t, seqs, 2)
	assert.Equal(t, "s1", seqs[0].Name)
	assert.Equal(t, "s2", seqs[1].Name)
	assert.Equal(t, map[string]string{
		"s1": "ACGT",
		"s2": "A-GT",
	}, rows(seqs))
}

func TestReadStockholmErrors(t *testing.T) {
	tests := []struct {
		input string
		msg   string
	}{
		{"", "First line does not contain 'STOCKHOLM 1.0'."},
		{"# STOCKHOLM 2.0\ns1 ACGT\n", "First line does not contain 'STOCKHOLM 1.0'."},
		{"# STOCKHOLM 1.0\ns1 AC1T\n", "Error on line 2: Invalid Stockholm residue '1'."},
		{"# STOCKHOLM 1.0\nACGT\n", "Line 2 has no sequence name."},
		{"# STOCKHOLM 1.0\ns1 ACGT\ns2 ACG\n//\n",
			"Sequence 's2' has length 3, but other sequences have length 4."},
	}
	for _, test := range tests {
		_, err := ReadStockholm(strings.NewReader(test.input))
		if assert.Error(t, err, test.input) {
			assert.Equal(t, test.msg, err.Error(), test.input)
		}
	}

	seqs, err := ReadStockholmTrusted(strings.NewReader("# STOCKHOLM 1.0\ns1 AC1T\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"s1": "AC1T"}, rows(seqs))
}
