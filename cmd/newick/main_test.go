package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/TuftsBCB/phylo/newick"
)

type testState struct {
	*globalState
	stdin  *bytes.Buffer
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newTestState(t *testing.T, files map[string]string) *testState {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}
	ts := &testState{
		stdin:  new(bytes.Buffer),
		stdout: new(bytes.Buffer),
		stderr: new(bytes.Buffer),
	}
	ts.globalState = newGlobalState(fs, map[string]string{},
		ts.stdin, ts.stdout, ts.stderr)
	return ts
}

func (ts *testState) run(args ...string) int {
	return execute(ts.globalState, append(args, "--no-color"))
}

func TestCheck(t *testing.T) {
	ts := newTestState(t, map[string]string{
		"good.tree":  "(A:1,B:2)C:3;\n",
		"anon.tree":  "(,,(,));",
		"bad.tree":   "(A,B))C;",
		"empty.tree": "\n",
	})

	code := ts.run("check", "good.tree", "anon.tree")
	assert.Equal(t, 0, code, ts.stderr.String())
	out := ts.stdout.String()
	assert.Contains(t, out, "good.tree (3 nodes, 2 leaves)")
	assert.Contains(t, out, "anon.tree (6 nodes, 4 leaves)")
	assert.NotContains(t, out, "FAIL")

	ts.stdout.Reset()
	code = ts.run("check", "good.tree", "bad.tree", "empty.tree", "missing.tree")
	assert.Equal(t, exitInvalidTree, code)
	out = ts.stdout.String()
	assert.Contains(t, out, "FAIL bad.tree: Error on line 1, column 6: "+
		"more close brackets than open brackets")
	assert.Contains(t, out, "FAIL empty.tree: no tree found")
	assert.Contains(t, out, "missing.tree: file does not exist")
	assert.Contains(t, ts.stderr.String(), "3 of 4 trees could not be read")
}

func TestCheckStdin(t *testing.T) {
	ts := newTestState(t, nil)
	ts.stdin.WriteString("( A , B ) C ;")
	assert.Equal(t, 0, ts.run("check", "-"))
	assert.Contains(t, ts.stdout.String(), "- (3 nodes, 2 leaves)")
}

func TestCheckUsage(t *testing.T) {
	ts := newTestState(t, nil)
	assert.Equal(t, exitUsage, ts.run("check"))
}

func TestShowText(t *testing.T) {
	ts := newTestState(t, map[string]string{
		"t.tree": "(A:1,(X,Y)B)C;",
	})
	require.Equal(t, 0, ts.run("show", "t.tree"), ts.stderr.String())
	assert.Equal(t,
		"C\n  A (1.000000)\n  B\n    X\n    Y\n", ts.stdout.String())
}

func TestShowSequences(t *testing.T) {
	ts := newTestState(t, map[string]string{
		"t.tree":      "(A:1,B:2)C;",
		"t.fasta":     ">A desc\nacgt\n>B\nAC-T\n",
		"short.fasta": ">A\nACGT\n>B\nAC\n",
	})
	require.Equal(t, 0, ts.run("show", "t.tree", "--sequences", "t.fasta"),
		ts.stderr.String())
	assert.Equal(t,
		"C\n  A (1.000000) ACGT\n  B (2.000000) AC-T\n", ts.stdout.String())

	ts.stdout.Reset()
	assert.Equal(t, exitInvalidTree, ts.run("show", "t.tree", "-s", "short.fasta"))
	assert.Contains(t, ts.stderr.String(), "has length 2")
	assert.Empty(t, ts.stdout.String())
}

func TestShowSequenceErrors(t *testing.T) {
	ts := newTestState(t, map[string]string{
		"t.tree":     "(A,B)C;",
		"bad.fasta":  ">A\nAC1T\n>B\nACGT\n",
		"part.fasta": ">A\nACGT\n",
	})

	assert.Equal(t, exitInvalidTree, ts.run("show", "t.tree", "-s", "bad.fasta"))
	assert.Contains(t, ts.stderr.String(),
		"bad.fasta: Error on line 2: Invalid character '1'.")

	ts.stderr.Reset()
	assert.Equal(t, exitInvalidTree, ts.run("show", "t.tree", "-s", "part.fasta"))
	assert.Contains(t, ts.stderr.String(), "No sequence found for leaf 'B'.")

	ts.stderr.Reset()
	assert.Equal(t, exitInvalidTree, ts.run("show", "t.tree", "-s", "missing.fasta"))

	ts.stderr.Reset()
	assert.Equal(t, exitUsage,
		ts.run("show", "t.tree", "-s", "bad.fasta", "--sequence-format", "clustal"))
	assert.Contains(t, ts.stderr.String(), "invalid sequence format 'clustal'")
	assert.Empty(t, ts.stdout.String())
}

func TestShowSequenceFormats(t *testing.T) {
	const want = "C\n  A (1.000000) AC-T\n  B (2.000000) ACGT\n"
	tests := []struct {
		format string
		input  string
	}{
		{"fasta", ">A\nAC-T\n>B\nACGT\n"},
		{"a2m", ">A\nAC.-T\n>B\nACgGT\n"},
		{"a3m", ">A\nAC-T\n>B\nACgGT\n"},
		{"stockholm", "# STOCKHOLM 1.0\nA AC\nB AC\n\nA -T\nB GT\n//\n"},
	}
	for _, test := range tests {
		t.Run(test.format, func(t *testing.T) {
			ts := newTestState(t, map[string]string{
				"t.tree": "(A:1,B:2)C;",
				"aln":    test.input,
			})
			code := ts.run("show", "t.tree", "-s", "aln",
				"--sequence-format", test.format)
			require.Equal(t, 0, code, ts.stderr.String())
			assert.Equal(t, want, ts.stdout.String())
		})
	}
}

func TestShowStructured(t *testing.T) {
	ts := newTestState(t, map[string]string{
		"t.tree": "((A:0.5,B:0)X:1,C)Y;",
	})

	check := func(tree *newick.Tree) {
		t.Helper()
		assert.Equal(t, "Y", tree.Label)
		require.Len(t, tree.Children, 2)
		x := tree.Children[0]
		assert.Equal(t, "X", x.Label)
		require.NotNil(t, x.Length)
		assert.Equal(t, 1.0, *x.Length)
		require.Len(t, x.Children, 2)
		require.NotNil(t, x.Children[1].Length)
		assert.Equal(t, 0.0, *x.Children[1].Length)
		assert.Nil(t, tree.Children[1].Length)
	}

	require.Equal(t, 0, ts.run("show", "t.tree", "--format", "json"))
	var fromJSON newick.Tree
	require.NoError(t, json.Unmarshal(ts.stdout.Bytes(), &fromJSON))
	check(&fromJSON)

	ts.stdout.Reset()
	require.Equal(t, 0, ts.run("show", "t.tree", "-f", "yaml"))
	var fromYAML newick.Tree
	require.NoError(t, yaml.Unmarshal(ts.stdout.Bytes(), &fromYAML))
	check(&fromYAML)

	ts.stdout.Reset()
	assert.Equal(t, exitUsage, ts.run("show", "t.tree", "-f", "xml"))
	assert.Contains(t, ts.stderr.String(), "invalid output format 'xml'")
}

func TestShowInvalidTree(t *testing.T) {
	ts := newTestState(t, map[string]string{"t.tree": "A:x;"})
	assert.Equal(t, exitInvalidTree, ts.run("show", "t.tree"))
	assert.Contains(t, ts.stderr.String(), "invalid branch length")
	assert.Empty(t, ts.stdout.String())
}

func TestStats(t *testing.T) {
	ts := newTestState(t, map[string]string{
		"t.tree": "(A:1,(B:2,C:3)D:4,E,)F;",
	})
	require.Equal(t, 0, ts.run("stats", "t.tree"), ts.stderr.String())
	out := ts.stdout.String()
	assert.Contains(t, out, "nodes:          7\n")
	assert.Contains(t, out, "leaves:         5\n")
	assert.Contains(t, out, "labeled leaves: 4\n")
	assert.Contains(t, out, "depth:          2\n")
	assert.Contains(t, out, "total length:   10\n")

	ts.stdout.Reset()
	require.Equal(t, 0, ts.run("stats", "t.tree", "--json"))
	var st treeStats
	require.NoError(t, json.Unmarshal(ts.stdout.Bytes(), &st))
	assert.Equal(t, treeStats{
		Nodes: 7, Leaves: 5, LabeledLeaves: 4, Depth: 2, TotalLength: 10,
	}, st)
}

func TestVerboseLogging(t *testing.T) {
	ts := newTestState(t, map[string]string{"t.tree": "(A,B);"})
	require.Equal(t, 0, ts.run("check", "t.tree", "-v", "--log-format", "json"))

	lines := strings.Split(strings.TrimSpace(ts.stderr.String()), "\n")
	require.NotEmpty(t, lines)
	found := false
	for _, line := range lines {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		if entry["msg"] == "Read tree" {
			found = true
			assert.Equal(t, "t.tree", entry["file"])
			assert.Equal(t, float64(3), entry["nodes"])
		}
	}
	assert.True(t, found, "no 'Read tree' log entry in %s", ts.stderr.String())
}

func TestBuildEnvMap(t *testing.T) {
	env := buildEnvMap([]string{"A=1", "B=x=y", "C"})
	assert.Equal(t, map[string]string{"A": "1", "B": "x=y", "C": ""}, env)
}
