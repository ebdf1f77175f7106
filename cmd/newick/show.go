package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/TuftsBCB/phylo/newick"
)

type cmdShow struct {
	gs        *globalState
	format    string
	sequences string
	seqFormat string
}

func (c *cmdShow) run(_ *cobra.Command, args []string) error {
	if !contains(sequenceFormats, c.seqFormat) {
		return &exitError{
			code: exitUsage,
			err:  fmt.Errorf("invalid sequence format '%s', must be one of %v",
				c.seqFormat, sequenceFormats),
		}
	}
	tree, err := readTree(c.gs, args[0])
	if err != nil {
		return &exitError{code: exitInvalidTree, err: err}
	}
	if c.sequences != "" {
		seqs, err := readSequences(c.gs, c.sequences, c.seqFormat)
		if err != nil {
			return &exitError{code: exitInvalidTree, err: err}
		}
		if err := tree.AttachSequences(seqs); err != nil {
			return &exitError{
				code: exitInvalidTree,
				err:  fmt.Errorf("%s: %w", c.sequences, err),
			}
		}
	}

	out, err := formatTree(tree, c.gs.conf.Format.String)
	if err != nil {
		return err
	}
	_, err = c.gs.stdout.Write(out)
	return err
}

func formatTree(tree *newick.Tree, format string) ([]byte, error) {
	switch format {
	case "yaml":
		return yaml.Marshal(tree)
	case "json":
		out, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case "text", "":
		return []byte(textTree(tree)), nil
	}
	return nil, fmt.Errorf("unknown output format '%s'", format)
}

// textTree is the indented form of the tree with leaf sequences, if any,
// after the leaf names.
func textTree(tree *newick.Tree) string {
	leaves := tree.Leaves()
	if len(leaves) == 0 || leaves[0].Sequence == "" {
		return tree.String()
	}
	var out strings.Builder
	tree.Walk(func(n *newick.Tree, depth int) bool {
		name := n.Label
		if name == "" {
			name = "N/A"
		}
		line := fmt.Sprintf("%*s%s", 2*depth, "", name)
		if d, ok := n.Distance(); ok {
			line += fmt.Sprintf(" (%f)", d)
		}
		if n.Sequence != "" {
			line += " " + n.Sequence
		}
		out.WriteString(line)
		out.WriteByte('\n')
		return true
	})
	return out.String()
}

func getCmdShow(gs *globalState) *cobra.Command {
	c := &cmdShow{gs: gs}
	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print a Newick tree",
		Long: `Print the tree in FILE as indented text, YAML or JSON.
With --sequences, leaves are annotated with the sequences of an alignment
whose names match the leaf labels. The alignment is read as aligned FASTA
unless --sequence-format names a2m, a3m or stockholm.`,
		Args: cobra.ExactArgs(1),
		RunE: c.run,
	}
	cmd.Flags().StringVarP(&c.format, "format", "f", "text",
		"output format, one of text, yaml or json")
	cmd.Flags().StringVarP(&c.sequences, "sequences", "s", "",
		"alignment file with a sequence for every leaf")
	cmd.Flags().StringVar(&c.seqFormat, "sequence-format", "fasta",
		"format of the --sequences file, one of fasta, a2m, a3m or stockholm")
	return cmd
}
