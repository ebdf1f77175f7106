package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TuftsBCB/phylo/newick"
)

type treeStats struct {
	Nodes         int     `json:"nodes"`
	Leaves        int     `json:"leaves"`
	LabeledLeaves int     `json:"labeled_leaves"`
	Depth         int     `json:"depth"`
	TotalLength   float64 `json:"total_length"`
}

func computeStats(tree *newick.Tree) treeStats {
	leaves := tree.Leaves()
	st := treeStats{
		Nodes:       tree.Size(),
		Leaves:      len(leaves),
		Depth:       tree.Depth(),
		TotalLength: tree.TotalLength(),
	}
	for _, leaf := range leaves {
		if leaf.Label != "" {
			st.LabeledLeaves++
		}
	}
	return st
}

type cmdStats struct {
	gs     *globalState
	isJSON bool
}

func (c *cmdStats) run(_ *cobra.Command, args []string) error {
	tree, err := readTree(c.gs, args[0])
	if err != nil {
		return &exitError{code: exitInvalidTree, err: err}
	}
	st := computeStats(tree)

	if c.isJSON {
		out, err := json.Marshal(st)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.gs.stdout, string(out))
		return err
	}
	_, err = fmt.Fprintf(c.gs.stdout,
		"nodes:          %d\nleaves:         %d\nlabeled leaves: %d\n"+
			"depth:          %d\ntotal length:   %g\n",
		st.Nodes, st.Leaves, st.LabeledLeaves, st.Depth, st.TotalLength)
	return err
}

func getCmdStats(gs *globalState) *cobra.Command {
	c := &cmdStats{gs: gs}
	cmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Summarize a Newick tree",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}
	cmd.Flags().BoolVar(&c.isJSON, "json", false,
		"if set, statistics will be in JSON format")
	return cmd
}
