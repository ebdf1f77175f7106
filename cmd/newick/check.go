package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type cmdCheck struct {
	gs *globalState
}

func (c *cmdCheck) run(_ *cobra.Command, args []string) error {
	ok := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	failed := 0
	for _, path := range args {
		tree, err := readTree(c.gs, path)
		if err != nil {
			failed++
			fmt.Fprintf(c.gs.stdout, "%s %s\n", fail("FAIL"), err)
			continue
		}
		fmt.Fprintf(c.gs.stdout, "%s %s (%d nodes, %d leaves)\n",
			ok("OK  "), path, tree.Size(), len(tree.Leaves()))
	}
	if failed > 0 {
		return &exitError{
			code: exitInvalidTree,
			err:  fmt.Errorf("%d of %d trees could not be read", failed, len(args)),
		}
	}
	return nil
}

func getCmdCheck(gs *globalState) *cobra.Command {
	c := &cmdCheck{gs: gs}
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Check that files hold well formed Newick trees",
		Long: `Parse every file given and report whether it holds a well formed tree.
Use "-" to read from standard input. The exit code is 1 if any tree fails.`,
		Args: cobra.MinimumNArgs(1),
		RunE: c.run,
	}
}
