// Command newick checks, prints and summarizes phylogenetic trees written in
// the Newick format.
package main

import (
	"os"

	"github.com/spf13/afero"
)

func main() {
	gs := newGlobalState(afero.NewOsFs(), buildEnvMap(os.Environ()),
		os.Stdin, os.Stdout, os.Stderr)
	os.Exit(execute(gs, os.Args[1:]))
}
