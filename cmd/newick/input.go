package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/TuftsBCB/seq"
	"github.com/sirupsen/logrus"

	"github.com/TuftsBCB/phylo/fasta"
	"github.com/TuftsBCB/phylo/msa"
	"github.com/TuftsBCB/phylo/newick"
)

var sequenceFormats = []string{"fasta", "a2m", "a3m", "stockholm"}

// open returns the file at path, or standard input for "-".
func open(gs *globalState, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(gs.stdin), nil
	}
	return gs.fs.Open(path)
}

func readTree(gs *globalState, path string) (*newick.Tree, error) {
	f, err := open(gs, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	tree, err := newick.NewReader(f).ReadTree()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: no tree found", path)
	} else if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	gs.logger.WithFields(logrus.Fields{
		"file":   path,
		"nodes":  tree.Size(),
		"leaves": len(tree.Leaves()),
	}).Debug("Read tree")
	return tree, nil
}

// readSequences reads the alignment at path, which is in one of the
// sequenceFormats.
func readSequences(gs *globalState, path, format string) ([]seq.Sequence, error) {
	f, err := open(gs, path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var seqs []seq.Sequence
	switch format {
	case "fasta", "":
		seqs, err = fasta.NewAlignedReader(f).ReadAll()
	case "a2m", "a3m":
		seqs, err = msa.Read(f)
	case "stockholm":
		seqs, err = msa.ReadStockholm(f)
	default:
		return nil, fmt.Errorf("unknown sequence format '%s', must be one of %v",
			format, sequenceFormats)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	gs.logger.WithFields(logrus.Fields{
		"file":      path,
		"format":    format,
		"sequences": len(seqs),
	}).Debug("Read sequences")
	return seqs, nil
}
