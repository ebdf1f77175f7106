package newick

import (
	"errors"
	"fmt"
)

// State is a state of the parser. Its String form is used in errors.
type State int

const (
	// StateNodeStart expects the beginning of a new node.
	StateNodeStart State = iota
	// StateLabel follows a node label.
	StateLabel
	// StateColon follows the ':' that introduces a branch length.
	StateColon
	// StateDist follows a branch length.
	StateDist
	// StateNodeEnd follows the ')' closing a descendent list.
	StateNodeEnd
	// StateDone is reached on the terminal ';'.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateNodeStart:
		return "NODE_START"
	case StateLabel:
		return "LABEL"
	case StateColon:
		return "COLON"
	case StateDist:
		return "DIST"
	case StateNodeEnd:
		return "NODE_END"
	case StateDone:
		return "DONE"
	}
	panic(fmt.Sprintf("BUG: Unknown parser state '%d'.", int(s)))
}

var (
	// ErrUnexpectedEOF is wrapped by the error returned when the input ends
	// before the terminal ';'.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrUnbalanced matches every *BracketError with errors.Is.
	ErrUnbalanced = errors.New("unbalanced brackets")
)

// SyntaxError is returned when a token is not valid in the current state.
type SyntaxError struct {
	State  State
	Token  string
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Error on line %d, column %d: unexpected token [%s] "+
		"encountered in the %s state.",
		e.Line, e.Column, escapeSpecial(e.Token), e.State)
}

// DistanceError is returned when the text following a ':' is not a finite
// decimal number.
type DistanceError struct {
	Token  string
	Line   int
	Column int
	Err    error
}

func (e *DistanceError) Error() string {
	return fmt.Sprintf("Error on line %d, column %d: invalid branch length "+
		"'%s': %s", e.Line, e.Column, e.Token, e.Err)
}

func (e *DistanceError) Unwrap() error {
	return e.Err
}

// Excess says which kind of bracket a tree has too many of.
type Excess int

const (
	// ExcessClose means a node was closed that was never opened, or a
	// second root was started.
	ExcessClose Excess = iota
	// ExcessOpen means the input ended while nodes were still open.
	ExcessOpen
)

func (e Excess) String() string {
	if e == ExcessOpen {
		return "more open brackets than close brackets"
	}
	return "more close brackets than open brackets"
}

// BracketError is returned when brackets in the input do not balance.
type BracketError struct {
	Excess Excess
	State  State
	Token  string
	Line   int
	Column int
}

func (e *BracketError) Error() string {
	return fmt.Sprintf("Error on line %d, column %d: %s (token [%s] in "+
		"the %s state).", e.Line, e.Column, e.Excess, e.Token, e.State)
}

func (e *BracketError) Is(target error) bool {
	return target == ErrUnbalanced
}

func eofErr(it item) error {
	return fmt.Errorf("Error on line %d, column %d: %w",
		it.line, it.col, ErrUnexpectedEOF)
}
