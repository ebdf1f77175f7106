package newick

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
)

// Reader corresponds to the state necessary to read a tree from Newick
// formatted input.
type Reader struct {
	input io.Reader
}

// NewReader returns a reader ready for reading a tree from `r`.
func NewReader(r io.Reader) *Reader {
	return &Reader{input: r}
}

// ReadTree reads the remaining input into memory and parses the first tree
// in it. If the input is empty or only whitespace, then a nil `Tree` is
// returned with `io.EOF` as the error.
func (r *Reader) ReadTree() (*Tree, error) {
	bs, err := io.ReadAll(r.input)
	if err != nil {
		return nil, fmt.Errorf("Could not read Newick input: %w", err)
	}
	if len(bytes.TrimSpace(bs)) == 0 {
		return nil, io.EOF
	}
	return Parse(string(bs))
}

// Parse reads the first tree in s and returns its root. Everything after the
// terminal ';' is ignored. No tree is returned when an error occurs.
func Parse(s string) (*Tree, error) {
	p := &parser{lx: lex(s), state: StateNodeStart}
	return p.run()
}

type parser struct {
	lx    *lexer
	state State

	// The most recently created node that may still receive a label,
	// a length or children. Nil until the first node is created.
	current *Tree
}

func (p *parser) run() (*Tree, error) {
	var last item
	for p.state != StateDone {
		it := p.lx.nextToken()
		if it.typ == itemEOF {
			return nil, eofErr(it)
		}

		var err error
		switch p.state {
		case StateNodeStart:
			err = p.nodeStart(it)
		case StateLabel:
			err = p.label(it)
		case StateColon:
			err = p.colon(it)
		case StateDist:
			err = p.dist(it)
		case StateNodeEnd:
			err = p.nodeEnd(it)
		default:
			panic(fmt.Sprintf("BUG: Parser in unexpected state %s.", p.state))
		}
		if err != nil {
			return nil, err
		}
		last = it
	}

	if p.current == nil {
		return nil, p.bracketErr(ExcessClose, last)
	}
	if p.current.Parent() != nil {
		return nil, p.bracketErr(ExcessOpen, last)
	}
	return p.current, nil
}

func (p *parser) nodeStart(it item) error {
	switch it.typ {
	case itemDescendentsStart:
		p.current = p.newNode()
	case itemDescendentsEnd:
		// An anonymous leaf closing its parent's descendent list.
		if p.current == nil {
			return p.bracketErr(ExcessClose, it)
		}
		p.newNode()
		p.state = StateNodeEnd
	case itemDelimiter:
		// An anonymous leaf followed by a sibling.
		if p.current == nil {
			return p.bracketErr(ExcessClose, it)
		}
		p.newNode()
	case itemLength:
		p.current = p.newNode()
		p.state = StateColon
	case itemText:
		n := p.newNode()
		n.Label = it.val
		p.current = n
		p.state = StateLabel
	default:
		return p.syntaxErr(it)
	}
	return nil
}

func (p *parser) label(it item) error {
	switch it.typ {
	case itemDescendentsEnd:
		return p.closeNode(it, StateNodeEnd)
	case itemDelimiter:
		return p.closeNode(it, StateNodeStart)
	case itemLength:
		p.state = StateColon
	case itemTerminal:
		p.state = StateDone
	default:
		return p.syntaxErr(it)
	}
	return nil
}

func (p *parser) colon(it item) error {
	if it.typ != itemText {
		return p.syntaxErr(it)
	}
	d, err := parseDistance(it.val)
	if err != nil {
		return &DistanceError{
			Token:  it.val,
			Line:   it.line,
			Column: it.col,
			Err:    err,
		}
	}
	p.current.SetDistance(d)
	p.state = StateDist
	return nil
}

func (p *parser) dist(it item) error {
	switch it.typ {
	case itemDescendentsEnd:
		return p.closeNode(it, StateNodeEnd)
	case itemDelimiter:
		return p.closeNode(it, StateNodeStart)
	case itemTerminal:
		p.state = StateDone
	default:
		return p.syntaxErr(it)
	}
	return nil
}

func (p *parser) nodeEnd(it item) error {
	switch it.typ {
	case itemDescendentsEnd:
		return p.closeNode(it, StateNodeEnd)
	case itemDelimiter:
		return p.closeNode(it, StateNodeStart)
	case itemLength:
		p.state = StateColon
	case itemTerminal:
		p.state = StateDone
	case itemText:
		p.current.Label = it.val
		p.state = StateLabel
	default:
		return p.syntaxErr(it)
	}
	return nil
}

// newNode creates a node under the current one. It does not move the cursor.
func (p *parser) newNode() *Tree {
	n := &Tree{}
	attach(p.current, n)
	return n
}

// closeNode hands control back to the parent of the current node.
func (p *parser) closeNode(it item, next State) error {
	parent := p.current.Parent()
	if parent == nil {
		return p.bracketErr(ExcessClose, it)
	}
	p.current = parent
	p.state = next
	return nil
}

func (p *parser) syntaxErr(it item) error {
	return &SyntaxError{
		State:  p.state,
		Token:  it.val,
		Line:   it.line,
		Column: it.col,
	}
}

func (p *parser) bracketErr(excess Excess, it item) error {
	return &BracketError{
		Excess: excess,
		State:  p.state,
		Token:  it.val,
		Line:   it.line,
		Column: it.col,
	}
}

var (
	errNotNumber = errors.New("not a decimal number")
	errNotFinite = errors.New("not a finite number")

	// Sign, mantissa with at least one digit, optional exponent.
	numberPattern = regexp.MustCompile(
		`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

// parseDistance accepts decimal floating point literals only. Values that
// strconv would otherwise accept, such as "NaN", "Inf" or hexadecimal
// floats, are rejected.
func parseDistance(s string) (float64, error) {
	if !numberPattern.MatchString(s) {
		return 0, errNotNumber
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsInf(d, 0) || math.IsNaN(d) {
		return 0, errNotFinite
	}
	return d, nil
}
