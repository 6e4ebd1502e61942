package huffman

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Decoder walks a Tree bit by bit to recover the encoded symbols.
//
// A Decoder is a small state machine: it starts at the root, moves to child 0
// or child 1 for each bit, and emits a symbol and returns to the root each
// time it reaches a leaf.  The Tree itself is never modified, so any number
// of Decoders may share one Tree.
type Decoder struct {
	root     *Branch
	pos      *Branch
	consumed int
	pending  int
}

// NewDecoder returns a Decoder positioned at the root of t.
func NewDecoder(t *Tree) (*Decoder, error) {
	if t == nil || t.root == nil {
		return nil, ErrDegenerateTree
	}
	return &Decoder{root: t.root, pos: t.root}, nil
}

// NewDecoderFromRoot is like NewDecoder, but accepts a bare root Node.  It
// fails with ErrDegenerateTree if root is nil or a *Leaf, and with
// ErrMalformedTree if any branch below it has a nil child or the same branch
// is reachable twice.
func NewDecoderFromRoot(root Node) (*Decoder, error) {
	switch n := root.(type) {
	case *Branch:
		if n == nil {
			return nil, ErrDegenerateTree
		}
		if err := checkTree(n); err != nil {
			return nil, err
		}
		return &Decoder{root: n, pos: n}, nil
	case *Leaf:
		return nil, ErrDegenerateTree
	default:
		return nil, ErrDegenerateTree
	}
}

// checkTree walks every branch below root once.
func checkTree(root *Branch) error {
	seen := make(map[*Branch]struct{})
	stack := []*Branch{root}
	for len(stack) != 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, found := seen[b]; found {
			return fmt.Errorf("%w: branch reached twice", ErrMalformedTree)
		}
		seen[b] = struct{}{}

		for index, child := range b.Children {
			switch n := child.(type) {
			case *Branch:
				if n == nil {
					return fmt.Errorf("%w: nil *Branch as child %d", ErrMalformedTree, index)
				}
				stack = append(stack, n)
			case *Leaf:
				if n == nil {
					return fmt.Errorf("%w: nil *Leaf as child %d", ErrMalformedTree, index)
				}
			default:
				return fmt.Errorf("%w: child %d is %T", ErrMalformedTree, index, child)
			}
		}
	}
	return nil
}

// Reset returns the Decoder to the root and clears its counters.
func (d *Decoder) Reset() {
	d.pos = d.root
	d.consumed = 0
	d.pending = 0
}

// Step consumes one bit.  If the bit completes a code, Step returns the
// decoded Symbol and true, and the Decoder is back at the root.
func (d *Decoder) Step(bit bool) (Symbol, bool) {
	var index byte
	if bit {
		index = 1
	}
	d.consumed++

	switch n := d.pos.Children[index].(type) {
	case *Leaf:
		d.pos = d.root
		d.pending = 0
		return n.Symbol, true
	case *Branch:
		d.pos = n
		d.pending++
		return 0, false
	default:
		assert.Assertf(false, "unexpected Huffman tree node %T", n)
		return 0, false
	}
}

// AtBoundary reports whether the Decoder is at the root, i.e. whether every
// bit consumed so far belongs to a complete code.
func (d *Decoder) AtBoundary() bool {
	return d.pos == d.root
}

// Finish returns a *TruncatedStreamError if the bits consumed so far did not
// end on a symbol boundary.
func (d *Decoder) Finish() error {
	if d.AtBoundary() {
		return nil
	}
	return &TruncatedStreamError{Consumed: d.consumed, Pending: d.pending}
}

// DecodeAll resets the Decoder and decodes every bit of bits.  No output is
// returned on failure.
func (d *Decoder) DecodeAll(bits Bits) ([]byte, error) {
	d.Reset()
	n := bits.Len()
	out := make([]byte, 0, n/2)
	for i := 0; i < n; i++ {
		if symbol, ok := d.Step(bits.At(i)); ok {
			out = append(out, byte(symbol))
		}
	}
	if err := d.Finish(); err != nil {
		return nil, err
	}
	return out, nil
}
