package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Encoder turns symbols into Huffman-coded bits using a Tree's code map.
type Encoder struct {
	tree *Tree
}

// NewEncoder returns an Encoder for the given Tree.  It fails with
// ErrDegenerateTree if t is nil or was not built by BuildTree.
func NewEncoder(t *Tree) (Encoder, error) {
	if t == nil || t.root == nil {
		return Encoder{}, ErrDegenerateTree
	}
	return Encoder{tree: t}, nil
}

// Encode returns the code for a single Symbol.
func (e Encoder) Encode(symbol Symbol) (Bits, error) {
	if !e.tree.present[symbol] {
		return Bits{}, &UnknownSymbolError{Symbol: symbol, Offset: -1}
	}
	return e.tree.codes[symbol].Clone(), nil
}

// EncodeAll concatenates, in input order, the code for each byte of input.
// No output is returned on failure.
func (e Encoder) EncodeAll(input []byte) (Bits, error) {
	var out Bits
	out.Grow(len(input) * e.tree.minSize)
	for offset, ch := range input {
		if !e.tree.present[ch] {
			return Bits{}, &UnknownSymbolError{Symbol: Symbol(ch), Offset: offset}
		}
		out.AppendBits(e.tree.codes[ch])
	}
	return out, nil
}

// EncodeFrom is like EncodeAll, but reads its input from r until EOF.
func (e Encoder) EncodeFrom(r io.Reader) (Bits, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return Bits{}, fmt.Errorf("failed to read input: %w", err)
	}
	return e.EncodeAll(buf.Bytes())
}
