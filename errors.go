package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a Tree is requested for an input that
	// contains no symbols.
	ErrEmptyInput = errors.New("cannot build Huffman tree: empty input")

	// ErrUnknownSymbol is matched by *UnknownSymbolError.
	ErrUnknownSymbol = errors.New("symbol has no Huffman code")

	// ErrTruncatedStream is matched by *TruncatedStreamError.
	ErrTruncatedStream = errors.New("Huffman bit stream ends inside a code")

	// ErrDegenerateTree is returned when a tree cannot be walked bit by bit,
	// i.e. its root is missing or is a Leaf.
	ErrDegenerateTree = errors.New("degenerate Huffman tree: root is not a branch")

	// ErrMalformedTree is returned when a tree has a missing child or
	// reaches the same branch twice.
	ErrMalformedTree = errors.New("malformed Huffman tree")
)

// UnknownSymbolError is returned by the Encoder when a symbol in the input
// has no entry in the Tree's code map.
type UnknownSymbolError struct {
	Symbol Symbol

	// Offset is the position of Symbol in the input, or -1 if the symbol
	// was encoded on its own.
	Offset int
}

// Error fulfills the error interface.
func (err *UnknownSymbolError) Error() string {
	if err.Offset < 0 {
		return fmt.Sprintf("%v: %d", ErrUnknownSymbol, err.Symbol)
	}
	return fmt.Sprintf("%v: %d at offset %d", ErrUnknownSymbol, err.Symbol, err.Offset)
}

// Is reports whether target is ErrUnknownSymbol.
func (err *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

// TruncatedStreamError is returned by the Decoder when the bit sequence does
// not end on a symbol boundary.
type TruncatedStreamError struct {
	// Consumed is the total number of bits read.
	Consumed int

	// Pending is the number of trailing bits that did not complete a code.
	Pending int
}

// Error fulfills the error interface.
func (err *TruncatedStreamError) Error() string {
	return fmt.Sprintf("%v: %d of %d bits left dangling", ErrTruncatedStream, err.Pending, err.Consumed)
}

// Is reports whether target is ErrTruncatedStream.
func (err *TruncatedStreamError) Is(target error) bool {
	return target == ErrTruncatedStream
}

var (
	_ error = (*UnknownSymbolError)(nil)
	_ error = (*TruncatedStreamError)(nil)
)
