// Package huffman implements a two-pass Huffman entropy coder over the byte
// alphabet.  The input is scanned once to count symbol frequencies, an
// optimal prefix-free code tree is built from those counts, and the tree is
// then used both to encode the input into a bit sequence and to decode that
// bit sequence back into bytes.
//
// The Tree is the only artifact shared between the two directions.  It is
// built once, never mutated, and may be read by any number of goroutines.
// No serialized form of the tree is defined.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
