package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// Tree is a finished Huffman tree together with the code map derived from it.
// A Tree is immutable once built and is safe for concurrent use.
type Tree struct {
	root        *Branch
	codes       [NumSymbols]Bits
	present     [NumSymbols]bool
	numLeaves   int
	numBranches int
	minSize     int
	maxSize     int
	sentinel    Symbol
	hasSentinel bool
}

// BuildTree constructs an optimal Huffman tree for the given frequencies.
//
// Partial trees are merged two at a time, lowest frequency first.  Equal
// frequencies are resolved by creation order: leaves are created in
// ascending symbol order, and each new branch is created after every node
// that already exists.  The first node taken from the queue becomes child 0
// of the new branch, and the second becomes child 1.
//
// If only one symbol has a non-zero count, a zero-frequency sentinel leaf is
// added for the smallest absent symbol, so that the root is always a Branch.
// The sentinel is reported by Sentinel and is part of the code map.
//
func BuildTree(freqs Frequencies) (*Tree, error) {
	symbols := freqs.Symbols()
	if len(symbols) == 0 {
		return nil, ErrEmptyInput
	}

	t := &Tree{}

	// Step 1: seed the queue with one leaf per symbol.

	q := nodeQueue{list: make([]queueEntry, 0, len(symbols)+1)}
	for _, symbol := range symbols {
		q.Add(freqs[symbol], &Leaf{Symbol: symbol})
	}
	if len(symbols) == 1 {
		t.sentinel = 0
		if symbols[0] == 0 {
			t.sentinel = 1
		}
		t.hasSentinel = true
		q.Add(0, &Leaf{Symbol: t.sentinel})
	}
	numLeaves := q.Len()

	// Step 2: merge the two lowest entries until one remains.

	for q.Len() > 1 {
		a := q.Take()
		b := q.Take()

		// Compute freqSum using saturating addition
		freqSum := a.freq + b.freq
		if freqSum < a.freq {
			freqSum = math.MaxUint64
		}

		q.Add(freqSum, &Branch{Children: [2]Node{a.node, b.node}})
		t.numBranches++
	}

	root, ok := q.Take().node.(*Branch)
	assert.Assertf(ok, "Huffman tree root must be a *Branch")
	t.root = root

	// Step 3: walk the tree to derive the code map.

	t.deriveCodes()
	assert.Assertf(t.numLeaves == numLeaves, "derived %d codes, expected %d", t.numLeaves, numLeaves)
	assert.Assertf(t.numBranches == numLeaves-1, "built %d branches for %d leaves", t.numBranches, numLeaves)
	return t, nil
}

// deriveCodes walks the tree depth-first, appending a 0 bit when descending
// into child 0 and a 1 bit when descending into child 1, and records the
// accumulated path at each leaf.
func (t *Tree) deriveCodes() {
	// The stack holds only branches.  stackItem.x tracks progress:
	//   x=0 → We just arrived at this branch
	//   x=1 → We have already processed child 0
	//   x=2 → We have already processed both children
	//
	// path always holds the bits leading to the branch on top of the
	// stack.

	type stackItem struct {
		b *Branch
		x byte
	}

	stack := make([]stackItem, 0, 16)
	var path Bits

	processChild := func(child Node, bit bool) {
		path.Append(bit)
		switch n := child.(type) {
		case *Branch:
			stack = append(stack, stackItem{b: n})
			return
		case *Leaf:
			t.setCode(n.Symbol, path.Clone())
		default:
			assert.Assertf(false, "unexpected Huffman tree node %T", child)
		}
		path.truncate(path.Len() - 1)
	}

	stack = append(stack, stackItem{b: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(top.b.Children[0], false)
		case 1:
			processChild(top.b.Children[1], true)
		case 2:
			stack = stack[:len(stack)-1]
			if len(stack) != 0 {
				path.truncate(path.Len() - 1)
			}
		}
	}
}

func (t *Tree) setCode(symbol Symbol, code Bits) {
	assert.Assertf(!t.present[symbol], "symbol %d appears in more than one leaf", symbol)
	size := code.Len()
	if t.numLeaves == 0 {
		t.minSize = size
		t.maxSize = size
	} else if t.minSize > size {
		t.minSize = size
	} else if t.maxSize < size {
		t.maxSize = size
	}
	t.codes[symbol] = code
	t.present[symbol] = true
	t.numLeaves++
}

// Root returns the root of the tree.  The root is always a *Branch.
func (t *Tree) Root() Node {
	return t.root
}

// Code returns the Huffman code for symbol, or false if the symbol has no
// leaf in this tree.  The returned Bits are a private copy.
func (t *Tree) Code(symbol Symbol) (Bits, bool) {
	if !t.present[symbol] {
		return Bits{}, false
	}
	return t.codes[symbol].Clone(), true
}

// Codes returns the complete code map.
func (t *Tree) Codes() map[Symbol]Bits {
	out := make(map[Symbol]Bits, t.numLeaves)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if t.present[symbol] {
			out[Symbol(symbol)] = t.codes[symbol].Clone()
		}
	}
	return out
}

// NumLeaves returns the number of leaves, which is also the number of
// entries in the code map.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// NumBranches returns the number of branches.  It is always NumLeaves() - 1.
func (t *Tree) NumBranches() int {
	return t.numBranches
}

// MinSize is the bit length of the shortest code.
func (t *Tree) MinSize() int {
	return t.minSize
}

// MaxSize is the bit length of the longest code.
func (t *Tree) MaxSize() int {
	return t.maxSize
}

// Sentinel returns the padding symbol added by BuildTree for single-symbol
// inputs.  The boolean is false for every other tree.
func (t *Tree) Sentinel() (Symbol, bool) {
	return t.sentinel, t.hasSentinel
}

// EncodedSize returns the number of bits needed to encode an input with the
// given frequencies, or false if some symbol with a non-zero count has no
// code.
func (t *Tree) EncodedSize(freqs Frequencies) (uint64, bool) {
	var sum uint64
	for symbol, f := range freqs {
		if f == 0 {
			continue
		}
		if !t.present[symbol] {
			return 0, false
		}
		sum += f * uint64(t.codes[symbol].Len())
	}
	return sum, true
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.numLeaves)
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	if t.hasSentinel {
		fmt.Fprintf(&buf, "\tSentinel() = %d\n", t.sentinel)
	}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if t.present[symbol] {
			fmt.Fprintf(&buf, "\tCode(%d) = %s\n", symbol, t.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of the Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d symbols, with coded lengths of %d .. %d bits)", t.numLeaves, t.minSize, t.maxSize)
}

var _ fmt.Stringer = (*Tree)(nil)
