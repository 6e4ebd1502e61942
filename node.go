package huffman

// Node is an element of a Huffman tree.  The only implementations are *Leaf
// and *Branch.
type Node interface {
	isNode()
}

// Leaf is a Node that terminates a code and carries its Symbol.
type Leaf struct {
	Symbol Symbol
}

// Branch is a Node with exactly two children.  Children[0] is reached by a 0
// bit and Children[1] by a 1 bit.
type Branch struct {
	Children [2]Node
}

func (*Leaf) isNode() {}
func (*Branch) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Branch)(nil)
)
