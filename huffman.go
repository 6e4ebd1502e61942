package huffman

// Compress builds a Tree from the symbol frequencies of input and encodes
// input with it.  It fails with ErrEmptyInput if input is empty.
func Compress(input []byte) (*Tree, Bits, error) {
	t, err := BuildTree(CountFrequencies(input))
	if err != nil {
		return nil, Bits{}, err
	}
	e, err := NewEncoder(t)
	if err != nil {
		return nil, Bits{}, err
	}
	bits, err := e.EncodeAll(input)
	if err != nil {
		return nil, Bits{}, err
	}
	return t, bits, nil
}

// Decompress decodes bits with the Tree that produced them.
func Decompress(t *Tree, bits Bits) ([]byte, error) {
	d, err := NewDecoder(t)
	if err != nil {
		return nil, err
	}
	return d.DecodeAll(bits)
}

// Stats summarizes the effect of compressing an input.
type Stats struct {
	InputBytes int
	OutputBits int
	NumLeaves  int
	MinSize    int
	MaxSize    int
}

// MakeStats reports the sizes involved in one Compress call.
func MakeStats(t *Tree, inputBytes int, bits Bits) Stats {
	return Stats{
		InputBytes: inputBytes,
		OutputBits: bits.Len(),
		NumLeaves:  t.NumLeaves(),
		MinSize:    t.MinSize(),
		MaxSize:    t.MaxSize(),
	}
}

// Ratio returns the output size divided by the input size, both in bits.
// It returns 0 for an empty input.
func (s Stats) Ratio() float64 {
	if s.InputBytes == 0 {
		return 0
	}
	return float64(s.OutputBits) / float64(s.InputBytes*8)
}
