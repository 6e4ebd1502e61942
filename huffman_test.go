package huffman

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

// makeRandomInputs returns inputs with skewed distributions over alphabets of
// varying size, including single-symbol inputs.
func makeRandomInputs(count int) [][]byte {
	rng := rand.New(rand.NewSource(1))
	inputs := [][]byte{
		[]byte("aaab"),
		[]byte("x"),
		[]byte("xxxxxxxx"),
		{0, 0, 0},
		[]byte("hello 😊 xyz 🙋🏿‍♀️ world!"),
	}
	for i := 0; i < count; i++ {
		alphabet := 1 + rng.Intn(NumSymbols)
		size := 1 + rng.Intn(2000)
		input := make([]byte, size)
		for j := range input {
			// Squaring skews the distribution toward small symbols.
			r := rng.Float64()
			input[j] = byte(int(r*r*float64(alphabet)) % NumSymbols)
		}
		inputs = append(inputs, input)
	}
	return inputs
}

func TestCompress_RoundTrip(t *testing.T) {
	for i, input := range makeRandomInputs(100) {
		tree, bits, err := Compress(input)
		if err != nil {
			t.Fatalf("input %d: Compress failed: %v", i, err)
		}
		output, err := Decompress(tree, bits)
		if err != nil {
			t.Fatalf("input %d: Decompress failed: %v", i, err)
		}
		if !bytes.Equal(input, output) {
			t.Errorf("input %d: round trip mismatch:\n\texpect: %q\n\tactual: %q", i, input, output)
		}
	}
}

func TestCompress_Scenario(t *testing.T) {
	tree, bits, err := Compress([]byte("aaab"))
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if expect := MakeBits(1, 1, 1, 0); !bits.Equal(expect) {
		t.Errorf("expected %s, got %s", expect, bits)
	}
	output, err := Decompress(tree, MakeBits(1, 1, 1, 0))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if string(output) != "aaab" {
		t.Errorf("expected \"aaab\", got %q", output)
	}
}

func TestCompress_SingleSymbol(t *testing.T) {
	for _, input := range []string{"x", "xxxxx"} {
		tree, bits, err := Compress([]byte(input))
		if err != nil {
			t.Fatalf("%q: Compress failed: %v", input, err)
		}
		if bits.Len() != len(input) {
			t.Errorf("%q: expected one bit per symbol, got %s", input, bits)
		}
		output, err := Decompress(tree, bits)
		if err != nil {
			t.Fatalf("%q: Decompress failed: %v", input, err)
		}
		if string(output) != input {
			t.Errorf("expected %q, got %q", input, output)
		}
	}
}

func TestCompress_Empty(t *testing.T) {
	tree, bits, err := Compress(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if tree != nil || bits.Len() != 0 {
		t.Errorf("expected no output, got %v and %s", tree, bits)
	}
}

func TestDecompress_Prefixes(t *testing.T) {
	for i, input := range makeRandomInputs(10) {
		tree, bits, err := Compress(input)
		if err != nil {
			t.Fatalf("input %d: Compress failed: %v", i, err)
		}

		boundaries := make(map[int]int, len(input))
		var pos int
		for j, ch := range input {
			code, _ := tree.Code(Symbol(ch))
			pos += code.Len()
			boundaries[pos] = j + 1
		}

		// Every proper prefix either ends on a boundary or is truncated.
		d, err := NewDecoder(tree)
		if err != nil {
			t.Fatalf("input %d: NewDecoder failed: %v", i, err)
		}
		for n := 1; n < bits.Len(); n++ {
			d.Step(bits.At(n - 1))
			_, onBoundary := boundaries[n]
			if err := d.Finish(); onBoundary != (err == nil) {
				t.Fatalf("input %d: prefix %d: boundary=%v, Finish() = %v", i, n, onBoundary, err)
			}
			if n > 256 {
				continue
			}

			output, err := Decompress(tree, bits.Prefix(n))
			if symbols, onBoundary := boundaries[n]; onBoundary {
				if err != nil || !bytes.Equal(output, input[:symbols]) {
					t.Fatalf("input %d: prefix %d: expected %d symbols, got %v (err=%v)", i, n, symbols, len(output), err)
				}
				continue
			}
			if !errors.Is(err, ErrTruncatedStream) {
				t.Fatalf("input %d: prefix %d: expected ErrTruncatedStream, got %v", i, n, err)
			}
		}
	}
}

func TestDecompress_SharedTree(t *testing.T) {
	input := []byte("shared trees are read-only")
	tree, bits, err := Compress(input)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	done := make(chan error, 8)
	for i := 0; i < cap(done); i++ {
		go func() {
			output, err := Decompress(tree, bits)
			if err == nil && !bytes.Equal(input, output) {
				err = errors.New("round trip mismatch")
			}
			done <- err
		}()
	}
	for i := 0; i < cap(done); i++ {
		if err := <-done; err != nil {
			t.Error(err)
		}
	}
}

func TestMakeStats(t *testing.T) {
	tree, bits, err := Compress([]byte("aaab"))
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	stats := MakeStats(tree, 4, bits)
	expect := Stats{InputBytes: 4, OutputBits: 4, NumLeaves: 2, MinSize: 1, MaxSize: 1}
	if stats != expect {
		t.Errorf("expected %+v, got %+v", expect, stats)
	}
	if stats.Ratio() != 0.125 {
		t.Errorf("expected ratio 0.125, got %v", stats.Ratio())
	}
	if (Stats{}).Ratio() != 0 {
		t.Errorf("expected zero ratio for empty input")
	}
}
