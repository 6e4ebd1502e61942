package huffman

import (
	"errors"
	"strings"
	"testing"
)

func makeTestEncoder() Encoder {
	e, err := NewEncoder(makeTestTree())
	if err != nil {
		panic(err)
	}
	return e
}

func TestEncoder_Encode(t *testing.T) {
	e := makeTestEncoder()

	type testRow struct {
		symbol Symbol
		code   string
	}

	testData := [...]testRow{
		{symbol: 0, code: "\"1100\""},
		{symbol: 1, code: "\"1101\""},
		{symbol: 2, code: "\"100\""},
		{symbol: 3, code: "\"101\""},
		{symbol: 4, code: "\"111\""},
		{symbol: 5, code: "\"0\""},
	}
	for _, row := range testData {
		t.Run(row.code, func(t *testing.T) {
			code, err := e.Encode(row.symbol)
			if err != nil {
				t.Fatalf("Encode(%d) failed: %v", row.symbol, err)
			}
			if actual := code.String(); actual != row.code {
				t.Errorf("expected %s, got %s", row.code, actual)
			}
		})
	}
}

func TestEncoder_EncodeAll(t *testing.T) {
	tree, err := BuildTree(CountFrequencies([]byte("aaab")))
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	e, err := NewEncoder(tree)
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}
	bits, err := e.EncodeAll([]byte("aaab"))
	if err != nil {
		t.Fatalf("EncodeAll failed: %v", err)
	}
	expect := MakeBits(1, 1, 1, 0)
	if !bits.Equal(expect) {
		t.Errorf("expected %s, got %s", expect, bits)
	}
}

func TestEncoder_EncodeFrom(t *testing.T) {
	e := makeTestEncoder()
	bits, err := e.EncodeFrom(strings.NewReader("\x05\x00\x04"))
	if err != nil {
		t.Fatalf("EncodeFrom failed: %v", err)
	}
	if expect := "\"01100111\""; bits.String() != expect {
		t.Errorf("expected %s, got %s", expect, bits)
	}
}

func TestEncoder_UnknownSymbol(t *testing.T) {
	e := makeTestEncoder()

	_, err := e.Encode('z')
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("Encode: expected ErrUnknownSymbol, got %v", err)
	}

	bits, err := e.EncodeAll([]byte{5, 5, 'z', 5})
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("EncodeAll: expected ErrUnknownSymbol, got %v", err)
	}
	if bits.Len() != 0 {
		t.Errorf("expected no partial output, got %s", bits)
	}

	var use *UnknownSymbolError
	if !errors.As(err, &use) {
		t.Fatalf("expected *UnknownSymbolError, got %T", err)
	}
	if use.Symbol != 'z' || use.Offset != 2 {
		t.Errorf("expected symbol 'z' at offset 2, got %d at %d", use.Symbol, use.Offset)
	}
	if expect := "symbol has no Huffman code: 122 at offset 2"; err.Error() != expect {
		t.Errorf("wrong message:\n\texpect: %s\n\tactual: %s", expect, err.Error())
	}
}

func TestNewEncoder_Degenerate(t *testing.T) {
	type testRow struct {
		name string
		tree *Tree
	}

	testData := [...]testRow{
		{name: "nil", tree: nil},
		{name: "zero", tree: &Tree{}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			if _, err := NewEncoder(row.tree); !errors.Is(err, ErrDegenerateTree) {
				t.Errorf("expected ErrDegenerateTree, got %v", err)
			}
		})
	}
}
