package huffman

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Frequencies maps each Symbol to its number of occurrences.  A count of 0
// means the symbol does not occur.
type Frequencies [NumSymbols]uint64

// CountFrequencies scans input once and tallies each symbol.
func CountFrequencies(input []byte) Frequencies {
	var freqs Frequencies
	for _, ch := range input {
		freqs[ch]++
	}
	return freqs
}

// CountFrequenciesFrom is like CountFrequencies, but reads its input from r
// until EOF.  It returns the number of bytes read alongside the table.
func CountFrequenciesFrom(r io.Reader) (Frequencies, int64, error) {
	var freqs Frequencies
	var total int64
	br := bufio.NewReader(r)
	for {
		ch, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return freqs, total, nil
			}
			return Frequencies{}, 0, fmt.Errorf("failed to read input after %d bytes: %w", total, err)
		}
		freqs[ch]++
		total++
	}
}

// Distinct returns the number of symbols with a non-zero count.
func (freqs *Frequencies) Distinct() int {
	var n int
	for _, f := range freqs {
		if f != 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts.
func (freqs *Frequencies) Total() uint64 {
	var sum uint64
	for _, f := range freqs {
		sum += f
	}
	return sum
}

// Symbols lists the symbols with a non-zero count, in ascending order.
func (freqs *Frequencies) Symbols() []Symbol {
	out := make([]Symbol, 0, NumSymbols)
	for symbol, f := range freqs {
		if f != 0 {
			out = append(out, Symbol(symbol))
		}
	}
	return out
}
