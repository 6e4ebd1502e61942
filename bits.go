package huffman

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/icza/bitio"
)

// Bits represents an ordered sequence of bits.  It is the form taken both by
// individual Huffman codes and by a complete encoded stream.
//
// Bits are stored most significant bit first within each byte, so Bytes and
// WriteTo produce the bits in stream order.  The zero value is an empty
// sequence ready for use.
//
// Copies of a Bits value may share storage, but never writes: the first
// Append to a copy moves it onto storage of its own.
type Bits struct {
	buf   []byte
	n     int
	owner *Bits
}

// MakeBits is a convenience function that constructs Bits from a list of
// 0/1 values.  Any non-zero value is taken as a 1 bit.
func MakeBits(bits ...uint8) Bits {
	var b Bits
	b.Grow(len(bits))
	for _, bit := range bits {
		b.Append(bit != 0)
	}
	return b
}

// ParseBits parses a string of '0' and '1' characters.
func ParseBits(str string) (Bits, error) {
	var b Bits
	b.Grow(len(str))
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			b.Append(false)
		case '1':
			b.Append(true)
		default:
			return Bits{}, fmt.Errorf("invalid character %q at index %d in bit string %q", str[i], i, str)
		}
	}
	return b, nil
}

// Len returns the number of bits in the sequence.
func (b Bits) Len() int {
	return b.n
}

// At returns the i'th bit.  It panics if i is out of range.
func (b Bits) At(i int) bool {
	if i < 0 || i >= b.n {
		panic(fmt.Errorf("bit index %d out of range [0, %d)", i, b.n))
	}
	return b.buf[i>>3]&bitMask(i) != 0
}

// Grow ensures that another n bits can be appended without reallocation.
func (b *Bits) Grow(n int) {
	b.own(n)
}

// own makes b the only writer of its storage, with room for extra more bits.
// Storage that b did not allocate itself is copied first.
func (b *Bits) own(extra int) {
	need := bytesForBits(b.n + extra)
	if b.owner == b && need <= cap(b.buf) {
		return
	}
	size := need
	if double := 2 * cap(b.buf); b.owner == b && double > size {
		size = double
	}
	used := bytesForBits(b.n)
	buf := make([]byte, used, size)
	copy(buf, b.buf[:used])
	if tail := b.n & 7; tail != 0 {
		buf[used-1] &= ^byte(0xff >> uint(tail))
	}
	b.buf = buf
	b.owner = b
}

// Append appends a single bit.
func (b *Bits) Append(bit bool) {
	b.own(1)
	if b.n&7 == 0 {
		b.buf = append(b.buf, 0)
	}
	if bit {
		b.buf[b.n>>3] |= bitMask(b.n)
	} else {
		b.buf[b.n>>3] &^= bitMask(b.n)
	}
	b.n++
}

// AppendBits appends every bit of other, in order.
func (b *Bits) AppendBits(other Bits) {
	b.own(other.n)
	if b.n&7 == 0 {
		b.buf = append(b.buf, other.buf[:bytesForBits(other.n)]...)
		b.n += other.n
		return
	}
	for i := 0; i < other.n; i++ {
		b.Append(other.At(i))
	}
}

// Prefix returns a copy of the first n bits.  It panics if n is out of range.
func (b Bits) Prefix(n int) Bits {
	if n < 0 || n > b.n {
		panic(fmt.Errorf("prefix length %d out of range [0, %d]", n, b.n))
	}
	out := Bits{buf: make([]byte, bytesForBits(n)), n: n}
	copy(out.buf, b.buf)
	if tail := n & 7; tail != 0 {
		out.buf[len(out.buf)-1] &= ^byte(0xff >> uint(tail))
	}
	return out
}

// HasPrefix reports whether the first bits of b are exactly prefix.
func (b Bits) HasPrefix(prefix Bits) bool {
	if prefix.n > b.n {
		return false
	}
	for i := 0; i < prefix.n; i++ {
		if b.At(i) != prefix.At(i) {
			return false
		}
	}
	return true
}

// Equal reports whether b and other hold the same bits.
func (b Bits) Equal(other Bits) bool {
	return b.n == other.n && b.HasPrefix(other)
}

// Clone returns a copy of b that shares no storage with it.
func (b Bits) Clone() Bits {
	return b.Prefix(b.n)
}

// Bytes returns the bits packed into bytes, most significant bit first.  The
// unused low bits of the final byte are zero.
func (b Bits) Bytes() []byte {
	return b.Clone().buf
}

// String returns the quoted string representation of these Bits.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(b.n)
	for i := 0; i < b.n; i++ {
		if b.At(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return strconv.Quote(sb.String())
}

// WriteTo writes the bits to w packed into bytes, most significant bit first,
// padding the final byte with zero bits.  The bit length is not recorded; the
// reader must learn it some other way.
func (b Bits) WriteTo(w io.Writer) (int64, error) {
	bw := bitio.NewWriter(w)
	for i := 0; i < b.n; i++ {
		if err := bw.WriteBool(b.At(i)); err != nil {
			return 0, fmt.Errorf("failed to write bit %d of %d: %w", i, b.n, err)
		}
	}
	if err := bw.Close(); err != nil {
		return 0, fmt.Errorf("failed to flush packed bits: %w", err)
	}
	return int64(bytesForBits(b.n)), nil
}

// ReadBits reads exactly n bits from r, in the packed format produced by
// WriteTo.
func ReadBits(r io.Reader, n int) (Bits, error) {
	if n < 0 {
		return Bits{}, fmt.Errorf("invalid bit count %d", n)
	}
	br := bitio.NewReader(r)
	var b Bits
	b.Grow(n)
	for i := 0; i < n; i++ {
		bit, err := br.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return Bits{}, fmt.Errorf("failed to read bit %d of %d: %w", i, n, err)
		}
		b.Append(bit)
	}
	return b, nil
}

var (
	_ fmt.Stringer = Bits{}
	_ io.WriterTo  = Bits{}
)

// truncate drops bits from the end until n remain, clearing them so that a
// later Append starts from zero.
func (b *Bits) truncate(n int) {
	b.own(0)
	b.n = n
	b.buf = b.buf[:bytesForBits(n)]
	if tail := n & 7; tail != 0 {
		b.buf[len(b.buf)-1] &= ^byte(0xff >> uint(tail))
	}
}
