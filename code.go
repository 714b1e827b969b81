package huffzip

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeSize is the longest possible code: a tree with 256 leaves is at most
// 255 levels deep.
const MaxCodeSize = 255

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit is the most
	// significant bit of Bits[0], the 65th bit is the most significant bit
	// of Bits[1], and so on.  Bits past Size are always zero.
	Bits [4]uint64
}

// MakeCode is a convenience function that constructs a Code of up to 64 bits.
// The least significant bit of bits is the *last* bit in the sequence, so
// MakeCode(3, 0b011) is the code "011".
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= 64, "size %d > 64", size)
	var hc Code
	for i := byte(0); i < size; i++ {
		hc = hc.Append(uint(bits>>(size-1-i)) & 1)
	}
	return hc
}

// Bit returns the i'th bit of the code, counting from 0.
func (hc Code) Bit(i int) uint {
	return uint(hc.Bits[i>>6]>>(63-uint(i&63))) & 1
}

// Append returns a copy of this Code with one more bit at the end.
func (hc Code) Append(bit uint) Code {
	assert.Assertf(hc.Size < MaxCodeSize, "code already has %d bits", hc.Size)
	i := uint(hc.Size)
	hc.Bits[i>>6] |= uint64(bit&1) << (63 - (i & 63))
	hc.Size++
	return hc
}

// HasPrefix reports whether prefix is a prefix of this Code.  Every Code has
// itself as a prefix.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	full := int(prefix.Size) >> 6
	for i := 0; i < full; i++ {
		if hc.Bits[i] != prefix.Bits[i] {
			return false
		}
	}
	rest := uint(prefix.Size) & 63
	if rest == 0 {
		return true
	}
	mask := ^uint64(0) << (64 - rest)
	return hc.Bits[full]&mask == prefix.Bits[full]
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := 0; i < int(hc.Size); i++ {
		sb.WriteByte('0' + byte(hc.Bit(i)))
	}
	return strconv.Quote(sb.String())
}

var _ fmt.Stringer = Code{}

// words calls fn once per 64-bit chunk of the code, in order, with the chunk's
// bits right-aligned in the low n bits of r.
func (hc Code) words(fn func(r uint64, n byte) error) error {
	remaining := int(hc.Size)
	for i := 0; remaining > 0; i++ {
		n := remaining
		if n > 64 {
			n = 64
		}
		if err := fn(hc.Bits[i]>>(64-uint(n)), byte(n)); err != nil {
			return err
		}
		remaining -= n
	}
	return nil
}
