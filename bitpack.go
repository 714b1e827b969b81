package huffzip

import (
	"bytes"
	"io"

	"github.com/icza/bitio"
)

// PaddingFor returns the number of zero bits that must follow nbits bits to
// reach a byte boundary.
func PaddingFor(nbits uint64) uint8 {
	return uint8((8 - nbits%8) % 8)
}

// BitWriter packs a sequence of bits MSB-first into whole bytes.
type BitWriter struct {
	w       *bitio.Writer
	n       uint64
	padding uint8
	closed  bool
}

// NewBitWriter returns a BitWriter that writes packed bytes to w.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{w: bitio.NewWriter(w)}
}

// WriteBit appends a single bit.
func (bw *BitWriter) WriteBit(bit bool) error {
	if err := bw.w.WriteBool(bit); err != nil {
		return err
	}
	bw.n++
	return nil
}

// WriteBits appends the low n bits of r, most significant first.
func (bw *BitWriter) WriteBits(r uint64, n uint8) error {
	if err := bw.w.WriteBits(r, n); err != nil {
		return err
	}
	bw.n += uint64(n)
	return nil
}

// WriteCode appends all bits of a code.
func (bw *BitWriter) WriteCode(hc Code) error {
	return hc.words(func(r uint64, n byte) error {
		return bw.WriteBits(r, n)
	})
}

// Len returns the number of bits written so far, not counting padding.
func (bw *BitWriter) Len() uint64 {
	return bw.n
}

// Padding returns the number of zero bits Close appended.  It is only
// meaningful after Close.
func (bw *BitWriter) Padding() uint8 {
	return bw.padding
}

// Close pads the bit sequence with zeros up to the next byte boundary and
// flushes it.  It does not close the underlying writer.
func (bw *BitWriter) Close() error {
	if bw.closed {
		return nil
	}
	bw.closed = true
	bw.padding = PaddingFor(bw.n)
	return bw.w.Close()
}

// Encode writes the code of every byte of data, in order.
func Encode(bw *BitWriter, e *Encoder, data []byte) error {
	for _, b := range data {
		if err := bw.WriteCode(e.codes[b]); err != nil {
			return err
		}
	}
	return nil
}

// Pack is a convenience wrapper that runs fn against a fresh BitWriter and
// returns the packed bytes together with the padding bit count.
func Pack(fn func(bw *BitWriter) error) ([]byte, uint8, error) {
	var buf bytes.Buffer
	bw := NewBitWriter(&buf)
	if err := fn(bw); err != nil {
		return nil, 0, err
	}
	if err := bw.Close(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), bw.Padding(), nil
}

// BitReader reads back a bit sequence packed by BitWriter.  It yields exactly
// the unpadded bits and reports ErrCorruptContainer for any read past them.
type BitReader struct {
	r         *bitio.Reader
	remaining uint64
	consumed  uint64
}

// Unpack returns a BitReader over packed, which must end in exactly padding
// zero bits that are not part of the sequence.
func Unpack(packed []byte, padding uint8) (*BitReader, error) {
	if padding > 7 {
		return nil, corruptf("padding %d out of range 0..7", padding)
	}
	total := uint64(len(packed)) * 8
	if uint64(padding) > total {
		return nil, corruptf("padding %d exceeds %d payload bits", padding, total)
	}
	return &BitReader{
		r:         bitio.NewReader(bytes.NewReader(packed)),
		remaining: total - uint64(padding),
	}, nil
}

// ReadBit reads a single bit.
func (br *BitReader) ReadBit() (bool, error) {
	if br.remaining == 0 {
		return false, corruptf("bit stream exhausted after %d bits", br.consumed)
	}
	bit, err := br.r.ReadBool()
	if err != nil {
		return false, corruptf("bit %d: %v", br.consumed, err)
	}
	br.remaining--
	br.consumed++
	return bit, nil
}

// ReadBits reads n bits and returns them right-aligned, first bit most
// significant.
func (br *BitReader) ReadBits(n uint8) (uint64, error) {
	if br.remaining < uint64(n) {
		return 0, corruptf("need %d bits after %d, only %d remain", n, br.consumed, br.remaining)
	}
	u, err := br.r.ReadBits(n)
	if err != nil {
		return 0, corruptf("bits %d..%d: %v", br.consumed, br.consumed+uint64(n), err)
	}
	br.remaining -= uint64(n)
	br.consumed += uint64(n)
	return u, nil
}

// Remaining returns the number of unread bits.
func (br *BitReader) Remaining() uint64 {
	return br.remaining
}

// Consumed returns the number of bits read so far.
func (br *BitReader) Consumed() uint64 {
	return br.consumed
}
