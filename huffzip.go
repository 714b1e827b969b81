package huffzip

import (
	"bufio"
	"bytes"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Compress returns the container for src.  Empty input is a no-op: no tree
// is built and the result is nil.
func Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}
	var buf bytes.Buffer
	if _, err := CompressTo(&buf, src); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CompressTo writes the container for src to w and returns the number of
// bytes written.  Nothing is written for empty input.
//
// Because the exact payload size follows from the frequencies alone, the
// header is written first and the payload is streamed after it.
//
func CompressTo(w io.Writer, src []byte) (int64, error) {
	if len(src) == 0 {
		return 0, nil
	}

	freqs := CountFrequencies(src)
	tree, err := BuildTree(freqs)
	if err != nil {
		return 0, err
	}
	e := NewEncoder(tree)

	treeBits := tree.SerializedBitLen()
	dataBits := e.EncodedBitLen(&freqs)
	h := Header{
		OriginalLength: uint64(len(src)),
		TreeBitLength:  uint32(treeBits),
		Padding:        PaddingFor(treeBits + dataBits),
	}
	payloadLen := (treeBits + dataBits + uint64(h.Padding)) / 8

	bufw := bufio.NewWriter(w)
	if _, err := bufw.Write(h.AppendBinary(make([]byte, 0, HeaderSize))); err != nil {
		return 0, err
	}

	bw := NewBitWriter(bufw)
	if err := SerializeTree(bw, tree); err != nil {
		return 0, err
	}
	assert.Assertf(bw.Len() == treeBits, "serialized tree has %d bits, expected %d", bw.Len(), treeBits)

	if err := Encode(bw, e, src); err != nil {
		return 0, err
	}
	if err := bw.Close(); err != nil {
		return 0, err
	}
	assert.Assertf(bw.Padding() == h.Padding, "padding %d, expected %d", bw.Padding(), h.Padding)

	if err := bufw.Flush(); err != nil {
		return 0, err
	}
	return HeaderSize + int64(payloadLen), nil
}

// Decompress returns the original bytes of a container.  Any problem with
// the container is reported as an error wrapping ErrCorruptContainer.
func Decompress(src []byte) ([]byte, error) {
	c, err := openContainer(src)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if !c.decoder.tree.IsSingleLeaf() {
		// openContainer guarantees at least one data bit per output byte.
		buf.Grow(int(c.header.OriginalLength))
	}
	if err := c.decoder.Decode(c.bits, c.header.OriginalLength, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressTo writes the original bytes of a container to w and returns the
// number of bytes written.  On error, w may have received a prefix of the
// output, which the caller should discard.
func DecompressTo(w io.Writer, src []byte) (int64, error) {
	c, err := openContainer(src)
	if err != nil {
		return 0, err
	}

	bufw := bufio.NewWriter(w)
	if err := c.decoder.Decode(c.bits, c.header.OriginalLength, bufw); err != nil {
		return 0, err
	}
	if err := bufw.Flush(); err != nil {
		return 0, err
	}
	return int64(c.header.OriginalLength), nil
}

// Info describes a container without decoding its data.
type Info struct {
	Header Header

	// PayloadSize is the size of the packed payload in bytes.
	PayloadSize int

	// DataBits is the number of encoded data bits, not counting padding.
	DataBits uint64

	// Decoder holds the container's tree.
	Decoder *Decoder
}

// Inspect parses the header and tree of a container.
func Inspect(src []byte) (*Info, error) {
	c, err := openContainer(src)
	if err != nil {
		return nil, err
	}
	return &Info{
		Header:      c.header,
		PayloadSize: len(src) - HeaderSize,
		DataBits:    c.bits.Remaining(),
		Decoder:     c.decoder,
	}, nil
}

type container struct {
	header  Header
	decoder *Decoder
	bits    *BitReader
}

// openContainer parses the header, reads the tree, and leaves the returned
// BitReader positioned at the first data bit.
func openContainer(src []byte) (*container, error) {
	h, payload, err := ParseHeader(src)
	if err != nil {
		return nil, err
	}

	br, err := Unpack(payload, h.Padding)
	if err != nil {
		return nil, err
	}

	tree, err := DeserializeTree(br)
	if err != nil {
		return nil, err
	}
	if br.Consumed() != uint64(h.TreeBitLength) {
		return nil, corruptf("tree took %d bits, header says %d", br.Consumed(), h.TreeBitLength)
	}
	if !tree.IsSingleLeaf() && h.OriginalLength > br.Remaining() {
		return nil, corruptf("%d data bits cannot hold %d bytes", br.Remaining(), h.OriginalLength)
	}

	return &container{header: h, decoder: NewDecoder(tree), bits: br}, nil
}
