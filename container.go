package huffzip

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the fixed size of a container header in bytes.
const HeaderSize = 13

const (
	minTreeBits = 9          // a single leaf
	maxTreeBits = 10*256 - 1 // 256 leaves, 255 internal nodes
)

// Header is the fixed-size prefix of every container.
type Header struct {
	// OriginalLength is the uncompressed length in bytes.
	OriginalLength uint64

	// TreeBitLength is the number of payload bits taken by the
	// serialized tree.
	TreeBitLength uint32

	// Padding is the number of zero bits at the end of the payload.
	Padding uint8
}

// AppendBinary appends the 13-byte encoding of the header to b.
func (h Header) AppendBinary(b []byte) []byte {
	b = binary.BigEndian.AppendUint64(b, h.OriginalLength)
	b = binary.BigEndian.AppendUint32(b, h.TreeBitLength)
	return append(b, h.Padding)
}

// MarshalBinary returns the 13-byte encoding of the header.
func (h Header) MarshalBinary() ([]byte, error) {
	return h.AppendBinary(make([]byte, 0, HeaderSize)), nil
}

// String returns a human-readable description of the header.
func (h Header) String() string {
	return fmt.Sprintf("(original length %d bytes, tree %d bits, padding %d bits)", h.OriginalLength, h.TreeBitLength, h.Padding)
}

// ParseHeader splits a container into its header and packed payload.  It
// checks that the header is consistent with the payload size, but it does
// not look inside the payload.
func ParseHeader(data []byte) (Header, []byte, error) {
	if len(data) < HeaderSize {
		return Header{}, nil, corruptf("%d bytes is shorter than the %d-byte header", len(data), HeaderSize)
	}

	h := Header{
		OriginalLength: binary.BigEndian.Uint64(data[0:8]),
		TreeBitLength:  binary.BigEndian.Uint32(data[8:12]),
		Padding:        data[12],
	}
	payload := data[HeaderSize:]

	if err := h.validate(len(payload)); err != nil {
		return Header{}, nil, err
	}
	return h, payload, nil
}

func (h Header) validate(payloadLen int) error {
	if h.OriginalLength == 0 {
		return corruptf("original length is zero")
	}
	if h.Padding > 7 {
		return corruptf("padding %d out of range 0..7", h.Padding)
	}
	if h.TreeBitLength < minTreeBits || h.TreeBitLength > maxTreeBits || (h.TreeBitLength+1)%10 != 0 {
		return corruptf("impossible tree length of %d bits", h.TreeBitLength)
	}
	payloadBits := uint64(payloadLen) * 8
	if uint64(h.Padding) > payloadBits || uint64(h.TreeBitLength) > payloadBits-uint64(h.Padding) {
		return corruptf("%d-byte payload cannot hold %d tree bits and %d padding bits", payloadLen, h.TreeBitLength, h.Padding)
	}
	return nil
}
