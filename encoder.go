package huffzip

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder maps byte values to the codes assigned to them by a Tree.
type Encoder struct {
	codes   [256]Code
	minSize byte
	maxSize byte
}

// NewEncoder is a convenience function that allocates and initializes an
// Encoder for the given tree.
func NewEncoder(t *Tree) *Encoder {
	e := new(Encoder)
	e.Init(t)
	return e
}

// Init initializes this Encoder from a tree.  Each leaf gets the code spelled
// by the path from the root, with "0" for every left turn and "1" for every
// right turn.  A tree whose root is a leaf has no path at all, so its single
// value gets the one-bit code "0".
//
func (e *Encoder) Init(t *Tree) {
	*e = Encoder{}

	if t.IsSingleLeaf() {
		root := t.nodes[t.root]
		e.codes[root.Value] = MakeCode(1, 0)
		e.minSize, e.maxSize = 1, 1
		return
	}

	// Use a stack to walk the tree.
	//
	// The current path from the root is carried in stackItem.code, and its
	// length is the current stack depth.  Only internal nodes are pushed.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		index int
		code  Code
		x     byte
	}

	stack := make([]stackItem, 0, 16)
	var hasMinMax bool

	processChild := func(child int, hc Code) {
		node := t.nodes[child]
		if node.Kind == InternalNode {
			stack = append(stack, stackItem{index: child, code: hc})
			return
		}

		e.codes[node.Value] = hc
		size := hc.Size
		if !hasMinMax {
			hasMinMax = true
			e.minSize = size
			e.maxSize = size
		} else if e.minSize > size {
			e.minSize = size
		} else if e.maxSize < size {
			e.maxSize = size
		}
	}

	stack = append(stack, stackItem{index: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		node := t.nodes[top.index]
		switch x {
		case 0:
			processChild(node.Left, top.code.Append(0))
		case 1:
			processChild(node.Right, top.code.Append(1))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}

	assert.Assertf(hasMinMax, "tree with root %d has no leaves", t.root)
}

// Encode returns the code for a byte value.  The returned Code has Size 0 if
// the value was absent from the tree.
func (e *Encoder) Encode(value byte) Code {
	return e.codes[value]
}

// MinSize is the bit length of the shortest legal code.
func (e *Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e *Encoder) MaxSize() byte {
	return e.maxSize
}

// SizeBySymbol returns an array containing the bit length for each byte
// value, with 0 for values that have no code.
func (e *Encoder) SizeBySymbol() []byte {
	out := make([]byte, len(e.codes))
	for i, hc := range e.codes {
		out[i] = hc.Size
	}
	return out
}

// EncodedBitLen returns the number of bits needed to encode an input with
// the given frequencies.  Every value with a non-zero frequency must have a
// code.
func (e *Encoder) EncodedBitLen(freqs *Frequencies) uint64 {
	var total uint64
	for i, count := range freqs {
		if count == 0 {
			continue
		}
		size := e.codes[i].Size
		assert.Assertf(size != 0, "no code for byte 0x%02x", i)
		total += count * uint64(size)
	}
	return total
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.  Values without a code are omitted.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for i, hc := range e.codes {
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tEncode(0x%02x) = %s\n", i, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
