package huffzip

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Decoder turns a bit sequence back into bytes by walking a Tree.
type Decoder struct {
	tree *Tree
}

// NewDecoder is a convenience function that allocates and initializes a
// Decoder for the given tree.
func NewDecoder(t *Tree) *Decoder {
	d := new(Decoder)
	d.Init(t)
	return d
}

// Init initializes this Decoder.
func (d *Decoder) Init(t *Tree) {
	assert.Assertf(t != nil && len(t.nodes) != 0, "Decoder.Init: empty tree")
	*d = Decoder{tree: t}
}

// Tree returns the tree this Decoder walks.
func (d *Decoder) Tree() *Tree {
	return d.tree
}

// Decode writes exactly n decoded bytes to w.
//
// For each bit read, the walk moves from the current node to its left child
// on 0 or its right child on 1.  Reaching a leaf emits its value and restarts
// at the root.  Decoding stops as soon as n bytes have been emitted; any bits
// left in r are ignored.
//
// If the root is itself a leaf, its value is emitted n times and no bits are
// read at all.
//
func (d *Decoder) Decode(r *BitReader, n uint64, w io.ByteWriter) error {
	t := d.tree
	root := t.nodes[t.root]
	if root.Kind == LeafNode {
		for i := uint64(0); i < n; i++ {
			if err := w.WriteByte(root.Value); err != nil {
				return err
			}
		}
		return nil
	}

	var emitted uint64
	current := t.root
	for emitted < n {
		bit, err := r.ReadBit()
		if err != nil {
			return fmt.Errorf("decoded %d of %d bytes: %w", emitted, n, err)
		}

		node := &t.nodes[current]
		if bit {
			current = node.Right
		} else {
			current = node.Left
		}

		if leaf := &t.nodes[current]; leaf.Kind == LeafNode {
			if err := w.WriteByte(leaf.Value); err != nil {
				return err
			}
			emitted++
			current = t.root
		}
	}
	return nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer, one line per leaf, ordered by code.
func (d *Decoder) Dump(w io.Writer) (int64, error) {
	e := NewEncoder(d.tree)

	keys := make(byCode, 0, d.tree.leaves)
	values := make(map[Code]byte, d.tree.leaves)
	for i, hc := range e.codes {
		if hc.Size != 0 {
			keys = append(keys, hc)
			values[hc] = byte(i)
		}
	}
	keys.Sort()

	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, hc := range keys {
		fmt.Fprintf(&buf, "\tDecode(%s) = 0x%02x\n", hc, values[hc])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Size != b.Size {
		return a.Size < b.Size
	}
	for k := range a.Bits {
		if a.Bits[k] != b.Bits[k] {
			return a.Bits[k] < b.Bits[k]
		}
	}
	return false
}

var _ sort.Interface = byCode(nil)

// }}}
