package huffzip

// SerializeTree writes t in pre-order: a 0 bit for each internal node,
// followed by its left and right subtrees, or a 1 bit for each leaf,
// followed by the leaf's value in 8 bits.  Exactly t.SerializedBitLen() bits
// are written.
func SerializeTree(bw *BitWriter, t *Tree) error {
	stack := make([]int, 0, 16)
	stack = append(stack, t.root)
	for len(stack) != 0 {
		index := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := t.nodes[index]
		if node.Kind == LeafNode {
			if err := bw.WriteBit(true); err != nil {
				return err
			}
			if err := bw.WriteBits(uint64(node.Value), 8); err != nil {
				return err
			}
			continue
		}

		if err := bw.WriteBit(false); err != nil {
			return err
		}
		stack = append(stack, node.Right, node.Left)
	}
	return nil
}

// DeserializeTree reads a tree written by SerializeTree.  It consumes exactly
// the bits of one tree and fails with ErrCorruptContainer if the bits run
// out first or do not describe a valid tree.
func DeserializeTree(br *BitReader) (*Tree, error) {
	// Each slot is a child pointer still waiting for its subtree.  The
	// root's slot has parent == -1.

	type slot struct {
		parent int
		right  bool
	}

	t := &Tree{nodes: make([]Node, 0, 32)}
	var seen [256]bool
	internals := 0

	stack := make([]slot, 0, 16)
	stack = append(stack, slot{parent: -1})
	for len(stack) != 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		isLeaf, err := br.ReadBit()
		if err != nil {
			return nil, err
		}

		var index int
		if isLeaf {
			v, err := br.ReadBits(8)
			if err != nil {
				return nil, err
			}
			value := byte(v)
			if seen[value] {
				return nil, corruptf("tree has two leaves for byte 0x%02x", value)
			}
			seen[value] = true
			index = t.addLeaf(value, 0)
		} else {
			internals++
			if internals > 255 {
				return nil, corruptf("tree has more than 255 internal nodes")
			}
			index = t.addInternal(-1, -1, 0)
			stack = append(stack, slot{index, true}, slot{index, false})
		}

		switch {
		case s.parent < 0:
			t.root = index
		case s.right:
			t.nodes[s.parent].Right = index
		default:
			t.nodes[s.parent].Left = index
		}
	}
	return t, nil
}
