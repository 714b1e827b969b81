package huffzip

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// NodeKind distinguishes leaves from internal nodes.
type NodeKind byte

const (
	// LeafNode is a node carrying a byte value and no children.
	LeafNode NodeKind = iota

	// InternalNode is a node with exactly two children and no value.
	InternalNode
)

// Node is a single node of a Tree.  Children are referenced by their index in
// the owning Tree.
type Node struct {
	Kind  NodeKind
	Value byte
	Left  int
	Right int

	// Freq is the total number of occurrences of all leaves below this
	// node.  It is zero for trees read back by DeserializeTree.
	Freq uint64
}

// IsLeaf reports whether this node is a leaf.
func (n Node) IsLeaf() bool {
	return n.Kind == LeafNode
}

// Tree is a full binary Huffman coding tree.  Nodes live in a flat slice and
// refer to their children by index.
type Tree struct {
	nodes  []Node
	root   int
	leaves int
}

// BuildTree constructs the Huffman tree for the given frequencies by
// repeatedly combining the two lightest nodes.
//
// Ties between nodes of equal weight are broken in favor of the node that
// was queued first.  Leaves are queued in ascending byte order, internal
// nodes in order of creation.  The first node popped becomes the left child.
//
func BuildTree(freqs Frequencies) (*Tree, error) {
	entries := freqs.Entries()
	if len(entries) == 0 {
		return nil, ErrEmptyInput
	}

	t := &Tree{nodes: make([]Node, 0, 2*len(entries)-1)}

	// Step 1: build a minheap of leaves.

	h := freqHeap{make([]indexAndFreq, 0, len(entries))}
	for _, entry := range entries {
		index := t.addLeaf(entry.Value, entry.Count)
		h.list = append(h.list, indexAndFreq{index, entry.Count})
	}
	h.Init()

	// Step 2: pop the two lightest nodes, join them under a new internal
	// node, and push that back, until a single root remains.
	//
	// Node indices increase monotonically, so using them as the tie-break
	// gives first-in-first-out order among equal weights.

	for h.Len() > 1 {
		a := heap.Pop(&h).(indexAndFreq)
		b := heap.Pop(&h).(indexAndFreq)

		// Compute freqSum using saturating addition
		freqSum := a.freq + b.freq
		if freqSum < a.freq {
			freqSum = math.MaxUint64
		}

		index := t.addInternal(a.index, b.index, freqSum)
		heap.Push(&h, indexAndFreq{index, freqSum})
	}

	t.root = heap.Pop(&h).(indexAndFreq).index

	assert.Assertf(len(t.nodes) == 2*len(entries)-1, "tree has %d nodes for %d leaves", len(t.nodes), len(entries))
	return t, nil
}

// Root returns the index of the root node.
func (t *Tree) Root() int {
	return t.root
}

// Node returns the node at the given index.
func (t *Tree) Node(index int) Node {
	return t.nodes[index]
}

// Len returns the total number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, i.e. distinct byte values.
func (t *Tree) NumLeaves() int {
	return t.leaves
}

// IsSingleLeaf reports whether the root is itself a leaf.  Such a tree has no
// branches to walk, so it needs special handling when encoding and decoding.
func (t *Tree) IsSingleLeaf() bool {
	return t.nodes[t.root].Kind == LeafNode
}

// SerializedBitLen returns the number of bits SerializeTree writes for this
// tree: 9 bits per leaf plus 1 bit per internal node.
func (t *Tree) SerializedBitLen() uint64 {
	return 10*uint64(t.leaves) - 1
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	type stackItem struct {
		index int
		depth int
	}

	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	stack := []stackItem{{t.root, 1}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := t.nodes[top.index]
		buf.WriteString(strings.Repeat("\t", top.depth))
		if node.Kind == LeafNode {
			fmt.Fprintf(&buf, "Leaf{0x%02x, %d}\n", node.Value, node.Freq)
			continue
		}
		fmt.Fprintf(&buf, "Internal{%d}\n", node.Freq)
		stack = append(stack, stackItem{node.Right, top.depth + 1}, stackItem{node.Left, top.depth + 1})
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t *Tree) addLeaf(value byte, freq uint64) int {
	t.nodes = append(t.nodes, Node{Kind: LeafNode, Value: value, Left: -1, Right: -1, Freq: freq})
	t.leaves++
	return len(t.nodes) - 1
}

func (t *Tree) addInternal(left int, right int, freq uint64) int {
	t.nodes = append(t.nodes, Node{Kind: InternalNode, Left: left, Right: right, Freq: freq})
	return len(t.nodes) - 1
}

// type indexAndFreq + type freqHeap {{{

type indexAndFreq struct {
	index int
	freq  uint64
}

type freqHeap struct {
	list []indexAndFreq
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.index < b.index
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(indexAndFreq))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
