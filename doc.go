// Package huffzip implements a lossless byte-stream compressor built on
// static Huffman codes.  Each compressed container carries its own coding
// tree, so any two processes can exchange containers without agreeing on a
// code in advance.
//
// Container layout (all multi-byte integers big-endian):
//
//     [8 bytes]  original length in bytes
//     [4 bytes]  serialized tree length in bits
//     [1 byte ]  number of zero padding bits at the end (0..7)
//     [N bytes]  tree bits, then data bits, then padding, MSB-first
//
// The tree is serialized in pre-order: a 0 bit for an internal node followed
// by its left and right subtrees, or a 1 bit for a leaf followed by the leaf's
// byte value in 8 bits.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffzip
