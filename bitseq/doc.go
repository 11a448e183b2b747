// Package bitseq implements an append-only, word-packed bit buffer.
//
// It is the raw substrate the eliasfano and quantize packages build on: the
// Elias-Fano high/low halves and the per-cell quantile codes are all stored
// as BitSequence values. Random access is O(1); iterating set bits is O(m)
// in the number of words touched, not the number of bits, which keeps
// posting decode linear in the size of the unary-coded high part.
package bitseq
