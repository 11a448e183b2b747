// Package eliasfano implements Elias-Fano coding for strictly increasing
// sequences of positive integers.
//
// A sequence is split into a fixed-width low part (the l least significant
// bits of every element, packed back to back) and a unary-coded, gap-encoded
// high part (the remaining bits, recoverable from the positions of the set
// bits in a single bitseq.BitSequence). See Encode and Decode for the exact
// bit layout, which must stay byte-for-byte symmetric between the two.
//
// The codec is stateless: Encode and Decode are pure functions of their
// arguments and never retain a reference to caller-owned slices.
package eliasfano
