package eliasfano

import (
	"errors"
	"math"

	"github.com/evanbiederstedt/scfind/bitseq"
)

// ErrEmptySequence is returned by Encode when handed a sequence with no
// elements. Callers are expected to filter empty rows before reaching the
// codec; Ingest does this, so in normal operation the codec never sees it.
var ErrEmptySequence = errors.New("eliasfano: cannot encode an empty sequence")

// ErrNotStrictlyIncreasing is returned by Encode when the input sequence is
// not strictly increasing or contains a non-positive value.
var ErrNotStrictlyIncreasing = errors.New("eliasfano: sequence must be strictly increasing and positive")

// Encoded is the result of Encode: the chosen low-bits width plus the two
// bit sequences that together reconstruct the original integers.
type Encoded struct {
	L    int
	High *bitseq.BitSequence
	Low  *bitseq.BitSequence
}

// Encode compresses a strictly increasing sequence of positive integers
// ids, given the universe size n (the total number of cells in the
// enclosing slice, i.e. the maximum possible id).
//
// l is chosen as round(log2(n/k)) + 1, clamped to be at least 1. The low
// part stores, for every id, the l least-significant bits least-significant-
// bit-first. The high part stores unary gap codes: the (i+1)-th set bit in
// High sits at 0-based position u_i + i, where u_i = ids[i] >> l.
func Encode(ids []int, n int) (Encoded, error) {
	k := len(ids)
	if k == 0 {
		return Encoded{}, ErrEmptySequence
	}

	prev := 0
	for _, id := range ids {
		if id <= prev {
			return Encoded{}, ErrNotStrictlyIncreasing
		}
		prev = id
	}

	l := chooseL(n, k)

	low := bitseq.New()
	high := bitseq.New()

	prevU := 0
	for _, id := range ids {
		low.PushRange(uint64(id), l)

		u := id >> uint(l)
		gap := u - prevU
		for g := 0; g < gap; g++ {
			high.Push(false)
		}
		high.Push(true)
		prevU = u
	}

	return Encoded{L: l, High: high, Low: low}, nil
}

// chooseL implements l = round(log2(n/k)) + 1, with a floor of 1.
func chooseL(n, k int) int {
	ratio := float64(n) / float64(k)
	l := int(math.Round(math.Log2(ratio))) + 1
	if l < 1 {
		l = 1
	}
	return l
}

// Decode reconstructs the original strictly increasing sequence from an
// Encoded value. The number of elements is taken from the number of set
// bits in High, so callers never need to pass k separately.
func Decode(e Encoded) []int {
	k := e.High.CountOnes()
	ids := make([]int, 0, k)

	i := 0
	prevSetPos := -1
	u := 0
	e.High.Ones(func(p int) bool {
		gap := p - prevSetPos - 1
		u += gap
		prevSetPos = p

		low := int(e.Low.GetRange(i*e.L, e.L))
		ids = append(ids, (u<<uint(e.L))|low)

		i++
		return true
	})

	return ids
}
