package scfind

import (
	"math"

	"github.com/evanbiederstedt/scfind/bitseq"
	"github.com/evanbiederstedt/scfind/eliasfano"
	"github.com/evanbiederstedt/scfind/quantize"
)

// PostingRecord is the stored unit for one (gene, cell-type) pair: the
// Elias-Fano-coded set of expressing cell ordinals, its precomputed IDF
// weight, and the quantile codes for the gene's full expression row.
//
// A PostingRecord is immutable after construction — Merge adds a record of
// the source IndexStore to the receiver by reference, so both stores share
// it, and it never mutates one.
type PostingRecord struct {
	l        int
	idf      float64
	high     *bitseq.BitSequence
	low      *bitseq.BitSequence
	quantile quantize.Quantile
	ctRef    cellTypeRef
}

// newPostingRecord encodes ids (1-based, strictly increasing expressing
// positions) against the full row of n cells, producing the Elias-Fano
// halves and the quantile codes in one step.
func newPostingRecord(ids []int, row []float64, n, quantizerBits int, ctRef cellTypeRef) (*PostingRecord, error) {
	enc, err := eliasfano.Encode(ids, n)
	if err != nil {
		return nil, err
	}
	q := quantize.Quantize(row, ids, quantizerBits)
	idf := math.Log2(float64(n) / float64(len(ids)))

	return &PostingRecord{
		l:        enc.L,
		idf:      idf,
		high:     enc.High,
		low:      enc.Low,
		quantile: q,
		ctRef:    ctRef,
	}, nil
}

// Decode reconstructs the sorted, strictly increasing list of expressing
// cell ordinals.
func (p *PostingRecord) Decode() []int {
	return eliasfano.Decode(eliasfano.Encoded{L: p.l, High: p.high, Low: p.low})
}

// IDF returns the precomputed log2(n/k) scoring weight.
func (p *PostingRecord) IDF() float64 {
	return p.idf
}

// QuantileAt returns the decoded quantile code for row position (0-based),
// a value in [0, 2^bits).
func (p *PostingRecord) QuantileAt(position int) int {
	return p.quantile.At(position)
}

// ByteSize is a conservative estimate of the record's backing storage, used
// by IndexStore.MemoryFootprint: high/low/quantile buffers rounded up to
// whole 64-bit words, plus a fixed struct overhead for l/idf/bookkeeping.
func (p *PostingRecord) ByteSize() int {
	const structOverhead = 32
	return p.high.ByteSize() + p.low.ByteSize() + p.quantile.ByteSize() + structOverhead
}
