package quantize

import (
	"math"

	"github.com/evanbiederstedt/scfind/bitseq"
)

// DefaultBits is the quantile code width used unless an Option overrides it.
const DefaultBits = 2

// Quantile is the fitted distribution plus the per-position quantile codes
// for one gene's expression row.
type Quantile struct {
	Mu    float64
	Sigma float64
	Bits  int // width of each stored code, in bits

	codes *bitseq.BitSequence // length len(row)*Bits
}

// Quantize fits mu/sigma over the values at ids (1-based positions into
// row, per the sparse-index convention used across this module) and encodes
// every value in row — expressing or not — as a bits-wide quantile index.
//
// ids must be non-empty; Ingest guarantees this by filtering empty rows
// before reaching the codec, mirroring eliasfano's contract.
func Quantize(row []float64, ids []int, bits int) Quantile {
	mu := mean(row, ids)
	sigma := stddev(row, ids, mu)

	codes := bitseq.New()
	limit := uint64(1)<<uint(bits) - 1

	for _, s := range row {
		t := quantileIndex(s, mu, sigma, bits, limit)
		codes.PushRange(t, bits)
	}

	return Quantile{Mu: mu, Sigma: sigma, Bits: bits, codes: codes}
}

func mean(row []float64, ids []int) float64 {
	var sum float64
	for _, id := range ids {
		sum += row[id-1]
	}
	return sum / float64(len(ids))
}

func stddev(row []float64, ids []int, mu float64) float64 {
	var sum float64
	for _, id := range ids {
		d := mu - row[id-1]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(ids)))
}

// normalCDF is the standard normal CDF Φ((x-mu)/sigma), expressed via the
// complementary error function the way math libraries conventionally do.
func normalCDF(x, mu, sigma float64) float64 {
	return 0.5 * math.Erfc(-(x-mu)/(sigma*math.Sqrt2))
}

func quantileIndex(s, mu, sigma float64, bits int, limit uint64) uint64 {
	var phi float64
	if sigma == 0 {
		if s >= mu {
			phi = 1
		} else {
			phi = 0
		}
	} else {
		phi = normalCDF(s, mu, sigma)
	}

	t := math.Round(phi * float64(uint64(1)<<uint(bits)))
	if t < 0 {
		t = 0
	}
	if t > float64(limit) {
		t = float64(limit)
	}
	return uint64(t)
}

// At returns the decoded quantile code at row position (0-based), a value
// in [0, 2^Bits).
func (q Quantile) At(position int) int {
	return int(q.codes.GetRange(position*q.Bits, q.Bits))
}

// Len returns the number of encoded positions (the row length at ingest).
func (q Quantile) Len() int {
	if q.Bits == 0 {
		return 0
	}
	return q.codes.Len() / q.Bits
}

// ByteSize returns the backing storage size of the quantile codes, in bytes.
func (q Quantile) ByteSize() int {
	return q.codes.ByteSize()
}
