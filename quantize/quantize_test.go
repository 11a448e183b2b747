package quantize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantize_LengthMatchesRowTimesBits(t *testing.T) {
	row := []float64{0, 5, 0, 8, 2, 0, 9}
	ids := []int{2, 4, 5, 7}

	q := Quantize(row, ids, DefaultBits)
	assert.Equal(t, len(row), q.Len())
}

func TestQuantize_CodesAreInRange(t *testing.T) {
	row := []float64{0, 5, 0, 8, 2, 0, 9, 1, 4}
	ids := []int{2, 4, 5, 7, 8, 9}

	q := Quantize(row, ids, DefaultBits)
	maxCode := (1 << DefaultBits) - 1
	for i := 0; i < len(row); i++ {
		code := q.At(i)
		assert.GreaterOrEqual(t, code, 0)
		assert.LessOrEqual(t, code, maxCode)
	}
}

func TestQuantize_SigmaZeroSingleExpressingValue(t *testing.T) {
	row := []float64{0, 0, 7, 0}
	ids := []int{3}

	q := Quantize(row, ids, DefaultBits)
	require.Zero(t, q.Sigma)
	maxCode := (1 << DefaultBits) - 1

	// s >= mu clamps phi to 1, s < mu clamps phi to 0.
	assert.Equal(t, maxCode, q.At(2), "value equal to mu maps to the top code")
	assert.Equal(t, 0, q.At(0), "value below mu maps to the bottom code")
}

func TestQuantize_MuAndSigma(t *testing.T) {
	row := []float64{0, 2, 0, 4, 0, 6}
	ids := []int{2, 4, 6}

	q := Quantize(row, ids, DefaultBits)
	assert.InDelta(t, 4.0, q.Mu, 1e-9)

	// variance = mean((mu-v)^2) over expressing positions: (2,4,6) around mu=4
	// => ((2)^2+(0)^2+(2)^2)/3 = 8/3
	assert.InDelta(t, 1.632993161855452, q.Sigma, 1e-9)
}

func TestQuantize_ByteSize(t *testing.T) {
	row := make([]float64, 40)
	ids := []int{1, 2, 3}
	q := Quantize(row, ids, DefaultBits)
	// 40 values * 2 bits = 80 bits = 10 bytes, rounds up to whole words.
	assert.Positive(t, q.ByteSize())
}
