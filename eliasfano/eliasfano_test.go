package eliasfano

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_RejectsEmpty(t *testing.T) {
	_, err := Encode(nil, 10)
	assert.ErrorIs(t, err, ErrEmptySequence)
}

func TestEncode_RejectsNonIncreasing(t *testing.T) {
	_, err := Encode([]int{1, 1, 2}, 10)
	assert.ErrorIs(t, err, ErrNotStrictlyIncreasing)

	_, err = Encode([]int{2, 1}, 10)
	assert.ErrorIs(t, err, ErrNotStrictlyIncreasing)

	_, err = Encode([]int{0, 1}, 10)
	assert.ErrorIs(t, err, ErrNotStrictlyIncreasing)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	cases := []struct {
		name string
		ids  []int
		n    int
	}{
		{"minimal", []int{1, 3, 5, 7}, 8},
		{"singleton", []int{42}, 100},
		{"dense", []int{1, 2, 3, 4}, 4},
		{"sparse_single_high", []int{1000}, 1000},
		{"two_elements", []int{5, 9999}, 10000},
		{"consecutive_run", []int{10, 11, 12, 13, 14}, 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enc, err := Encode(tc.ids, tc.n)
			require.NoError(t, err)

			got := Decode(enc)
			assert.Equal(t, tc.ids, got)
		})
	}
}

func TestEncode_MinimalExampleBounds(t *testing.T) {
	enc, err := Encode([]int{1, 3, 5, 7}, 8)
	require.NoError(t, err)
	assert.Equal(t, 2, enc.L, "l = round(log2(8/4)) + 1 = 2")
}

func TestEncode_Bounds(t *testing.T) {
	ids := []int{1, 3, 5, 7}
	n := 8
	enc, err := Encode(ids, n)
	require.NoError(t, err)

	k := len(ids)
	assert.Equal(t, k*enc.L, enc.Low.Len(), "|low| = l*k")

	maxU := 0
	for _, id := range ids {
		u := id >> uint(enc.L)
		if u > maxU {
			maxU = u
		}
	}
	assert.Equal(t, maxU+k, enc.High.Len(), "|high| = max_u + k")
}

func TestEncode_DenseAllCellsExpressing(t *testing.T) {
	enc, err := Encode([]int{1, 2, 3, 4}, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, enc.L)
	assert.Equal(t, []int{1, 2, 3, 4}, Decode(enc))
}

func TestEncode_LIsAtLeastOne(t *testing.T) {
	// k == n, ratio == 1, log2(1) == 0, so l is 1 without clamping; for input
	// with every id <= n (hence k <= n) this is the smallest l Encode computes.
	enc, err := Encode([]int{1, 2}, 2)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, enc.L, 1)
}
