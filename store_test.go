package scfind

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matrixFromRows(genes []string, rows [][]float64) Matrix {
	return Matrix{
		Genes: genes,
		Cells: len(rows[0]),
		Row:   func(i int) []float64 { return rows[i] },
	}
}

func TestIndexStore_DecodeOutOfRangeReturnsNil(t *testing.T) {
	s := New()
	assert.Nil(t, s.Decode(0))
	assert.Nil(t, s.Decode(-1))
}

func TestIndexStore_DecodeRoundTrip(t *testing.T) {
	s := New()
	err := s.IngestSlice(context.Background(), "T", matrixFromRows(
		[]string{"A"},
		[][]float64{{0, 5, 0, 8}},
	))
	require.NoError(t, err)

	require.Equal(t, 1, s.DBSize())
	assert.Equal(t, []int{2, 4}, s.Decode(0))
}

func TestIndexStore_GenesSortedAndScoped(t *testing.T) {
	s := New()
	err := s.IngestSlice(context.Background(), "T", matrixFromRows(
		[]string{"B", "A"},
		[][]float64{{1, 0}, {0, 1}},
	))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, s.Genes())
}

func TestIndexStore_MemoryFootprintGrowsWithData(t *testing.T) {
	s := New()
	before := s.MemoryFootprint()

	err := s.IngestSlice(context.Background(), "T", matrixFromRows(
		[]string{"A"},
		[][]float64{{1, 2, 3, 4}},
	))
	require.NoError(t, err)

	assert.Greater(t, s.MemoryFootprint(), before)
}

func TestIndexStore_GeneCountAccumulatesAcrossCellTypes(t *testing.T) {
	s := New()
	require.NoError(t, s.IngestSlice(context.Background(), "T1", matrixFromRows(
		[]string{"A"}, [][]float64{{1, 2}},
	)))
	require.NoError(t, s.IngestSlice(context.Background(), "T2", matrixFromRows(
		[]string{"A"}, [][]float64{{1, 2, 3}},
	)))

	assert.Equal(t, 5, s.GeneCount("A"))
	assert.Equal(t, 5, s.TotalCells())
}
