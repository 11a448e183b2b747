package scfind

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRow marks a row with no expressing cells. It never escapes
	// IngestSlice as an error value — the row is skipped and a warning
	// counter is incremented instead.
	ErrEmptyRow = errors.New("scfind: row has no expressing cells")

	// ErrUnknownGene marks a gene absent from the index. QueryGenes never
	// returns it either; the gene is simply omitted from the result.
	ErrUnknownGene = errors.New("scfind: gene not found in index")

	// ErrInvalidMinSupport is returned by FindMarkerGenes when neither
	// minSupport nor the store's default min support is at least 1. A
	// minSupport below 1 falls back to the default, and WithDefaultMinSupport
	// only accepts values of at least 1, so a store built with New never
	// returns it.
	ErrInvalidMinSupport = errors.New("scfind: min_support must be at least 1")

	// ErrEmptyGeneList is returned by FindCellTypes and FindMarkerGenes
	// when called with no candidate genes.
	ErrEmptyGeneList = errors.New("scfind: gene list must not be empty")
)

// ErrDimensionMismatch indicates a matrix row whose value count does not
// match the slice's declared cell count.
//
// The underlying cause, if any, can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Gene     string
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("scfind: gene %q: expected %d values, got %d", e.Gene, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidCellType indicates an empty cell-type name was passed to
// IngestSlice.
type ErrInvalidCellType struct {
	cause error
}

func (e *ErrInvalidCellType) Error() string {
	return "scfind: cell-type name must not be empty"
}

func (e *ErrInvalidCellType) Unwrap() error { return e.cause }
