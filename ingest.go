package scfind

import (
	"context"
	"time"
)

// Matrix is a caller-provided, read-only view of one gene-expression slice:
// Cells columns (in cell order) for each of Genes rows. Row(i) must return a
// slice of exactly Cells values for gene Genes[i]; scfind never mutates the
// returned slice.
type Matrix struct {
	Genes []string
	Cells int
	Row   func(i int) []float64
}

// IngestSlice adds one cell-type slice to the index: every gene in m.Genes
// gets its own PostingRecord for this cell type, built from the expressing
// (value > 0) cell ordinals in its row.
//
// The cell type is interned fresh on every call, even if a slice with the
// same name was ingested before — see celltype.go. A row with no expressing
// cells is skipped with a warning, not an error; IngestSlice only fails on
// a structural problem (empty cell type, row/column mismatch).
//
// Every row's dimensions are checked before any posting is linked, interned
// cell type included, so a dimension mismatch discovered partway through
// m.Genes can never leave the store with some of the slice's postings
// committed and others missing — the same all-or-nothing guarantee Merge
// documents for its own two-phase copy-then-link design.
func (s *IndexStore) IngestSlice(ctx context.Context, cellType string, m Matrix) (err error) {
	start := time.Now()
	warnings := 0
	defer func() {
		s.opts.metrics.RecordIngest(m.Cells, time.Since(start), err)
		s.opts.logger.LogIngest(ctx, cellType, m.Cells, len(m.Genes), warnings, err)
	}()

	if cellType == "" {
		err = &ErrInvalidCellType{}
		return err
	}

	for i, gene := range m.Genes {
		if n := len(m.Row(i)); n != m.Cells {
			err = &ErrDimensionMismatch{Gene: gene, Expected: m.Cells, Actual: n}
			return err
		}
	}

	ctRef := s.pool.intern(cellType)

	for i, gene := range m.Genes {
		values := m.Row(i)

		ids := expressingIDs(values)
		if len(ids) == 0 {
			warnings++
			continue
		}

		rec, recErr := newPostingRecord(ids, values, m.Cells, s.opts.quantizerBits, ctRef)
		if recErr != nil {
			err = recErr
			return err
		}

		if s.metadata[gene] == nil {
			s.metadata[gene] = make(map[cellTypeRef]*PostingRecord)
		}
		s.metadata[gene][ctRef] = rec
		s.postings = append(s.postings, rec)
		s.geneCounts[gene] += len(ids)
	}

	s.totalCells += m.Cells
	s.emptyRowWarnings += warnings
	return nil
}

// expressingIDs returns the 1-based, strictly increasing positions where
// values[i] > 0 — the Elias-Fano encoder's input convention.
func expressingIDs(values []float64) []int {
	ids := make([]int, 0, len(values))
	for i, v := range values {
		if v > 0 {
			ids = append(ids, i+1)
		}
	}
	return ids
}

