// Package scfind provides an in-memory, compressed index of single-cell
// gene-expression data.
//
// For every (gene, cell-type) pair the index stores the sparse set of cell
// ordinals that express the gene — Elias-Fano coded for compactness — along
// with a log-normal quantization of the expression magnitudes. Three query
// classes are supported:
//
//   - QueryGenes: recover the expressing cells for a list of genes.
//   - FindCellTypes: find cell-types in which a set of genes are all
//     expressed (a posting-set AND).
//   - FindMarkerGenes: discover frequent gene co-expression patterns across
//     cells, scored with a TF-IDF-style weighting.
//
// # Quick start
//
//	idx := scfind.New()
//
//	err := idx.IngestSlice(ctx, "Tcell", scfind.Matrix{
//	    Genes: []string{"CD3D", "CD3E"},
//	    Cells: 500,
//	    Row: func(gene int) []float64 { return expression[gene] },
//	})
//
//	hits, err := idx.FindCellTypes(ctx, []string{"CD3D", "CD3E"})
//
// The core is single-threaded and synchronous: mutation (IngestSlice,
// Merge) and queries all run on the calling goroutine, and IndexStore is
// not safe for concurrent mutation. Posting records are immutable after
// insertion, which is what would make read-only sharing across goroutines
// sound if a future version added a read/write lock at the IndexStore
// boundary — today there is none.
package scfind
