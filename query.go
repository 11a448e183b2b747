package scfind

import (
	"context"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// CellTypeHit is one cell-type's worth of matching cell ordinals. CellType
// is the pool-resolved name; two hits can legitimately carry the same name
// if their postings came from separate IngestSlice calls (see celltype.go),
// so callers that need to tell them apart must do so positionally, not by
// name.
type CellTypeHit struct {
	CellType string
	Ordinals []int
}

// QueryGenes returns, for every gene in genes that exists in the index, one
// CellTypeHit per cell type the gene has a posting for. Genes absent from
// the index are omitted from the result and reported in a Warn-level log
// entry — see ErrUnknownGene.
func (s *IndexStore) QueryGenes(ctx context.Context, genes []string) (_ map[string][]CellTypeHit, err error) {
	start := time.Now()
	var unknown []string
	hits := 0
	defer func() {
		s.opts.metrics.RecordQuery("QueryGenes", len(genes), time.Since(start), err)
		s.opts.logger.LogQuery(ctx, "QueryGenes", genes, hits, unknown)
	}()

	if len(genes) == 0 {
		err = ErrEmptyGeneList
		return nil, err
	}

	result := make(map[string][]CellTypeHit, len(genes))
	for _, gene := range genes {
		byCT, ok := s.metadata[gene]
		if !ok {
			unknown = append(unknown, gene)
			continue
		}
		geneHits := make([]CellTypeHit, 0, len(byCT))
		for ctRef, rec := range byCT {
			geneHits = append(geneHits, CellTypeHit{
				CellType: s.pool.name(ctRef),
				Ordinals: rec.Decode(),
			})
		}
		result[gene] = geneHits
		hits += len(geneHits)
	}
	return result, nil
}

// FindCellTypes returns one CellTypeHit per cell type in which every known
// gene in genes is simultaneously expressed — the AND-join across genes.
//
// The join key is the internal cell-type reference, not the cell-type name:
// two genes only share a cell type for intersection purposes if their
// postings came from the same IngestSlice call, because cell ordinals are
// local to the slice they were ingested in. Intersection semantics are
// strict: a gene with no posting under a given ref drops that ref from
// consideration, even if every gene examined so far had matched it.
//
// A gene absent from the index is non-fatal: it is dropped from the AND set
// (and reported via the diagnostic log), not treated as a reason to abort
// the whole call — mirroring QueryGenes and the original source's
// findCellTypes, which continues past an unrecognized gene rather than
// returning empty. Only a gene list in which every gene is unknown yields
// no candidates.
func (s *IndexStore) FindCellTypes(ctx context.Context, genes []string) (_ []CellTypeHit, err error) {
	start := time.Now()
	var unknown []string
	hits := 0
	defer func() {
		s.opts.metrics.RecordQuery("FindCellTypes", len(genes), time.Since(start), err)
		s.opts.logger.LogQuery(ctx, "FindCellTypes", genes, hits, unknown)
	}()

	if len(genes) == 0 {
		err = ErrEmptyGeneList
		return nil, err
	}

	var candidateRefs []cellTypeRef
	recordsByRef := make(map[cellTypeRef][]*PostingRecord)
	initialized := false
	for _, gene := range genes {
		byCT, ok := s.metadata[gene]
		if !ok {
			unknown = append(unknown, gene)
			continue
		}
		if !initialized {
			for ctRef, rec := range byCT {
				candidateRefs = append(candidateRefs, ctRef)
				recordsByRef[ctRef] = []*PostingRecord{rec}
			}
			initialized = true
			continue
		}

		survivors := candidateRefs[:0]
		for _, ctRef := range candidateRefs {
			rec, present := byCT[ctRef]
			if !present {
				continue
			}
			survivors = append(survivors, ctRef)
			recordsByRef[ctRef] = append(recordsByRef[ctRef], rec)
		}
		candidateRefs = survivors
	}

	if !initialized {
		return nil, nil
	}

	result := make([]CellTypeHit, 0, len(candidateRefs))
	for _, ctRef := range candidateRefs {
		ordinals := intersectPostings(recordsByRef[ctRef])
		if len(ordinals) == 0 {
			continue
		}
		result = append(result, CellTypeHit{
			CellType: s.pool.name(ctRef),
			Ordinals: ordinals,
		})
	}
	hits = len(result)
	return result, nil
}

// intersectPostings decodes every record and intersects the resulting
// ordinal sets using RoaringBitmap as a transient acceleration structure —
// the authoritative storage stays Elias-Fano; roaring is only ever used as
// a scratch structure inside a single query, never persisted (see
// SPEC_FULL.md §4.6).
func intersectPostings(recs []*PostingRecord) []int {
	if len(recs) == 0 {
		return nil
	}
	acc := roaring.New()
	for _, id := range recs[0].Decode() {
		acc.Add(uint32(id))
	}
	for _, rec := range recs[1:] {
		next := roaring.New()
		for _, id := range rec.Decode() {
			next.Add(uint32(id))
		}
		acc.And(next)
		if acc.IsEmpty() {
			return nil
		}
	}

	out := make([]int, 0, acc.GetCardinality())
	it := acc.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}
