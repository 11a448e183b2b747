package scfind

import (
	"context"
	"time"
)

// Merge absorbs other into s: every posting in other is appended to s's own
// posting store (the immutable *PostingRecord is shared with other, not
// duplicated), relations are relinked against s's own cell-type pool and
// gene map, and gene_counts/total_cells are summed. other is left untouched
// — Merge only ever reads from it.
//
// Postings are copied and relations updated before anything is considered
// committed; a failure partway through (there is none under normal
// operation, since linking a PostingRecord cannot fail) must never leave s
// with a partially-linked posting. Cell types from other are interned fresh
// into s's pool, even if a same-named cell type already exists in s — see
// celltype.go.
func (s *IndexStore) Merge(ctx context.Context, other *IndexStore) (err error) {
	start := time.Now()
	absorbed := 0
	defer func() {
		s.opts.metrics.RecordMerge(absorbed, time.Since(start), err)
		s.opts.logger.LogMerge(ctx, absorbed, s.totalCells, err)
	}()

	if other == nil {
		return nil
	}

	// Phase 1: copy every incoming posting and build the ref-remap table
	// before touching s's own relations, so s observes either the full
	// merge or none of it.
	remap := make(map[cellTypeRef]cellTypeRef, len(other.pool.names))
	for ref := range other.pool.names {
		srcRef := cellTypeRef(ref)
		remap[srcRef] = s.pool.intern(other.pool.name(srcRef))
	}

	type linked struct {
		gene  string
		ctRef cellTypeRef
		rec   *PostingRecord
	}
	incoming := make([]linked, 0, len(other.postings))
	for gene, byCT := range other.metadata {
		for srcRef, rec := range byCT {
			incoming = append(incoming, linked{
				gene:  gene,
				ctRef: remap[srcRef],
				rec:   rec,
			})
		}
	}

	// Phase 2: link. Every step below is a pure map write, so this phase
	// cannot fail partway through.
	for _, l := range incoming {
		if s.metadata[l.gene] == nil {
			s.metadata[l.gene] = make(map[cellTypeRef]*PostingRecord)
		}
		s.metadata[l.gene][l.ctRef] = l.rec
		s.postings = append(s.postings, l.rec)
		absorbed++
	}

	for gene, count := range other.geneCounts {
		s.geneCounts[gene] += count
	}
	s.totalCells += other.totalCells
	s.emptyRowWarnings += other.emptyRowWarnings

	return nil
}
