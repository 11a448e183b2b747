package scfind

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/evanbiederstedt/scfind/internal/fpgrowth"
)

// MarkerResult is one scored frequent itemset returned by FindMarkerGenes.
type MarkerResult struct {
	Genes       []string
	Support     int
	Score       float64
	CellTypeHit int
}

// cellID labels a transaction by (ordinal, cell-type ref) — the idiomatic Go
// replacement for the original's custom CellID hash key. The cell-type
// component is essential: ordinals are meaningful only within the slice
// that produced them, so two different cell types cannot share a
// transaction just because they happen to number a cell identically.
type cellID struct {
	ordinal int
	ctRef   cellTypeRef
}

// FindMarkerGenes mines frequent co-expression patterns among genes and
// scores each by a TF-IDF-like measure of how distinctive the pattern is.
func (s *IndexStore) FindMarkerGenes(ctx context.Context, genes []string, minSupport int) (_ []MarkerResult, err error) {
	start := time.Now()
	patterns := 0
	txCount := 0
	defer func() {
		s.opts.metrics.RecordMarkerMining(patterns, time.Since(start), err)
		s.opts.logger.LogMarkerMining(ctx, len(genes), txCount, patterns)
	}()

	if len(genes) == 0 {
		err = ErrEmptyGeneList
		return nil, err
	}
	if minSupport < 1 {
		minSupport = s.opts.defaultMinSupport
	}
	if minSupport < 1 {
		err = ErrInvalidMinSupport
		return nil, err
	}

	byCell := make(map[cellID][]string)
	for _, gene := range genes {
		byCT, ok := s.metadata[gene]
		if !ok {
			continue
		}
		for ctRef, rec := range byCT {
			for _, ordinal := range rec.Decode() {
				id := cellID{ordinal: ordinal, ctRef: ctRef}
				byCell[id] = append(byCell[id], gene)
			}
		}
	}

	transactions := make([]fpgrowth.Transaction, 0, len(byCell))
	for _, tx := range byCell {
		transactions = append(transactions, fpgrowth.Transaction(tx))
	}
	txCount = len(transactions)

	itemsets := s.opts.miner.Mine(transactions, minSupport)
	patterns = len(itemsets)

	results := make([]MarkerResult, 0, len(itemsets))
	for _, iset := range itemsets {
		results = append(results, s.scoreItemset(iset))
	}
	return results, nil
}

// scoreItemset implements the TF-IDF-style scoring formula for a frequent
// itemset: a base term from the overall rarity of its genes, scaled by the
// log of how well-supported the pattern is, normalized against how
// confidently each gene marks the cell types it shares the pattern in.
func (s *IndexStore) scoreItemset(iset fpgrowth.Itemset) MarkerResult {
	base := math.Log(float64(s.totalCells)) * float64(len(iset.Items))
	for _, g := range iset.Items {
		base -= math.Log(float64(s.geneCounts[g]))
	}

	cSet := s.cellTypesExpressingAll(iset.Items)

	denom := 0.0
	for _, g := range iset.Items {
		byCT := s.metadata[g]
		for ctRef := range cSet {
			denom += byCT[ctRef].IDF()
		}
	}

	score := 0.0
	if denom != 0 {
		score = (base * math.Log(float64(iset.Support))) / denom
	}

	items := append([]string{}, iset.Items...)
	sort.Strings(items)

	return MarkerResult{
		Genes:       items,
		Support:     iset.Support,
		Score:       score,
		CellTypeHit: len(cSet),
	}
}

// cellTypesExpressingAll returns the set of cell-type refs that have a
// posting for every gene in items.
func (s *IndexStore) cellTypesExpressingAll(items []string) map[cellTypeRef]bool {
	if len(items) == 0 {
		return nil
	}
	first, ok := s.metadata[items[0]]
	if !ok {
		return nil
	}
	cSet := make(map[cellTypeRef]bool, len(first))
	for ctRef := range first {
		cSet[ctRef] = true
	}
	for _, gene := range items[1:] {
		byCT, ok := s.metadata[gene]
		if !ok {
			return nil
		}
		for ctRef := range cSet {
			if _, present := byCT[ctRef]; !present {
				delete(cSet, ctRef)
			}
		}
	}
	return cSet
}
