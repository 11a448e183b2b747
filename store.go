package scfind

import "sort"

// IndexStore is the two-level gene → cell-type → PostingRecord index,
// together with the cell-type string pool, per-gene occurrence counts, and
// the total-cell counter. It is not safe for concurrent mutation: IngestSlice
// and Merge must run on a single goroutine at a time.
type IndexStore struct {
	// metadata[gene][ctRef] is the stable, non-owning relation from a
	// (gene, cell-type) pair to its posting. The posting itself is owned
	// by postings below.
	metadata map[string]map[cellTypeRef]*PostingRecord

	// postings is the owning, insertion-ordered posting store. Decode(n)
	// and DBSize() both operate on this slice; the two-level map never
	// owns a PostingRecord, it only references one.
	postings []*PostingRecord

	pool *cellTypePool

	geneCounts map[string]int
	totalCells int

	emptyRowWarnings int

	opts *options
}

// New returns an empty IndexStore configured by opts.
func New(opts ...Option) *IndexStore {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &IndexStore{
		metadata:   make(map[string]map[cellTypeRef]*PostingRecord),
		pool:       newCellTypePool(),
		geneCounts: make(map[string]int),
		opts:       o,
	}
}

// Genes returns every gene name present in the index, sorted for
// deterministic output.
func (s *IndexStore) Genes() []string {
	genes := make([]string, 0, len(s.metadata))
	for g := range s.metadata {
		genes = append(genes, g)
	}
	sort.Strings(genes)
	return genes
}

// DBSize returns the number of stored postings.
func (s *IndexStore) DBSize() int {
	return len(s.postings)
}

// TotalCells returns the running total of cells across every ingested
// slice and every merged database — not deduplicated, by design.
func (s *IndexStore) TotalCells() int {
	return s.totalCells
}

// GeneCount returns gene_counts[gene]: the total number of expressing
// cells recorded for gene across every cell-type it appears in.
func (s *IndexStore) GeneCount(gene string) int {
	return s.geneCounts[gene]
}

// Decode returns the decoded ordinal list of the n-th stored posting, in
// insertion order. An out-of-range n is non-fatal: it returns nil.
func (s *IndexStore) Decode(n int) []int {
	if n < 0 || n >= len(s.postings) {
		return nil
	}
	return s.postings[n].Decode()
}

// MemoryFootprint estimates the index's total memory use in bytes: the sum
// of every posting's backing-buffer bytes plus per-posting struct overhead,
// plus the cell-type string pool, plus per-gene map bookkeeping.
func (s *IndexStore) MemoryFootprint() int {
	bytes := 0
	for _, p := range s.postings {
		bytes += p.ByteSize()
	}

	bytes += s.pool.byteSize()
	for gene, cellTypes := range s.metadata {
		bytes += len(gene)
		bytes += len(cellTypes) * 12 // per-entry map overhead
	}
	return bytes
}

// EmptyRowWarnings returns the number of rows skipped during ingestion
// because they had no expressing cells.
func (s *IndexStore) EmptyRowWarnings() int {
	return s.emptyRowWarnings
}
