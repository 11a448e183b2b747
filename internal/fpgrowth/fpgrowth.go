package fpgrowth

import "sort"

// Transaction is a set of gene names observed together in a single cell.
type Transaction []string

// Itemset is a frequent pattern and the number of transactions containing
// it.
type Itemset struct {
	Items   []string
	Support int
}

// Miner mines frequent itemsets from a transaction multiset. The core never
// depends on FPGrowth directly — only on this interface — so an alternate
// mining strategy can be substituted via WithMiner.
type Miner interface {
	Mine(transactions []Transaction, minSupport int) []Itemset
}

// FPGrowth is a classic FP-tree based frequent itemset miner: one pass to
// count global item frequencies, a second pass to build the prefix tree,
// then recursive mining of conditional pattern bases per frequent item.
type FPGrowth struct{}

// New returns a ready-to-use FPGrowth miner.
func New() *FPGrowth {
	return &FPGrowth{}
}

// Mine implements Miner.
func (m *FPGrowth) Mine(transactions []Transaction, minSupport int) []Itemset {
	if minSupport < 1 || len(transactions) == 0 {
		return nil
	}

	paths := make([]weightedPath, 0, len(transactions))
	for _, tx := range transactions {
		paths = append(paths, weightedPath{items: dedupe(tx), count: 1})
	}

	counts := countItemsWeighted(paths)
	frequent := frequentSet(counts, minSupport)
	if len(frequent) == 0 {
		return nil
	}
	rank := rankByDescendingFrequency(frequent, counts)

	hdr, _ := buildTree(paths, frequent, rank)

	var results []Itemset
	mineTree(hdr, minSupport, nil, &results)
	return results
}

// node is one prefix-tree node; children are keyed by item name.
type node struct {
	item     string
	count    int
	parent   *node
	children map[string]*node
}

func newNode(item string, parent *node) *node {
	return &node{item: item, parent: parent, children: make(map[string]*node)}
}

// header maps an item to every node occurrence carrying it in the tree.
type header map[string][]*node

// weightedPath is a set of items (already deduplicated, unordered) paired
// with the number of original transactions it represents — transactions at
// the root level always carry weight 1; conditional pattern bases collapse
// to larger weights as they are re-derived from tree node counts.
type weightedPath struct {
	items []string
	count int
}

func dedupe(tx Transaction) []string {
	seen := make(map[string]bool, len(tx))
	out := make([]string, 0, len(tx))
	for _, item := range tx {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}

func countItemsWeighted(paths []weightedPath) map[string]int {
	counts := make(map[string]int)
	for _, p := range paths {
		for _, item := range p.items {
			counts[item] += p.count
		}
	}
	return counts
}

func frequentSet(counts map[string]int, minSupport int) map[string]bool {
	frequent := make(map[string]bool)
	for item, c := range counts {
		if c >= minSupport {
			frequent[item] = true
		}
	}
	return frequent
}

// rankByDescendingFrequency orders frequent items from most to least
// frequent (ties broken lexically for determinism), so that shared prefixes
// in transactions collapse into shared tree paths.
func rankByDescendingFrequency(frequent map[string]bool, counts map[string]int) map[string]int {
	items := make([]string, 0, len(frequent))
	for item := range frequent {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if counts[items[i]] != counts[items[j]] {
			return counts[items[i]] > counts[items[j]]
		}
		return items[i] < items[j]
	})
	rank := make(map[string]int, len(items))
	for i, item := range items {
		rank[item] = i
	}
	return rank
}

// buildTree inserts every path (restricted to frequent items, ordered by
// rank) into a fresh prefix tree rooted at an empty sentinel node.
func buildTree(paths []weightedPath, frequent map[string]bool, rank map[string]int) (header, *node) {
	root := newNode("", nil)
	hdr := make(header)

	for _, p := range paths {
		filtered := make([]string, 0, len(p.items))
		for _, item := range p.items {
			if frequent[item] {
				filtered = append(filtered, item)
			}
		}
		sort.Slice(filtered, func(i, j int) bool { return rank[filtered[i]] < rank[filtered[j]] })

		cur := root
		for _, item := range filtered {
			child, ok := cur.children[item]
			if !ok {
				child = newNode(item, cur)
				cur.children[item] = child
				hdr[item] = append(hdr[item], child)
			}
			child.count += p.count
			cur = child
		}
	}

	return hdr, root
}

// mineTree emits prefix+item for every item in hdr whose total occurrence
// count clears minSupport, then recurses into that item's conditional
// pattern base — the set of ancestor paths of every occurrence of item,
// each weighted by that occurrence's count.
func mineTree(hdr header, minSupport int, prefix []string, results *[]Itemset) {
	items := make([]string, 0, len(hdr))
	for item := range hdr {
		items = append(items, item)
	}
	sort.Strings(items)

	for _, item := range items {
		occurrences := hdr[item]
		support := 0
		for _, n := range occurrences {
			support += n.count
		}
		if support < minSupport {
			continue
		}

		itemset := append(append([]string{}, prefix...), item)
		*results = append(*results, Itemset{Items: itemset, Support: support})

		condPaths := conditionalPatternBase(occurrences)
		condCounts := countItemsWeighted(condPaths)
		condFrequent := frequentSet(condCounts, minSupport)
		if len(condFrequent) == 0 {
			continue
		}
		condRank := rankByDescendingFrequency(condFrequent, condCounts)
		condHdr, _ := buildTree(condPaths, condFrequent, condRank)
		mineTree(condHdr, minSupport, itemset, results)
	}
}

// conditionalPatternBase walks from each occurrence of an item up to the
// tree root, collecting the ancestor item names (excluding the item
// itself) as one weighted path per occurrence.
func conditionalPatternBase(occurrences []*node) []weightedPath {
	paths := make([]weightedPath, 0, len(occurrences))
	for _, n := range occurrences {
		var items []string
		for p := n.parent; p != nil && p.item != ""; p = p.parent {
			items = append(items, p.item)
		}
		paths = append(paths, weightedPath{items: items, count: n.count})
	}
	return paths
}
