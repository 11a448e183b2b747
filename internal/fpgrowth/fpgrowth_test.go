package fpgrowth

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func itemsetKeys(results []Itemset) map[string]int {
	out := make(map[string]int, len(results))
	for _, r := range results {
		items := append([]string{}, r.Items...)
		sort.Strings(items)
		key := ""
		for _, it := range items {
			key += it + ","
		}
		out[key] = r.Support
	}
	return out
}

func TestFPGrowth_ClassicExample(t *testing.T) {
	// Standard textbook transaction set for FP-growth worked examples.
	transactions := []Transaction{
		{"A", "B", "C", "E"},
		{"A", "B", "C"},
		{"A", "B"},
		{"A"},
		{"B", "C", "E"},
		{"B", "C"},
		{"B", "E"},
		{"C", "E"},
	}

	m := New()
	results := m.Mine(transactions, 3)
	got := itemsetKeys(results)

	// A appears 4 times, B 6, C 5, E 4.
	assert.Equal(t, 4, got["A,"])
	assert.Equal(t, 6, got["B,"])
	assert.Equal(t, 5, got["C,"])
	assert.Equal(t, 4, got["E,"])

	// {B,C} appears together in transactions 1,2,5,6 => 4.
	assert.Equal(t, 4, got["B,C,"])
}

func TestFPGrowth_EmptyBelowThreshold(t *testing.T) {
	transactions := []Transaction{
		{"A"},
		{"B"},
	}
	m := New()
	results := m.Mine(transactions, 5)
	assert.Empty(t, results)
}

func TestFPGrowth_NoTransactions(t *testing.T) {
	m := New()
	assert.Empty(t, m.Mine(nil, 1))
}

func TestFPGrowth_InvalidMinSupport(t *testing.T) {
	m := New()
	assert.Empty(t, m.Mine([]Transaction{{"A"}}, 0))
}

func TestFPGrowth_DuplicateItemsInTransactionIgnored(t *testing.T) {
	transactions := []Transaction{
		{"A", "A", "B"},
		{"A", "B"},
	}
	m := New()
	results := m.Mine(transactions, 2)
	got := itemsetKeys(results)
	assert.Equal(t, 2, got["A,"])
	assert.Equal(t, 2, got["B,"])
	assert.Equal(t, 2, got["A,B,"])
}

func TestFPGrowth_SupportNeverExceedsTransactionCount(t *testing.T) {
	transactions := []Transaction{
		{"A", "B"},
		{"A", "B", "C"},
		{"A", "C"},
	}
	m := New()
	results := m.Mine(transactions, 1)
	for _, r := range results {
		assert.LessOrEqual(t, r.Support, len(transactions))
	}
}
