package search

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"golang.org/x/text/unicode/norm"

	"github.com/quaywork/warehousectl/internal/shipstation"
)

// Candidate pairs an order with its fuzzy similarity score. Candidates
// exist only within a single locate; scores never cross the package
// boundary.
type Candidate struct {
	Order shipstation.Order
	Score int
}

// fold canonicalizes a name for comparison: NFC normalization, then
// lowercase. Customer names arrive from arbitrary storefronts with mixed
// Unicode composition.
func fold(s string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(s)))
}

// exactMatches returns every order whose recipient name contains the folded
// query as a substring, preserving upstream order.
func exactMatches(foldedQuery string, orders []shipstation.Order) []shipstation.Order {
	var matches []shipstation.Order
	for _, o := range orders {
		name := o.RecipientName()
		if name == "" {
			continue
		}
		if strings.Contains(fold(name), foldedQuery) {
			matches = append(matches, o)
		}
	}
	return matches
}

// fuzzyMatches scores every order with a non-empty recipient name and keeps
// those at or above threshold, sorted by score descending. The sort is
// stable: ties keep upstream relative order.
//
// Each name is scored with three measures and the best one wins. Partial
// ratio favors substrings with typos at the edges, token-sort tolerates
// word reordering, and the weighted ratio balances both; no single measure
// reliably recovers a typo'd multi-word name.
func fuzzyMatches(foldedQuery string, orders []shipstation.Order, threshold int) []Candidate {
	var kept []Candidate
	for _, o := range orders {
		name := o.RecipientName()
		if name == "" {
			continue
		}
		score := bestScore(foldedQuery, fold(name))
		if score >= threshold {
			kept = append(kept, Candidate{Order: o, Score: score})
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score > kept[j].Score
	})
	return kept
}

func bestScore(query, name string) int {
	score := fuzzy.PartialRatio(query, name)
	if s := fuzzy.TokenSortRatio(query, name); s > score {
		score = s
	}
	if s := fuzzy.WRatio(query, name); s > score {
		score = s
	}
	return score
}
