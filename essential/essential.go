// Package essential selects the essential implicants out of a set of
// prime implicants: a rank-ordered greedy cover, not true essential
// prime implicant extraction, per spec.md's documented approximation.
package essential

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/crillab/qmx/permute"
	"github.com/crillab/qmx/term"
)

// GetEssentialImplicants ranks every prime by term.Rank (weighted by
// how many useful minterms it covers) and greedily includes primes,
// from highest rank downward, skipping any whose coverage is already
// wholly subsumed by what has been selected so far. Returns the
// all-don't-care sentinel if primes is empty.
func GetEssentialImplicants(nBits int, primes mapset.Set[string], dc mapset.Set[string]) mapset.Set[string] {
	perms := make(map[string]mapset.Set[string], primes.Cardinality())
	ranks := make(map[string]int, primes.Cardinality())
	for t := range primes.Iter() {
		covered := permute.Expand(t, nil).Difference(dc)
		perms[t] = covered
		ranks[t] = term.Rank(t, covered.Cardinality())
	}

	ordered := primes.ToSlice()
	sort.Slice(ordered, func(i, j int) bool {
		if ranks[ordered[i]] != ranks[ordered[j]] {
			return ranks[ordered[i]] > ranks[ordered[j]]
		}
		// within a rank bucket, iterate in reverse lexicographic order.
		return ordered[i] > ordered[j]
	})

	essentials := mapset.NewThreadUnsafeSet[string]()
	covered := mapset.NewThreadUnsafeSet[string]()
	for _, t := range ordered {
		if !perms[t].IsSubset(covered) {
			essentials.Add(t)
			covered = covered.Union(perms[t])
		}
	}

	if essentials.Cardinality() == 0 {
		allDontCare := make([]byte, nBits)
		for i := range allDontCare {
			allDontCare[i] = '-'
		}
		essentials.Add(string(allDontCare))
	}
	return essentials
}
