// Package reduce performs the final pairwise-combine and
// redundancy-elimination passes that turn a set of essential
// implicants into a minimal, non-redundant cover.
package reduce

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/crillab/qmx/permute"
	"github.com/crillab/qmx/term"
)

// CombineImplicants tries to merge a and b into a single implicant
// covering exactly the union of what a and b cover (excluding dc). It
// replaces every '-' in a with the corresponding character from b (and
// symmetrically for b), keeping only candidates whose own coverage
// equals that union, and returns the lowest-complexity survivor.
func CombineImplicants(a, b string, dc mapset.Set[string]) (string, bool) {
	coverA := permute.Expand(a, dc)
	coverB := permute.Expand(b, dc)
	union := coverA.Union(coverB)

	aDCs := term.Terms(a).DCs
	bDCs := term.Terms(b).DCs

	aCandidate := []byte(a)
	for _, idx := range aDCs {
		aCandidate[idx] = b[idx]
	}
	bCandidate := []byte(b)
	for _, idx := range bDCs {
		bCandidate[idx] = a[idx]
	}

	candidates := []string{string(aCandidate), string(bCandidate)}
	var valid []string
	for _, c := range candidates {
		if permute.Expand(c, dc).Equal(union) {
			valid = append(valid, c)
		}
	}
	if len(valid) == 0 {
		return "", false
	}

	sort.Slice(valid, func(i, j int) bool {
		ci, cj := term.Complexity(valid[i]), term.Complexity(valid[j])
		if ci != cj {
			return ci < cj
		}
		return valid[i] < valid[j]
	})
	return valid[0], true
}

// ReduceImplicants runs the two reduction phases: a greedy pairwise
// combine to a fixed point, then redundancy elimination that drops,
// one at a time, the lowest-complexity implicant whose coverage is
// wholly subsumed by the rest — reproducing the source's
// pessimization of removing the simplest redundant term first rather
// than the most complex one (see DESIGN.md).
func ReduceImplicants(nBits int, implicants mapset.Set[string], dc mapset.Set[string]) mapset.Set[string] {
	current := implicants.Clone()

	for {
		merged := false
		pairs := current.ToSlice()
		sort.Strings(pairs)
		for i := 0; i < len(pairs) && !merged; i++ {
			for j := i + 1; j < len(pairs); j++ {
				a, b := pairs[i], pairs[j]
				if replacement, ok := CombineImplicants(a, b, dc); ok {
					current.Remove(a)
					current.Remove(b)
					current.Add(replacement)
					merged = true
					break
				}
			}
		}
		if !merged {
			break
		}
	}

	coverage := make(map[string]mapset.Set[string], current.Cardinality())
	for t := range current.Iter() {
		coverage[t] = permute.Expand(t, nil).Difference(dc)
	}

	for {
		var redundant []string
		for this := range coverage {
			others := mapset.NewThreadUnsafeSet[string]()
			for other, cov := range coverage {
				if other == this {
					continue
				}
				others = others.Union(cov)
			}
			if coverage[this].IsSubset(others) {
				redundant = append(redundant, this)
			}
		}
		if len(redundant) == 0 {
			break
		}
		sort.Slice(redundant, func(i, j int) bool {
			ci, cj := term.Complexity(redundant[i]), term.Complexity(redundant[j])
			if ci != cj {
				return ci < cj
			}
			return redundant[i] < redundant[j]
		})
		delete(coverage, redundant[0])
	}

	if len(coverage) == 0 {
		allDontCare := make([]byte, nBits)
		for i := range allDontCare {
			allDontCare[i] = '-'
		}
		result := mapset.NewThreadUnsafeSet[string]()
		result.Add(string(allDontCare))
		return result
	}

	result := mapset.NewThreadUnsafeSet[string]()
	for t := range coverage {
		result.Add(t)
	}
	return result
}
