package prime

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/crillab/qmx/xorfuse"
)

// groupKey buckets terms by (n_ones, n_xor, n_xnor). The alphabet
// invariant guarantees at most one of nXor/nXnor is ever nonzero.
type groupKey struct {
	nOnes, nXor, nXnor int
}

// Result is the outcome of GetPrimeImplicants: the set of prime
// implicants plus the three merge-attempt counters, diagnostic only.
type Result struct {
	Implicants                          mapset.Set[string]
	ProfileCmp, ProfileXor, ProfileXnor int
}

// GetPrimeImplicants runs the extended Quine-McCluskey grouping loop
// over terms (the union of the ON-set and don't-care set, already
// normalized to nBits-wide bit-strings) and returns every prime
// implicant it finds.
func GetPrimeImplicants(nBits int, useXor bool, terms mapset.Set[string]) Result {
	working := terms.Clone()
	if useXor {
		seedXorXnor(nBits, working)
	}

	marked := mapset.NewThreadUnsafeSet[string]()
	var profileCmp, profileXor, profileXnor int
	var groups map[groupKey]mapset.Set[string]

	for {
		groups = groupBy(working)
		working = mapset.NewThreadUnsafeSet[string]()
		used := mapset.NewThreadUnsafeSet[string]()

		for key, group := range groups {
			nextGroup, ok := groups[groupKey{key.nOnes + 1, key.nXor, key.nXnor}]
			if !ok {
				continue
			}
			for t1 := range group.Iter() {
				for i := 0; i < len(t1); i++ {
					if t1[i] != '0' {
						continue
					}
					profileCmp++
					t2 := setChar(t1, i, '1')
					if nextGroup.Contains(t2) {
						used.Add(t1)
						used.Add(t2)
						working.Add(setChar(t1, i, '-'))
					}
				}
			}
		}

		for key, group := range groups {
			if key.nXor == 0 {
				continue
			}
			compGroup, ok := groups[groupKey{key.nOnes + 1, key.nXnor, key.nXor}]
			if !ok {
				continue
			}
			for t1 := range group.Iter() {
				t1c := replaceChar(t1, '^', '~')
				for i := 0; i < len(t1); i++ {
					if t1[i] != '0' {
						continue
					}
					profileXor++
					t2 := setChar(t1c, i, '1')
					if compGroup.Contains(t2) {
						used.Add(t1)
						working.Add(setChar(t1, i, '^'))
					}
				}
			}
		}

		for key, group := range groups {
			if key.nXnor == 0 {
				continue
			}
			compGroup, ok := groups[groupKey{key.nOnes + 1, key.nXnor, key.nXor}]
			if !ok {
				continue
			}
			for t1 := range group.Iter() {
				t1c := replaceChar(t1, '~', '^')
				for i := 0; i < len(t1); i++ {
					if t1[i] != '0' {
						continue
					}
					profileXnor++
					t2 := setChar(t1c, i, '1')
					if compGroup.Contains(t2) {
						used.Add(t1)
						working.Add(setChar(t1, i, '~'))
					}
				}
			}
		}

		for _, group := range groups {
			marked = marked.Union(group.Difference(used))
		}

		if used.Cardinality() == 0 {
			break
		}
	}

	pi := marked.Clone()
	for _, group := range groups {
		pi = pi.Union(group)
	}
	return Result{Implicants: pi, ProfileCmp: profileCmp, ProfileXor: profileXor, ProfileXnor: profileXnor}
}

// seedXorXnor is the one-shot pre-pass that adds simple two-term
// XOR/XNOR fusions to terms before the main grouping loop runs.
func seedXorXnor(nBits int, terms mapset.Set[string]) {
	buckets := make([]mapset.Set[string], nBits+1)
	for i := range buckets {
		buckets[i] = mapset.NewThreadUnsafeSet[string]()
	}
	for t := range terms.Iter() {
		buckets[countChar(t, '1')].Add(t)
	}

	nGroups := nBits + 1
	for gi := 0; gi < nGroups; gi++ {
		for t1 := range buckets[gi].Iter() {
			for t2 := range buckets[gi].Iter() {
				if t12, ok := xorfuse.ReduceXor(t1, t2); ok {
					terms.Add(t12)
				}
			}
			if gi < nGroups-2 {
				for t2 := range buckets[gi+2].Iter() {
					if t12, ok := xorfuse.ReduceXnor(t1, t2); ok {
						terms.Add(t12)
					}
				}
			}
		}
	}
}

func groupBy(terms mapset.Set[string]) map[groupKey]mapset.Set[string] {
	groups := make(map[groupKey]mapset.Set[string])
	for t := range terms.Iter() {
		nXor, nXnor := countChar(t, '^'), countChar(t, '~')
		if nXor != 0 && nXnor != 0 {
			panic("prime: implicant contains both ^ and ~: " + t)
		}
		key := groupKey{countChar(t, '1'), nXor, nXnor}
		g, ok := groups[key]
		if !ok {
			g = mapset.NewThreadUnsafeSet[string]()
			groups[key] = g
		}
		g.Add(t)
	}
	return groups
}

func setChar(s string, i int, c byte) string {
	b := []byte(s)
	b[i] = c
	return string(b)
}

func replaceChar(s string, from, to byte) string {
	b := []byte(s)
	for i := range b {
		if b[i] == from {
			b[i] = to
		}
	}
	return string(b)
}

func countChar(s string, c byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			n++
		}
	}
	return n
}
