package qmx

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"

	"github.com/crillab/qmx/essential"
	"github.com/crillab/qmx/internal/numin"
	"github.com/crillab/qmx/prime"
	"github.com/crillab/qmx/reduce"
)

// ErrEmptyInput is returned when the combined ON-set and don't-care
// set is empty — there is nothing to minimize.
var ErrEmptyInput = errors.New("qmx: empty input")

// ErrInconsistentWidths is returned by the string-term entry points
// when terms have differing lengths and no explicit bit width was
// given to disambiguate.
var ErrInconsistentWidths = errors.New("qmx: inconsistent term widths")

// Profile carries the three merge-attempt counters GetPrimeImplicants
// accumulates while building prime implicants. Diagnostic only: it
// has no bearing on correctness, only on how much work the run did.
type Profile struct {
	Cmp, Xor, Xnor int
}

// Result is the outcome of a *WithProfile call: the minimal cover
// plus the profile counters from prime-implicant generation.
type Result struct {
	Implicants []string
	Profile    Profile
}

// Simplify minimizes a function given by integer minterm indices. dc
// lists don't-care minterms. numBits, if non-nil, overrides the
// inferred bit width (see internal/numin's documented natural-log
// quirk). Set useXor to additionally recognize XOR/XNOR structure.
func Simplify(ones, dc []int, numBits *int, useXor bool) ([]string, error) {
	res, err := SimplifyWithProfile(ones, dc, numBits, useXor)
	if err != nil {
		return nil, err
	}
	return res.Implicants, nil
}

// SimplifyWithProfile is Simplify plus the prime-generation profile
// counters.
func SimplifyWithProfile(ones, dc []int, numBits *int, useXor bool) (Result, error) {
	nBits, err := numin.ResolveWidth(ones, dc, numBits)
	if err != nil {
		return Result{}, ErrEmptyInput
	}
	onesStr := numin.ToBitStrings(nBits, ones)
	dcStr := numin.ToBitStrings(nBits, dc)
	return SimplifyLOSWithProfile(onesStr, dcStr, &nBits, useXor)
}

// SimplifyLOS minimizes a function given by bit-string minterms (the
// {0,1}-only "list-of-strings" form). All strings in ones and dc must
// share one length unless numBits overrides it.
func SimplifyLOS(ones, dc []string, numBits *int, useXor bool) ([]string, error) {
	res, err := SimplifyLOSWithProfile(ones, dc, numBits, useXor)
	if err != nil {
		return nil, err
	}
	return res.Implicants, nil
}

// SimplifyLOSWithProfile is SimplifyLOS plus the prime-generation
// profile counters.
func SimplifyLOSWithProfile(ones, dc []string, numBits *int, useXor bool) (Result, error) {
	terms := mapset.NewThreadUnsafeSet[string]()
	for _, t := range ones {
		terms.Add(t)
	}
	for _, t := range dc {
		terms.Add(t)
	}
	if terms.Cardinality() == 0 {
		return Result{}, ErrEmptyInput
	}

	nBits, err := resolveLOSWidth(terms, numBits)
	if err != nil {
		return Result{}, err
	}

	dcSet := mapset.NewThreadUnsafeSet[string]()
	for _, t := range dc {
		dcSet.Add(t)
	}

	pr := prime.GetPrimeImplicants(nBits, useXor, terms)
	essentials := essential.GetEssentialImplicants(nBits, pr.Implicants, dcSet)
	reduced := reduce.ReduceImplicants(nBits, essentials, dcSet)

	implicants := reduced.ToSlice()
	sort.Strings(implicants)

	return Result{
		Implicants: implicants,
		Profile:    Profile{Cmp: pr.ProfileCmp, Xor: pr.ProfileXor, Xnor: pr.ProfileXnor},
	}, nil
}

func resolveLOSWidth(terms mapset.Set[string], numBits *int) (int, error) {
	if numBits != nil {
		return *numBits, nil
	}
	width := -1
	for t := range terms.Iter() {
		if width == -1 {
			width = len(t)
		} else if len(t) != width {
			return 0, ErrInconsistentWidths
		}
	}
	return width, nil
}
