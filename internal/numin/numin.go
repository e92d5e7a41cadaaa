// Package numin is the peripheral "numeric-to-bitstring input
// normalization" pre-pass spec.md calls out as an external
// collaborator rather than core algorithm: it converts integer
// minterm indices into fixed-width bit-strings and infers a bit width
// when the caller doesn't supply one.
package numin

import (
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/crillab/qmx/term"
)

// ErrNoTerms is returned when both the ON-set and don't-care set are
// empty — there is nothing to infer a width from.
var ErrNoTerms = errors.New("numin: no terms to infer bit width from")

// InferBits reproduces the source's width inference exactly:
// ceil(ln(maxTerm) + 1), using the natural log. This is not the
// minimal binary width (maxTerm 3 yields 3, maxTerm 16 yields 4), and
// callers that need predictable widths should pass one explicitly
// instead of relying on InferBits. For maxTerm below 1, where the
// logarithm is undefined, it returns 0.
func InferBits(maxTerm int) int {
	if maxTerm < 1 {
		return 0
	}
	return int(math.Ceil(math.Log(float64(maxTerm)) + 1))
}

// ToBitStrings converts every integer in terms to a bit-string of
// width nBits using term.NumToString.
func ToBitStrings(nBits int, terms []int) []string {
	return lo.Map(terms, func(v int, _ int) string {
		return term.NumToString(nBits, v)
	})
}

// ResolveWidth picks the bit width to use for the integer form of the
// orchestrator: numBits if the caller supplied one, else inferred from
// the largest term present via InferBits. When numBits is nil and both
// ones and dc are empty, returns ErrNoTerms.
func ResolveWidth(ones, dc []int, numBits *int) (int, error) {
	if numBits != nil {
		return *numBits, nil
	}
	if len(ones) == 0 && len(dc) == 0 {
		return 0, ErrNoTerms
	}
	max := lo.Max(append(append([]int{0}, ones...), dc...))
	return InferBits(max), nil
}
