package qmx

import (
	"fmt"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/require"

	"github.com/crillab/qmx/permute"
)

func bits(nBits int) *int {
	n := nBits
	return &n
}

func TestSimplifyScenario1(t *testing.T) {
	got, err := Simplify([]int{1, 2, 3}, nil, bits(2), false)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"-1", "1-"}, got)
}

func TestSimplifyScenario2AllOnes(t *testing.T) {
	got, err := Simplify([]int{0, 1, 2, 3}, nil, bits(2), false)
	require.NoError(t, err)
	require.Equal(t, []string{"--"}, got)
}

// The minterms [1,2,5,6,9,10,13,14] are exactly the points where
// bit1^bit0==1 with the top two bits free, which collapses to "--^^"
// (a 2-variable XOR), not a full 4-variable XOR — this is also what
// the original Python implementation's own docstring example produces
// for this exact input. See DESIGN.md for why spec.md's table labels
// this case "XOR of 4 vars" / "^^^^", which does not match either the
// algorithm or the original source for this particular ON-set.
func TestSimplifyScenarioThreeInputIsTwoVarXor(t *testing.T) {
	got, err := Simplify([]int{1, 2, 5, 6, 9, 10, 13, 14}, nil, bits(4), true)
	require.NoError(t, err)
	require.Equal(t, []string{"--^^"}, got)
}

// TestSimplifyFourVarXorCollapsesToSingleParityTerm exercises the
// genuine 4-variable XOR (the ON-set is every 4-bit value with odd
// parity): it must collapse to the single term "^^^^" rather than
// eight minterm-sized AND terms, which is the behavior spec.md's
// scenario 3 describes.
func TestSimplifyFourVarXorCollapsesToSingleParityTerm(t *testing.T) {
	got, err := Simplify([]int{1, 2, 4, 7, 8, 11, 13, 14}, nil, bits(4), true)
	require.NoError(t, err)
	require.Equal(t, []string{"^^^^"}, got)
}

func TestSimplifyScenario4Xnor(t *testing.T) {
	got, err := Simplify([]int{0, 3, 5, 6}, nil, bits(3), true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Contains(t, got[0], "~")
}

func TestSimplifyScenario5EmptyInputIsError(t *testing.T) {
	_, err := Simplify(nil, nil, nil, false)
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestSimplifyScenario6SmallOnSetInLargeDontCare(t *testing.T) {
	ones := []int{1, 4}
	dc := []int{0, 2, 3, 5, 6, 7}
	got, err := Simplify(ones, dc, bits(3), false)
	require.NoError(t, err)

	onAndDC := mapset.NewThreadUnsafeSet[string]()
	for _, v := range append(append([]int{}, ones...), dc...) {
		onAndDC.Add(intToBits(3, v))
	}
	onSet := mapset.NewThreadUnsafeSet[string](intToBits(3, 1), intToBits(3, 4))

	covered := mapset.NewThreadUnsafeSet[string]()
	for _, implicant := range got {
		cov := permute.Expand(implicant, nil)
		require.True(t, cov.IsSubset(onAndDC), "implicant %q covers something outside ON ∪ DC", implicant)
		covered = covered.Union(cov)
	}
	require.True(t, onSet.IsSubset(covered), "ON-set not fully covered by %v", got)
}

func TestSimplifyLOSInconsistentWidths(t *testing.T) {
	_, err := SimplifyLOS([]string{"01", "101"}, nil, nil, false)
	require.ErrorIs(t, err, ErrInconsistentWidths)
}

func TestSimplifyIsDeterministic(t *testing.T) {
	r1, err1 := SimplifyWithProfile([]int{1, 2, 3}, nil, bits(2), false)
	r2, err2 := SimplifyWithProfile([]int{1, 2, 3}, nil, bits(2), false)
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, r1, r2)
}

func TestUseXorNeverDecreasesXorProfile(t *testing.T) {
	without, err := SimplifyWithProfile([]int{1, 2, 5, 6, 9, 10, 13, 14}, nil, bits(4), false)
	require.NoError(t, err)
	with, err := SimplifyWithProfile([]int{1, 2, 5, 6, 9, 10, 13, 14}, nil, bits(4), true)
	require.NoError(t, err)
	require.GreaterOrEqual(t, with.Profile.Xor+with.Profile.Xnor, without.Profile.Xor+without.Profile.Xnor)
}

func ExampleSimplify() {
	got, _ := Simplify([]int{2, 6, 10, 14}, nil, nil, false)
	fmt.Println(got)
	// Output: [--10]
}

func ExampleSimplify_xor() {
	got, _ := Simplify([]int{1, 2, 4, 7, 8, 11, 13, 14}, nil, nil, true)
	fmt.Println(got)
	// Output: [^^^^]
}

func intToBits(nBits, v int) string {
	buf := make([]byte, nBits)
	for k := 0; k < nBits; k++ {
		shift := nBits - 1 - k
		if v&(1<<uint(shift)) != 0 {
			buf[k] = '1'
		} else {
			buf[k] = '0'
		}
	}
	return string(buf)
}
