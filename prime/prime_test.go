package prime

import (
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/require"
)

func TestGetPrimeImplicantsAdjacencyOnly(t *testing.T) {
	terms := mapset.NewThreadUnsafeSet[string]("01", "10", "11")
	got := GetPrimeImplicants(2, false, terms)
	require.True(t, got.Implicants.Equal(mapset.NewThreadUnsafeSet[string]("-1", "1-")))
	require.Greater(t, got.ProfileCmp, 0)
	require.Equal(t, 0, got.ProfileXor)
	require.Equal(t, 0, got.ProfileXnor)
}

func TestGetPrimeImplicantsCollapsesToAllDontCare(t *testing.T) {
	terms := mapset.NewThreadUnsafeSet[string]("00", "01", "10", "11")
	got := GetPrimeImplicants(2, false, terms)
	require.True(t, got.Implicants.Equal(mapset.NewThreadUnsafeSet[string]("--")))
}

func TestGetPrimeImplicantsNeverMixesXorAndXnorMarkers(t *testing.T) {
	terms := mapset.NewThreadUnsafeSet[string]("0001", "0010", "0100", "1000", "0111", "1011", "1101", "1110")
	got := GetPrimeImplicants(4, true, terms)
	for t2 := range got.Implicants.Iter() {
		hasXor, hasXnor := false, false
		for i := 0; i < len(t2); i++ {
			if t2[i] == '^' {
				hasXor = true
			}
			if t2[i] == '~' {
				hasXnor = true
			}
		}
		require.False(t, hasXor && hasXnor, "implicant %q mixes ^ and ~", t2)
	}
}

func TestGetPrimeImplicantsFourInputXorSeeds(t *testing.T) {
	terms := mapset.NewThreadUnsafeSet[string]("0001", "0010", "0100", "1000", "0111", "1011", "1101", "1110")
	got := GetPrimeImplicants(4, true, terms)
	require.True(t, got.Implicants.Contains("^^^^"))
	require.Greater(t, got.ProfileXor+got.ProfileXnor, 0)
}
