// Package permute implements the inverse of minimization: given a
// symbolic implicant template, it enumerates every concrete minterm
// the template covers.
//
// The walk is a small two-directional state machine over bit
// positions rather than a recursive enumeration, so that the emission
// order matches exactly what the greedy passes downstream (essential
// selection, redundancy elimination) depend on for determinism.
package permute

import (
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"
)

const sentinel = '#'

// Expand enumerates the concrete minterm bit-strings covered by
// value, skipping any whose binary interpretation is in exclude.
// exclude may be nil. Positions outside the {0,1,-,^,~} alphabet are
// written as the '#' sentinel and the resulting bit-string is still
// emitted — callers that cannot tolerate that should use ExpandStrict.
func Expand(value string, exclude mapset.Set[string]) mapset.Set[string] {
	nBits := len(value)
	nXor := 0
	for i := 0; i < nBits; i++ {
		if value[i] == '^' || value[i] == '~' {
			nXor++
		}
	}

	excludeInt := mapset.NewThreadUnsafeSet[int64]()
	if exclude != nil {
		for e := range exclude.Iter() {
			if v, err := strconv.ParseInt(e, 2, 64); err == nil {
				excludeInt.Add(v)
			}
		}
	}

	res := make([]byte, nBits)
	result := mapset.NewThreadUnsafeSet[string]()
	if nBits == 0 {
		return result
	}

	i := 0
	direction := 1
	xorValue := 0
	seenXors := 0

	for i >= 0 {
		switch value[i] {
		case '0', '1':
			res[i] = value[i]
		case '-':
			if direction == 1 {
				res[i] = '0'
			} else if res[i] == '0' {
				res[i] = '1'
				direction = 1
			}
		case '^':
			direction, seenXors, xorValue = parityStep(res, i, direction, seenXors, nXor, xorValue, 0)
		case '~':
			direction, seenXors, xorValue = parityStep(res, i, direction, seenXors, nXor, xorValue, 1)
		default:
			res[i] = sentinel
		}

		i += direction
		if i == nBits {
			direction = -1
			i = nBits - 1
			bitstring := string(res)
			if v, err := strconv.ParseInt(bitstring, 2, 64); err != nil || !excludeInt.Contains(v) {
				result.Add(bitstring)
			}
		}
	}
	return result
}

// parityStep advances a single '^' or '~' position. completeValue is
// the xorValue that, once every parity slot has been visited forward,
// means this position must be '1' to satisfy the constraint (0 for
// XOR, 1 for XNOR).
func parityStep(res []byte, i, direction, seenXors, nXor, xorValue, completeValue int) (newDirection, newSeenXors, newXorValue int) {
	seenXors += direction
	if direction == 1 {
		if seenXors == nXor && xorValue == completeValue {
			res[i] = '1'
		} else {
			res[i] = '0'
		}
	} else if res[i] == '0' && seenXors < nXor-1 {
		res[i] = '1'
		direction = 1
		seenXors++
	}
	if res[i] == '1' {
		xorValue ^= 1
	}
	return direction, seenXors, xorValue
}

// ExpandStrict behaves like Expand but reports an error instead of
// emitting bit-strings containing the '#' sentinel, for callers that
// cannot tolerate a malformed template (spec's documented open
// question, resolved defensively here).
func ExpandStrict(value string, exclude mapset.Set[string]) (mapset.Set[string], error) {
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '0', '1', '-', '^', '~':
		default:
			return nil, &InvalidCharError{Value: value, Index: i}
		}
	}
	return Expand(value, exclude), nil
}

// InvalidCharError reports a non-alphabet byte found at Index in Value.
type InvalidCharError struct {
	Value string
	Index int
}

func (e *InvalidCharError) Error() string {
	return "permute: invalid character " + e.Value[e.Index:e.Index+1] + " in template " + e.Value
}
