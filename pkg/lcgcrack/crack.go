package lcgcrack

import (
	"fmt"
	"math/big"
)

// Minimum observation counts for parameter recovery. Four blind samples
// yield one modulus witness; the known-modulus path only needs two
// differences for the multiplier plus one value to verify against.
const (
	MinSamples             = 4
	MinSamplesKnownModulus = 3
)

// Crack derives the parameters (a, c, m) of the generator that produced
// values and returns a generator positioned so that Next yields the first
// value after the observed window. The observations must be exact internal
// states at consecutive steps, oldest first, with no gaps.
//
// The modulus is recovered as the gcd of the witnesses
// z_i = t_{i+2}*t_i - t_{i+1}^2 over the adjacent differences t_i, each of
// which is an exact multiple of the true modulus. With few samples the gcd
// may stop at a proper multiple of m; replay verification rejects any
// candidate that mispredicts the observed window, so failures are always
// explicit and more samples can be supplied.
func Crack(values []*big.Int) (*LCG, error) {
	if len(values) < MinSamples {
		return nil, fmt.Errorf("need at least %d values, got %d: %w", MinSamples, len(values), ErrInsufficientSamples)
	}

	diffs := adjacentDiffs(values)

	m := new(big.Int)
	z := new(big.Int)
	sq := new(big.Int)
	for i := 0; i+2 < len(diffs); i++ {
		z.Mul(diffs[i+2], diffs[i])
		sq.Mul(diffs[i+1], diffs[i+1])
		z.Sub(z, sq)
		foldGCD(m, z)
	}
	if m.Cmp(one) <= 0 {
		return nil, fmt.Errorf("modulus candidate %s: %w", m, ErrDegenerateModulus)
	}

	return solveForModulus(values, diffs, m)
}

// CrackWithModulus recovers (a, c) when the modulus is already known out of
// band, which lowers the sample minimum to three. The returned generator is
// positioned like Crack's.
func CrackWithModulus(values []*big.Int, m *big.Int) (*LCG, error) {
	if m == nil || m.Cmp(one) <= 0 {
		return nil, fmt.Errorf("supplied modulus must be greater than 1: %w", ErrDegenerateModulus)
	}
	if len(values) < MinSamplesKnownModulus {
		return nil, fmt.Errorf("need at least %d values, got %d: %w", MinSamplesKnownModulus, len(values), ErrInsufficientSamples)
	}
	return solveForModulus(values, adjacentDiffs(values), new(big.Int).Set(m))
}

func adjacentDiffs(values []*big.Int) []*big.Int {
	diffs := make([]*big.Int, len(values)-1)
	for i := range diffs {
		diffs[i] = new(big.Int).Sub(values[i+1], values[i])
	}
	return diffs
}

// solveForModulus recovers the multiplier and increment for a fixed modulus
// candidate, verifies the whole observed window by replay, and builds the
// generator one step past the last observation.
func solveForModulus(values, diffs []*big.Int, m *big.Int) (*LCG, error) {
	inv := modInverse(diffs[0], m)
	if inv == nil {
		return nil, fmt.Errorf("first difference %s modulo %s: %w", diffs[0], m, ErrNotInvertible)
	}

	a := new(big.Int).Mul(diffs[1], inv)
	a.Mod(a, m)

	c := new(big.Int).Mul(a, values[0])
	c.Sub(values[1], c)
	c.Mod(c, m)

	// Replay from the first observation. A mismatch means the values do not
	// come from a single fixed-parameter LCG, or the modulus candidate is a
	// multiple of the true modulus that happens to mispredict.
	s := new(big.Int).Mod(values[0], m)
	for _, want := range values[1:] {
		s.Mul(s, a)
		s.Add(s, c)
		s.Mod(s, m)
		if s.Cmp(want) != 0 {
			return nil, fmt.Errorf("replay diverged at observed value %s: %w", want, ErrInconsistentSequence)
		}
	}

	// One more step so that Next returns the first unobserved value.
	s.Mul(s, a)
	s.Add(s, c)
	s.Mod(s, m)

	return &LCG{State: s, A: a, C: c, M: m}, nil
}
