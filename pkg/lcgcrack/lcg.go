package lcgcrack

import (
	"fmt"
	"math/big"
)

// LCG is a linear congruential generator with the recurrence
// state' = (A*state + C) mod M. All four parameters are arbitrary-precision
// integers; by convention 0 <= State < M, though this is not enforced.
//
// An LCG holds no resources beyond its integers and may be copied freely
// with Clone, but a single instance must not be stepped concurrently.
type LCG struct {
	State *big.Int // current internal state
	A     *big.Int // multiplier
	C     *big.Int // increment
	M     *big.Int // modulus
}

// New constructs a generator from known parameters. The modulus must be
// greater than 1; the other parameters are unconstrained. The inputs are
// copied, so the caller keeps ownership of its integers.
func New(state, a, c, m *big.Int) (*LCG, error) {
	if state == nil || a == nil || c == nil || m == nil {
		return nil, fmt.Errorf("all of state, a, c, m must be set")
	}
	if m.Cmp(one) <= 0 {
		return nil, fmt.Errorf("modulus must be greater than 1, got %s", m)
	}
	return &LCG{
		State: new(big.Int).Set(state),
		A:     new(big.Int).Set(a),
		C:     new(big.Int).Set(c),
		M:     new(big.Int).Set(m),
	}, nil
}

// Next returns the value produced at the current step — the state at the
// moment of call — and advances the generator by one step.
func (g *LCG) Next() *big.Int {
	out := new(big.Int).Set(g.State)
	g.State.Mul(g.State, g.A)
	g.State.Add(g.State, g.C)
	g.State.Mod(g.State, g.M)
	return out
}

// Prev steps the generator backward and returns the recovered previous
// state, solving (A*prev + C) mod M == State. This requires the inverse of
// A modulo M; when gcd(A, M) != 1 no unique predecessor exists and Prev
// reports ErrNotInvertible, leaving the state untouched.
//
// After n calls to Next, n calls to Prev replay the produced values in
// reverse order and restore the original state.
func (g *LCG) Prev() (*big.Int, error) {
	inv := modInverse(g.A, g.M)
	if inv == nil {
		return nil, fmt.Errorf("multiplier %s modulo %s: %w", g.A, g.M, ErrNotInvertible)
	}
	prev := new(big.Int).Sub(g.State, g.C)
	prev.Mul(prev, inv)
	prev.Mod(prev, g.M)
	g.State.Set(prev)
	return new(big.Int).Set(prev), nil
}

// Invertible reports whether the multiplier is invertible modulo M, i.e.
// whether Prev is available.
func (g *LCG) Invertible() bool {
	return modInverse(g.A, g.M) != nil
}

// Clone returns an independent copy of the generator.
func (g *LCG) Clone() *LCG {
	return &LCG{
		State: new(big.Int).Set(g.State),
		A:     new(big.Int).Set(g.A),
		C:     new(big.Int).Set(g.C),
		M:     new(big.Int).Set(g.M),
	}
}

// Equal reports whether both generators have identical parameters and
// identical current state.
func (g *LCG) Equal(other *LCG) bool {
	if other == nil {
		return false
	}
	return g.State.Cmp(other.State) == 0 &&
		g.A.Cmp(other.A) == 0 &&
		g.C.Cmp(other.C) == 0 &&
		g.M.Cmp(other.M) == 0
}

func (g *LCG) String() string {
	return fmt.Sprintf("LCG{state=%s a=%s c=%s m=%s}", g.State, g.A, g.C, g.M)
}
