package lcgcrack

import (
	"errors"
	"math/big"
	"testing"
)

func TestNext_KnownSequence(t *testing.T) {
	gen, err := New(big.NewInt(32760), big.NewInt(5039), big.NewInt(76581), big.NewInt(479001599))
	if err != nil {
		t.Fatalf("Failed to construct generator: %v", err)
	}

	want := bigSlice(
		32760, 165154221, 186418737, 41956685, 180107137, 330911418,
		58145764, 326604388, 389095148, 96982646, 113998795,
	)
	for i, w := range want {
		got := gen.Next()
		if got.Cmp(w) != 0 {
			t.Errorf("value %d: got %s, want %s", i, got, w)
		}
	}
}

func TestNext_Deterministic(t *testing.T) {
	g1, err := New(big.NewInt(42), big.NewInt(48271), big.NewInt(0), big.NewInt(2147483647))
	if err != nil {
		t.Fatalf("Failed to construct generator: %v", err)
	}
	g2, err := New(big.NewInt(42), big.NewInt(48271), big.NewInt(0), big.NewInt(2147483647))
	if err != nil {
		t.Fatalf("Failed to construct generator: %v", err)
	}

	for i := 0; i < 50; i++ {
		v1, v2 := g1.Next(), g2.Next()
		if v1.Cmp(v2) != 0 {
			t.Fatalf("step %d: generators diverged, %s vs %s", i, v1, v2)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	gen, err := New(big.NewInt(32760), big.NewInt(5039), big.NewInt(76581), big.NewInt(479001599))
	if err != nil {
		t.Fatalf("Failed to construct generator: %v", err)
	}
	if !gen.Invertible() {
		t.Fatal("multiplier should be invertible for this test")
	}

	start := new(big.Int).Set(gen.State)

	const n = 10
	forward := make([]*big.Int, 0, n)
	for i := 0; i < n; i++ {
		forward = append(forward, gen.Next())
	}

	for i := n - 1; i >= 0; i-- {
		got, err := gen.Prev()
		if err != nil {
			t.Fatalf("Prev failed at step %d: %v", i, err)
		}
		if got.Cmp(forward[i]) != 0 {
			t.Errorf("backward step: got %s, want %s", got, forward[i])
		}
	}

	if gen.State.Cmp(start) != 0 {
		t.Errorf("state after round-trip: got %s, want %s", gen.State, start)
	}
}

func TestPrev_NotInvertible(t *testing.T) {
	gen, err := New(big.NewInt(4), big.NewInt(6), big.NewInt(3), big.NewInt(9))
	if err != nil {
		t.Fatalf("Failed to construct generator: %v", err)
	}

	if gen.Invertible() {
		t.Error("gcd(6, 9) != 1, generator should not be invertible")
	}

	v, err := gen.Prev()
	if err == nil {
		t.Fatalf("Expected error from Prev, got value %s", v)
	}
	if !errors.Is(err, ErrNotInvertible) {
		t.Errorf("Expected ErrNotInvertible, got %v", err)
	}
	if gen.State.Cmp(big.NewInt(4)) != 0 {
		t.Errorf("state mutated on failed Prev: got %s, want 4", gen.State)
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(1)); err == nil {
		t.Error("Expected error for modulus 1")
	}
	if _, err := New(big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(0)); err == nil {
		t.Error("Expected error for modulus 0")
	}
	if _, err := New(big.NewInt(1), nil, big.NewInt(3), big.NewInt(7)); err == nil {
		t.Error("Expected error for nil multiplier")
	}
}

func TestNew_CopiesParameters(t *testing.T) {
	seed := big.NewInt(42)
	gen, err := New(seed, big.NewInt(48271), big.NewInt(0), big.NewInt(2147483647))
	if err != nil {
		t.Fatalf("Failed to construct generator: %v", err)
	}

	gen.Next()
	if seed.Cmp(big.NewInt(42)) != 0 {
		t.Errorf("caller's seed mutated by stepping: got %s", seed)
	}
}

func TestClone(t *testing.T) {
	gen, err := New(big.NewInt(42), big.NewInt(48271), big.NewInt(0), big.NewInt(2147483647))
	if err != nil {
		t.Fatalf("Failed to construct generator: %v", err)
	}

	clone := gen.Clone()
	if !gen.Equal(clone) {
		t.Error("fresh clone should compare equal")
	}

	gen.Next()
	if gen.Equal(clone) {
		t.Error("stepping the original must not affect the clone")
	}
	if clone.State.Cmp(big.NewInt(42)) != 0 {
		t.Errorf("clone state changed: got %s, want 42", clone.State)
	}
}
