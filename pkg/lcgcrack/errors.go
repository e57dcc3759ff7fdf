package lcgcrack

import "errors"

// Recoverable failure classes. Functions in this package wrap these with
// context; match them with errors.Is.
var (
	// ErrNotInvertible is reported when a modular inverse is required but
	// gcd of the operand and the modulus is not 1. It arises from Prev on a
	// generator whose multiplier is not coprime to its modulus, and during
	// recovery when the first observation difference is not invertible
	// modulo the candidate modulus.
	ErrNotInvertible = errors.New("no modular inverse exists")

	// ErrInsufficientSamples is reported before any arithmetic when fewer
	// observations are supplied than the recovery algorithm needs.
	ErrInsufficientSamples = errors.New("not enough observed values")

	// ErrDegenerateModulus is reported when the modulus candidate collapses
	// to 1 or below, e.g. for a pure counter (a=1) whose modulus witnesses
	// are all zero, or for observations with no linear structure at all.
	ErrDegenerateModulus = errors.New("degenerate modulus candidate")

	// ErrInconsistentSequence is reported when replaying the recovered
	// parameters fails to reproduce the observed values.
	ErrInconsistentSequence = errors.New("observations are not consistent with a fixed-parameter LCG")
)
