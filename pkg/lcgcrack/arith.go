package lcgcrack

import "math/big"

var one = big.NewInt(1)

// modInverse returns a new integer holding the inverse of a modulo m, or
// nil when gcd(a, m) != 1 and no inverse exists.
func modInverse(a, m *big.Int) *big.Int {
	return new(big.Int).ModInverse(a, m)
}

// foldGCD accumulates |v| into the running gcd acc in place and returns acc.
// Folding from zero, acc ends up as the gcd of every |v| seen.
func foldGCD(acc, v *big.Int) *big.Int {
	return acc.GCD(nil, nil, acc, new(big.Int).Abs(v))
}
