// Package lcgcrack models linear congruential generators and recovers their
// parameters from observed outputs.
//
// A linear congruential generator (LCG) produces the sequence
//
//	state' = (a*state + c) mod m
//
// which is trivially predictable once (a, c, m) are known. This package
// implements both directions: stepping a generator with known parameters
// forward and backward, and deriving (a, c, m) from nothing but a run of
// consecutive raw outputs — the classical break described in
// https://tailcall.net/blog/cracking-randomness-lcgs/.
//
// # Quick Start
//
//	import "github.com/prngaudit/lcg-crack/pkg/lcgcrack"
//
//	// Crack a generator from observed outputs
//	gen, err := lcgcrack.Crack(observed)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Predict the next value the victim generator will produce
//	fmt.Println(gen.Next())
//
// Or work with observation files through the client:
//
//	client := lcgcrack.NewClient().WithParser(&lcgcrack.PlainParser{})
//
//	next, _, err := client.Forecast("outputs.txt", 5)
//
// # Limitations
//
// The hidden-modulus recovery finds m as a gcd of modulus witnesses built
// from the observations. With few samples that gcd can stop at a proper
// multiple of the true modulus; this is inherent to the technique, not a
// defect. Replay verification turns any witness set that mispredicts the
// observed window into an explicit error, and supplying more samples makes
// convergence overwhelmingly likely. Observations must be exact internal
// states at consecutive steps: truncated or otherwise derived outputs are
// out of scope.
package lcgcrack
