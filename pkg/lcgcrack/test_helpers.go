package lcgcrack

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
)

const fixturesDir = "../../fixtures"

// expectedParams mirrors the *_expected.json fixture files.
type expectedParams struct {
	A    string   `json:"a"`
	C    string   `json:"c"`
	M    string   `json:"m"`
	Next []string `json:"next"`
	Prev []string `json:"prev"`
}

// loadExpectedParams reads an expected-parameters fixture.
func loadExpectedParams(filename string) (*expectedParams, error) {
	file, err := os.Open(filepath.Join(fixturesDir, filename))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var p expectedParams
	if err := json.NewDecoder(file).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// loadObservations reads an observation fixture with the parser matching its
// extension.
func loadObservations(filename string) ([]*big.Int, error) {
	path := filepath.Join(fixturesDir, filename)
	switch filepath.Ext(filename) {
	case ".json":
		return (&JSONParser{}).ParseValues(path)
	case ".csv":
		return (&CSVParser{}).ParseValues(path)
	default:
		return (&PlainParser{}).ParseValues(path)
	}
}

// mustBig parses a decimal integer literal, for test expectations too large
// for int64.
func mustBig(s string) *big.Int {
	z, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(fmt.Sprintf("bad integer literal %q", s))
	}
	return z
}

// bigSlice builds a []*big.Int from int64 literals.
func bigSlice(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}
	return out
}
