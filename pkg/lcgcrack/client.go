package lcgcrack

import (
	"fmt"
	"math/big"
)

// Client provides a high-level API for cracking observation files and
// predicting values outside the observed window.
type Client struct {
	parser  SequenceParser
	modulus *big.Int
}

// NewClient creates a client with default settings (JSON input).
func NewClient() *Client {
	return &Client{parser: &JSONParser{}}
}

// WithParser sets a custom observation parser.
func (c *Client) WithParser(parser SequenceParser) *Client {
	c.parser = parser
	return c
}

// WithModulus supplies the modulus out of band. This lowers the minimum
// number of observations from four to three and removes the probabilistic
// modulus-convergence caveat.
func (c *Client) WithModulus(m *big.Int) *Client {
	c.modulus = new(big.Int).Set(m)
	return c
}

// CrackFile parses observations from source and recovers the generator,
// positioned so that Next returns the first value after the observed window.
func (c *Client) CrackFile(source string) (*LCG, error) {
	values, err := c.parser.ParseValues(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse observations: %w", err)
	}
	return c.crack(values)
}

// Forecast cracks source and returns the n values that follow the observed
// window, along with the generator, left positioned after the forecast.
func (c *Client) Forecast(source string, n int) ([]*big.Int, *LCG, error) {
	values, err := c.parser.ParseValues(source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse observations: %w", err)
	}
	gen, err := c.crack(values)
	if err != nil {
		return nil, nil, err
	}
	out := make([]*big.Int, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, gen.Next())
	}
	return out, gen, nil
}

// Backcast cracks source and returns the n values that preceded the observed
// window, newest first (the value immediately before the first observation
// comes first). It requires an invertible multiplier. The returned generator
// is positioned after the observed window, as with CrackFile.
func (c *Client) Backcast(source string, n int) ([]*big.Int, *LCG, error) {
	values, err := c.parser.ParseValues(source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse observations: %w", err)
	}
	gen, err := c.crack(values)
	if err != nil {
		return nil, nil, err
	}

	back := gen.Clone()
	back.State.Mod(values[0], back.M)
	out := make([]*big.Int, 0, n)
	for i := 0; i < n; i++ {
		v, err := back.Prev()
		if err != nil {
			return nil, nil, err
		}
		out = append(out, v)
	}
	return out, gen, nil
}

func (c *Client) crack(values []*big.Int) (*LCG, error) {
	if c.modulus != nil {
		return CrackWithModulus(values, c.modulus)
	}
	return Crack(values)
}
