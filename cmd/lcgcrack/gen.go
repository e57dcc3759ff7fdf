package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/prngaudit/lcg-crack/pkg/lcgcrack"
)

var (
	genSeed   string
	genMult   string
	genInc    string
	genMod    string
	genCount  int
	genFormat string
	genOutput string
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate an LCG output sequence",
	Long: `Generate raw outputs from known parameters, e.g. to build test data:
  lcgcrack gen --seed 12345 --mult 1103515245 --inc 12345 --mod 2147483648 --count 12 --format csv`,
	RunE: runGen,
}

func init() {
	rootCmd.AddCommand(genCmd)

	flags := genCmd.Flags()
	flags.StringVar(&genSeed, "seed", "1", "initial state")
	flags.StringVar(&genMult, "mult", "", "multiplier a")
	flags.StringVar(&genInc, "inc", "0", "increment c")
	flags.StringVar(&genMod, "mod", "", "modulus m")
	flags.IntVarP(&genCount, "count", "n", 10, "number of values to generate")
	flags.StringVarP(&genFormat, "format", "f", "text", "output format (json, csv or text)")
	flags.StringVarP(&genOutput, "output", "o", "", "output file (default stdout)")
	genCmd.MarkFlagRequired("mult")
	genCmd.MarkFlagRequired("mod")
}

func runGen(cmd *cobra.Command, args []string) error {
	seed, err := parseBigFlag(genSeed)
	if err != nil {
		return fmt.Errorf("invalid seed: %w", err)
	}
	mult, err := parseBigFlag(genMult)
	if err != nil {
		return fmt.Errorf("invalid mult: %w", err)
	}
	inc, err := parseBigFlag(genInc)
	if err != nil {
		return fmt.Errorf("invalid inc: %w", err)
	}
	mod, err := parseBigFlag(genMod)
	if err != nil {
		return fmt.Errorf("invalid mod: %w", err)
	}

	gen, err := lcgcrack.New(seed, mult, inc, mod)
	if err != nil {
		return err
	}

	values := make([]*big.Int, genCount)
	for i := range values {
		values[i] = gen.Next()
	}

	var out io.Writer = os.Stdout
	if genOutput != "" {
		file, err := os.Create(genOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	return writeValues(out, values, genFormat)
}

func writeValues(out io.Writer, values []*big.Int, format string) error {
	switch format {
	case "json":
		// Array of {"value": ...} objects, matching the default JSONParser.
		items := make([]map[string]string, len(values))
		for i, v := range values {
			items[i] = map[string]string{"value": v.String()}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(items)

	case "csv":
		w := csv.NewWriter(out)
		if err := w.Write([]string{"value"}); err != nil {
			return err
		}
		for _, v := range values {
			if err := w.Write([]string{v.String()}); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()

	case "text":
		for _, v := range values {
			if _, err := fmt.Fprintln(out, v.String()); err != nil {
				return err
			}
		}
		return nil
	}

	return fmt.Errorf("unknown format %q (want json, csv or text)", format)
}
