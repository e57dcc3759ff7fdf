package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/prngaudit/lcg-crack/pkg/lcgcrack"
)

var (
	crackInput     string
	crackFormat    string
	crackModulus   string
	crackPredict   int
	crackBacktrack int
)

// crackCmd represents the crack command
var crackCmd = &cobra.Command{
	Use:   "crack",
	Short: "Recover LCG parameters from observed outputs",
	Long: `Recover (a, c, m) from at least 4 consecutive raw outputs and predict
values outside the observed window. For example:
  lcgcrack crack --input outputs.txt --format text --predict 5
  lcgcrack crack --input outputs.csv --format csv --modulus 2147483647 --backtrack 2`,
	RunE: runCrack,
}

func init() {
	rootCmd.AddCommand(crackCmd)

	flags := crackCmd.Flags()
	flags.StringVarP(&crackInput, "input", "i", "", "observation file (json, csv or text)")
	flags.StringVarP(&crackFormat, "format", "f", "json", "input format (json, csv or text)")
	flags.StringVar(&crackModulus, "modulus", "", "known modulus, lowers the sample minimum to 3")
	flags.IntVarP(&crackPredict, "predict", "p", 0, "number of future values to predict")
	flags.IntVar(&crackBacktrack, "backtrack", 0, "number of values before the window to recover")
	crackCmd.MarkFlagRequired("input")
	viper.BindPFlag("modulus", flags.Lookup("modulus"))
}

func runCrack(cmd *cobra.Command, args []string) error {
	parser, err := parserForFormat(crackFormat)
	if err != nil {
		return err
	}

	client := lcgcrack.NewClient().WithParser(parser)
	if s := viper.GetString("modulus"); s != "" {
		m, err := parseBigFlag(s)
		if err != nil {
			return fmt.Errorf("invalid modulus: %w", err)
		}
		client = client.WithModulus(m)
	}

	gen, err := client.CrackFile(crackInput)
	if err != nil {
		return err
	}

	fmt.Println("[+] Recovered generator parameters:")
	fmt.Printf("    a = %s\n", gen.A)
	fmt.Printf("    c = %s\n", gen.C)
	fmt.Printf("    m = %s\n", gen.M)

	if crackPredict > 0 {
		fmt.Printf("\n[+] Next %d values:\n", crackPredict)
		for i := 0; i < crackPredict; i++ {
			fmt.Printf("    %s\n", gen.Next())
		}
	}

	if crackBacktrack > 0 {
		back, _, err := client.Backcast(crackInput, crackBacktrack)
		if err != nil {
			return err
		}
		fmt.Printf("\n[+] %d values before the observed window (newest first):\n", crackBacktrack)
		for _, v := range back {
			fmt.Printf("    %s\n", v)
		}
	}

	return nil
}
