package main

import (
	"fmt"
	"log"
	"math/big"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/prngaudit/lcg-crack/pkg/lcgcrack"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lcgcrack",
	Short: "Model, step and crack linear congruential generators.",
	Long: `Model, step and crack linear congruential generators.
Recover the parameters (a, c, m) of an LCG from observed raw outputs and
predict values outside the observed window, For example:
  lcgcrack crack --input outputs.txt --format text --predict 5
  lcgcrack gen --seed 12345 --mult 1103515245 --inc 12345 --mod 2147483648 --count 12`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lcgcrack.yaml)")
}

// initConfig reads in config file and LCGCRACK_* environment variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".lcgcrack" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".lcgcrack")
	}

	viper.SetEnvPrefix("lcgcrack")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// parserForFormat maps a format flag to an observation parser.
func parserForFormat(format string) (lcgcrack.SequenceParser, error) {
	switch format {
	case "json":
		return &lcgcrack.JSONParser{}, nil
	case "csv":
		return &lcgcrack.CSVParser{}, nil
	case "text":
		return &lcgcrack.PlainParser{}, nil
	}
	return nil, fmt.Errorf("unknown format %q (want json, csv or text)", format)
}

// parseBigFlag parses an integer flag value, decimal or 0x-prefixed hex.
func parseBigFlag(s string) (*big.Int, error) {
	z, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return z, nil
}
