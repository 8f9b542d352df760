package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"dungeoncrawl/pkg/game/devtools"
	"dungeoncrawl/pkg/game/generator"
)

var (
	genSize     string
	genSeed     int64
	genColor    bool
	genValidate bool

	genLoopChance  float64
	genVaultChance float64
	genKeyChance   float64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one map and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		size, err := generator.ParseMapSize(genSize)
		if err != nil {
			return err
		}

		cfg := generator.DefaultConfig()
		cfg.LoopChance = genLoopChance
		cfg.VaultChance = genVaultChance
		cfg.KeyChance = genKeyChance
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid tuning: %w", err)
		}

		info := generator.New(cfg).Generate(size, rand.New(rand.NewSource(genSeed)))

		out := devtools.FormatInfo(info)
		if genColor {
			out = devtools.Colorize(out)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		fmt.Fprintf(cmd.OutOrStdout(), "size: %s seed: %d enemies: %d\n", size, genSeed, len(info.Enemies))

		if genValidate {
			if err := generator.Validate(info); err != nil {
				return fmt.Errorf("seed %d: %w", genSeed, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&genSize, "size", "xs", "map size (xs, s, m, l, xl, xxl)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 1, "random seed")
	generateCmd.Flags().BoolVar(&genColor, "color", false, "colour the output")
	generateCmd.Flags().BoolVar(&genValidate, "validate", false, "check the map after generating it")

	defaults := generator.DefaultConfig()
	generateCmd.Flags().Float64Var(&genLoopChance, "loop-chance", defaults.LoopChance, "chance of an extra gate between neighbouring rooms")
	generateCmd.Flags().Float64Var(&genVaultChance, "vault-chance", defaults.VaultChance, "chance of a small dead end becoming a locked vault")
	generateCmd.Flags().Float64Var(&genKeyChance, "key-chance", defaults.KeyChance, "chance of a key in a populated room")
}
