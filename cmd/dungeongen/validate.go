package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"dungeoncrawl/pkg/game/generator"
)

var (
	valSize  string
	valSeeds int
	valStart int64
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Generate many maps and check each one",
	RunE: func(cmd *cobra.Command, args []string) error {
		var sizes []generator.MapSize
		if valSize == "all" {
			sizes = generator.AllMapSizes()
		} else {
			size, err := generator.ParseMapSize(valSize)
			if err != nil {
				return err
			}
			sizes = []generator.MapSize{size}
		}

		failures := 0
		for _, size := range sizes {
			for seed := valStart; seed < valStart+int64(valSeeds); seed++ {
				info := generator.DefaultGenerator.Generate(size, rand.New(rand.NewSource(seed)))
				if err := generator.Validate(info); err != nil {
					failures++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s seed %d: %v\n", size, seed, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d maps checked\n", size, valSeeds)
		}

		if failures > 0 {
			return fmt.Errorf("%d invalid maps", failures)
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&valSize, "size", "all", "map size to check, or all")
	validateCmd.Flags().IntVar(&valSeeds, "seeds", 100, "number of seeds per size")
	validateCmd.Flags().Int64Var(&valStart, "start", 1, "first seed")
}
