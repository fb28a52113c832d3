package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	seedServer string

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Print a random seed in [0, 10000)",
		RunE: func(cmd *cobra.Command, args []string) error {
			src := (&datasetFlags{server: seedServer}).source()
			seed, err := src.RandomSeed(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(seed)
			return nil
		},
	}
)

func init() {
	seedCmd.Flags().StringVar(&seedServer, "server", "", "Server URL; empty draws locally")
}
