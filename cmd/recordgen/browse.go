package main

import (
	"github.com/spf13/cobra"

	"pkg.jsn.cam/recordgen/internal/tui"
	"pkg.jsn.cam/recordgen/pkg/recordgen"
)

var (
	browseFlags datasetFlags
	browseOut   string

	browseCmd = &cobra.Command{
		Use:   "browse",
		Short: "Browse a dataset in the terminal with infinite scroll",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(cmd.Context(), browseFlags.source(), tui.Options{
				Region:     recordgen.ParseRegion(browseFlags.region),
				ErrorRate:  browseFlags.errors,
				Seed:       browseFlags.seed,
				ExportPath: browseOut,
			})
		},
	}
)

func init() {
	browseFlags.register(browseCmd)
	browseCmd.Flags().StringVarP(&browseOut, "out", "o", "generated_data.csv", "CSV file written by the export key")
}
