package main

import (
	"time"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/recordgen/internal/client"
	"pkg.jsn.cam/recordgen/internal/tui"
)

// datasetFlags are shared by commands that address one dataset.
type datasetFlags struct {
	server string
	region string
	errors float64
	seed   string
}

func (f *datasetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.server, "server", "", "Server URL; empty generates locally")
	f.registerDataset(cmd)
}

func (f *datasetFlags) registerDataset(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.region, "region", "r", "en", "Region code (en, de, pl, by)")
	cmd.Flags().Float64VarP(&f.errors, "errors", "e", 0, "Errors per record (0-1000, fractional allowed)")
	cmd.Flags().StringVarP(&f.seed, "seed", "s", "0", "Dataset seed")
}

// source returns a server-backed or in-process page source.
func (f *datasetFlags) source() tui.Source {
	if f.server != "" {
		return client.New(f.server)
	}
	return tui.NewLocalSource(time.Now().UnixNano())
}
