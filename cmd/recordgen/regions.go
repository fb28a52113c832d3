package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/recordgen/internal/client"
	"pkg.jsn.cam/recordgen/pkg/recordgen"
	"pkg.jsn.cam/recordgen/pkg/recordgen/protocol"
)

var (
	regionsServer string

	regionsCmd = &cobra.Command{
		Use:   "regions",
		Short: "List supported regions",
		RunE: func(cmd *cobra.Command, args []string) error {
			regions := localRegions()
			if regionsServer != "" {
				var err error
				regions, err = client.New(regionsServer).Regions(cmd.Context())
				if err != nil {
					return err
				}
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tLABEL")
			for _, r := range regions {
				code := r.Code
				if code == "" {
					code = "(any)"
				}
				fmt.Fprintf(tw, "%s\t%s\n", code, r.Label)
			}
			return tw.Flush()
		},
	}
)

func init() {
	regionsCmd.Flags().StringVar(&regionsServer, "server", "", "Server URL; empty lists built-in regions")
}

func localRegions() []protocol.RegionInfo {
	out := make([]protocol.RegionInfo, 0, len(recordgen.Regions))
	for _, r := range recordgen.Regions {
		out = append(out, protocol.RegionInfo{Code: r.Code(), Label: r.Label()})
	}
	return out
}
