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
	presetsServer string
	presetFlags   datasetFlags
	presetPage    int

	presetsCmd = &cobra.Command{
		Use:   "presets",
		Short: "Manage saved dataset presets on a server",
	}

	presetsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := client.New(presetsServer).ListPresets(cmd.Context())
			if err != nil {
				return err
			}
			if len(list) == 0 {
				fmt.Println("No presets found")
				return nil
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tREGION\tERRORS\tSEED\tCREATED")
			for _, p := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%s\t%s\n",
					p.ID, p.Name, p.Region, p.Errors, p.Seed, p.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return tw.Flush()
		},
	}

	presetsCreateCmd = &cobra.Command{
		Use:   "create NAME",
		Short: "Save a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := client.New(presetsServer).CreatePreset(cmd.Context(), protocol.PresetCreateRequest{
				Name:   args[0],
				Region: presetFlags.region,
				Errors: protocol.ErrorRate(presetFlags.errors),
				Seed:   protocol.Seed(presetFlags.seed),
			})
			if err != nil {
				return err
			}
			fmt.Printf("Preset created: %s\n", p.ID)
			return nil
		},
	}

	presetsDeleteCmd = &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.New(presetsServer).DeletePreset(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Preset deleted: %s\n", args[0])
			return nil
		},
	}

	presetsPageCmd = &cobra.Command{
		Use:   "page ID",
		Short: "Print one page of a preset's dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(presetsServer)
			if _, err := c.GetPreset(cmd.Context(), args[0]); err != nil {
				return err
			}
			page, err := c.PresetPage(cmd.Context(), args[0], presetPage)
			if err != nil {
				return err
			}
			return printTable(page, (presetPage-1)*recordgen.PageSize)
		},
	}
)

func init() {
	presetsCmd.PersistentFlags().StringVar(&presetsServer, "server", "http://localhost:3000", "Server URL")

	presetFlags.registerDataset(presetsCreateCmd)
	presetsPageCmd.Flags().IntVarP(&presetPage, "page", "p", 1, "Page number (1-based)")

	presetsCmd.AddCommand(presetsListCmd, presetsCreateCmd, presetsDeleteCmd, presetsPageCmd)
}
