package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/recordgen/pkg/recordgen/protocol"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the API version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("recordgen API", protocol.APIVersion)
	},
}
