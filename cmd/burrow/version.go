package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/burrow"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of burrow",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "burrow version %s\n", strings.TrimSpace(burrow.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
