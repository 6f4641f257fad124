package main

import (
	"os"

	"github.com/aretw0/burrow/internal/cli"
	"github.com/aretw0/burrow/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show a recorded game state",
	Long: `Renders the latest snapshot recorded for a room. Without --room it lists the rooms that
have a snapshot. The store is chosen with --snapshot-dir or --redis-addr.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd.Flags())
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}

		room, _ := cmd.Flags().GetString("room")
		out := cmd.OutOrStdout()
		styled := false
		if f, ok := out.(*os.File); ok {
			styled = tui.IsTerminal(f)
		}
		return cli.Inspect(cmd.Context(), cfg, room, out, styled, logger)
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().String("room", "", "Room id to render")
}
