package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/lintsync/internal/app"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [modules...]",
		Short: "Refresh the storage of the given modules",
		Long: "Refresh the storage of the given modules, or of the configured modules when none are given.\n" +
			"A module whose quality profiles are missing from the global storage is rejected and keeps its previous storage.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			global, _ := cmd.Flags().GetBool("global")
			parallel, _ := cmd.Flags().GetInt("parallel")
			if err := c.app.Update(cmd.Context(), app.UpdateOptions{
				Modules:     args,
				Global:      global,
				Parallelism: parallel,
			}); err != nil {
				return err
			}
			printDone(cmd, "storage updated")
			return nil
		},
	}
	cmd.Flags().BoolP("global", "g", false, "Refresh the global storage first")
	cmd.Flags().IntP("parallel", "p", 0, "Maximum number of concurrent module updates")
	return cmd
}

func (c *CLI) newGlobalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "global",
		Short: "Refresh the global storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.UpdateGlobal(cmd.Context()); err != nil {
				return err
			}
			printDone(cmd, "global storage updated")
			return nil
		},
	}
}

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove all local storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Clean(cmd.Context())
		},
	}
}
