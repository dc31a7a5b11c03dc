package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stitch/internal/app"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that every member file of a configuration exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, _ := cmd.Flags().GetString("root")
			return c.app.Check(cmd.Context(), app.CheckOptions{
				Selection: selection(cmd),
				Root:      root,
			})
		},
	}
	addUseFlag(cmd)
	cmd.Flags().StringP("root", "r", ".", "Directory relative member paths are resolved against")
	return cmd
}
