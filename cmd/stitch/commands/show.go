package commands

import "github.com/spf13/cobra"

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the groups, output files and paths of a configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Show(cmd.Context(), selection(cmd), cmd.OutOrStdout())
		},
	}
	addUseFlag(cmd)
	return cmd
}
