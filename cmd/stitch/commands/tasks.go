package commands

import "github.com/spf13/cobra"

func (c *CLI) newTasksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Print the task aliases of a configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Tasks(cmd.Context(), selection(cmd), cmd.OutOrStdout())
		},
	}
	addUseFlag(cmd)
	return cmd
}
