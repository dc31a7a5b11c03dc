package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stitch/internal/app"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the task-runner document of a configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			format, _ := cmd.Flags().GetString("format")
			outDir, _ := cmd.Flags().GetString("out")
			noCache, _ := cmd.Flags().GetBool("no-cache")

			return c.app.Render(cmd.Context(), app.RenderOptions{
				Selection: selection(cmd),
				All:       all,
				Format:    format,
				OutDir:    outDir,
				NoCache:   noCache,
			}, cmd.OutOrStdout())
		},
	}
	addUseFlag(cmd)
	cmd.Flags().BoolP("all", "a", false, "Render every registered configuration")
	cmd.Flags().StringP("format", "f", "json", "Document format: json or yaml")
	cmd.Flags().StringP("out", "o", "", "Write one document per configuration into this directory")
	cmd.Flags().BoolP("no-cache", "n", false, "Rewrite documents even when unchanged")
	cmd.MarkFlagsMutuallyExclusive("use", "all")
	return cmd
}
