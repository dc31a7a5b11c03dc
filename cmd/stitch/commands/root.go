// Package commands implements the CLI commands for stitch.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/stitch/internal/app"
	"go.trai.ch/stitch/internal/build"
)

// CLI represents the command line interface for stitch.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	logger  jsonSwitcher
}

// Application represents the application logic interface.
type Application interface {
	Render(ctx context.Context, opts app.RenderOptions, out io.Writer) error
	Show(ctx context.Context, sel app.Selection, out io.Writer) error
	Check(ctx context.Context, opts app.CheckOptions) error
	Tasks(ctx context.Context, sel app.Selection, out io.Writer) error
	List(ctx context.Context, configPath string, out io.Writer) error
}

// jsonSwitcher is implemented by loggers that can switch to JSON output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "stitch",
		Short:         "Declarative front-end asset configuration for task runners",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "",
		"Path to the declaration file (default: stitch.yaml, stitch.yml or stitch.toml found from the working directory upwards)")
	rootCmd.PersistentFlags().Bool("json", false, "Write log output as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON && c.logger != nil {
			c.logger.SetJSON(true)
		}
	}

	rootCmd.AddCommand(c.newRenderCmd())
	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newTasksCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// SetLogger registers the logger the --json flag applies to.
// Loggers without JSON support are ignored.
func (c *CLI) SetLogger(l any) {
	if s, ok := l.(jsonSwitcher); ok {
		c.logger = s
	}
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// selection reads the flags shared by the commands that act on one configuration.
func selection(cmd *cobra.Command) app.Selection {
	configPath, _ := cmd.Flags().GetString("config")
	use, _ := cmd.Flags().GetString("use")
	return app.Selection{ConfigPath: configPath, Use: use}
}

func addUseFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("use", "u", "", "Configuration to use (defaults to the declared default)")
}
