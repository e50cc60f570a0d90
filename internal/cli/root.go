package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/snippets/internal/config"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

// CLI runs one snippets invocation.
type CLI struct {
	newApp AppFactory
	app    *App
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// New returns a CLI that builds its App with newApp and talks over the given streams.
func New(newApp AppFactory, in io.Reader, out, errOut io.Writer) *CLI {
	return &CLI{newApp: newApp, in: in, out: out, errOut: errOut}
}

// NewRootCommand creates the root command with all subcommands attached.
func (c *CLI) NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snippets",
		Short: "Store and retrieve snippets of text",
		Long: `snippets keeps short named text snippets in a PostgreSQL table.

The snippets table must already exist. Hidden snippets can still be fetched
with get but are left out of catalog and search.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.RegisterFlags(cmd.PersistentFlags())
	cmd.SetIn(c.in)
	cmd.SetOut(c.out)
	cmd.SetErr(c.errOut)

	cmd.AddCommand(c.newPutCommand())
	cmd.AddCommand(c.newGetCommand())
	cmd.AddCommand(c.newCatalogCommand())
	cmd.AddCommand(c.newSearchCommand())

	return cmd
}

// Execute runs the command line in args and returns the process exit code.
func (c *CLI) Execute(ctx context.Context, args []string) int {
	cmd := c.NewRootCommand()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)

	if c.app != nil {
		if cerr := c.app.Close(); cerr != nil {
			fmt.Fprintf(c.errOut, "Warning: %s\n", cerr)
		}
		c.app = nil
	}

	if err != nil {
		fmt.Fprintf(c.errOut, "Error: %s\n", err)
	}
	return GetExitCode(err)
}

// withApp resolves configuration and builds the App before running fn.
func (c *CLI) withApp(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return WrapExitError(ExitUsage, "configuration", err)
		}

		app, err := c.newApp(cmd.Context(), cfg, cmd.Name())
		if err != nil {
			return WrapExitError(ExitFailure, "startup", err)
		}
		c.app = app

		return fn(cmd, args)
	}
}

func (c *CLI) formatter() *Formatter {
	return &Formatter{Format: c.app.config.Format, Writer: c.out}
}
