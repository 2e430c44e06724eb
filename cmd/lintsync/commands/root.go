// Package commands implements the CLI commands for lintsync.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/lintsync/internal/app"
	"go.trai.ch/lintsync/internal/build"
	"go.trai.ch/lintsync/internal/core/domain"
)

// CLI represents the command line interface for lintsync.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Update(ctx context.Context, opts app.UpdateOptions) error
	UpdateGlobal(ctx context.Context) error
	Status(moduleKeys []string) (*app.StatusReport, error)
	Resolve(paths []string) ([]app.Resolution, error)
	Map(dir string) ([]app.Resolution, error)
	Issues(path string) ([]*domain.Issue, error)
	Files(ctx context.Context, projectKey string) ([]string, error)
	Clean(ctx context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           build.Product,
		Short:         "Keep a local copy of server analysis settings and issues in sync",
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(
		c.newUpdateCmd(),
		c.newGlobalCmd(),
		c.newStatusCmd(),
		c.newResolveCmd(),
		c.newMapCmd(),
		c.newIssuesCmd(),
		c.newFilesCmd(),
		c.newCleanCmd(),
		c.newVersionCmd(),
	)

	return c
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
