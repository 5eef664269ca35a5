// Package cli dispatches the single command-line argument to a note handler.
// The store is only opened once a known command has been recognized.
package cli

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"todonotes/config"
	"todonotes/internal/handlers/note"
	"todonotes/shared/constant"
	"todonotes/shared/failure"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var commands = []string{constant.CommandAdd, constant.CommandMark, constant.CommandDel}

// HandlerFactory connects to the store and returns a ready handler together
// with a cleanup that releases the connection.
type HandlerFactory func(ctx context.Context) (note.Handler, func(), error)

type operation func(handler *note.Handler, ctx context.Context, in io.Reader, out io.Writer) error

type CLI struct {
	config     *config.Config
	newHandler HandlerFactory
}

func New(config *config.Config, newHandler HandlerFactory) *CLI {
	return &CLI{
		config:     config,
		newHandler: newHandler,
	}
}

// Execute runs one invocation and returns the process exit status. Errors are
// reported on errOut.
func (c *CLI) Execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	err := c.run(ctx, args, in, out, errOut)
	if err == nil {
		return failure.ExitOK
	}

	report(errOut, err)

	return failure.GetCode(err)
}

func (c *CLI) run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	if err := validateArgs(args); err != nil {
		return err
	}

	root := c.rootCommand()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	log.Debug().Str("command", args[0]).Msg("dispatching command")

	if err := root.ExecuteContext(ctx); err != nil {
		return err //nolint:wrapcheck
	}

	return nil
}

func (c *CLI) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:                c.name(),
		Short:              "Manage todo notes stored in a document database",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return usageError("missing command")
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true
	root.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return usageError("help is not a command")
		},
	})

	root.AddCommand(
		c.subcommand(constant.CommandAdd, "Add a note", (*note.Handler).Add),
		c.subcommand(constant.CommandMark, "List notes and mark one as completed", (*note.Handler).Mark),
		c.subcommand(constant.CommandDel, "List notes and delete one", (*note.Handler).Delete),
	)

	return root
}

func (c *CLI) subcommand(name, short string, run operation) *cobra.Command {
	return &cobra.Command{
		Use:                name,
		Short:              short,
		Args:               cobra.NoArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			handler, cleanup, err := c.newHandler(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return run(&handler, ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (c *CLI) name() string {
	if c.config == nil || c.config.App.Name == "" {
		return "notes"
	}

	return c.config.App.Name
}

func validateArgs(args []string) error {
	switch {
	case len(args) == 0:
		return usageError("missing command")
	case len(args) > 1:
		return usageError(fmt.Sprintf("expected exactly one argument, got %d", len(args)))
	case !slices.Contains(commands, args[0]):
		return usageError(fmt.Sprintf("unknown command %q", args[0]))
	default:
		return nil
	}
}

func usageError(reason string) error {
	return failure.Usage(fmt.Sprintf("%s\n%s (one of: %s)", reason, constant.MessageUsage, strings.Join(commands, ", ")))
}

func report(errOut io.Writer, err error) {
	color.New(color.FgRed, color.Bold).Fprint(errOut, "notes: error:")
	fmt.Fprintf(errOut, " %s\n", err.Error())
}
