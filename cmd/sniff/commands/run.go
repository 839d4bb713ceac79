package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/sniff/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	var opts app.RunOptions

	cmd := &cobra.Command{
		Use:   "run <project-file>",
		Short: "Build every target in isolation and list what each one builds",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			return c.app.Run(cmd.Context(), args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVar(&opts.Ignore, "ignore", nil, "Additional element tag to remove before building (repeatable)")
	flags.BoolVar(&opts.NoDefaultIgnores, "no-default-ignores", false, "Do not remove the configured or default element tags")
	flags.StringVarP(&opts.Report, "report", "r", "", "Write a JSON report to this path")
	flags.StringVar(&opts.Engine, "engine", "", "Engine command, e.g. \"dotnet msbuild\"")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log every engine message")
	flags.BoolVar(&opts.JSON, "json", false, "Emit logs as JSON lines")
	flags.StringVar(&opts.Trace, "trace", "", "Write per-target spans as JSON lines to this path")
	return cmd
}
