package commands

import "github.com/spf13/cobra"

func (c *CLI) newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets <project-file>",
		Short: "List the named targets of a project without building",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := c.app.Targets(cmd.Context(), args[0])
			return err
		},
	}
}
