package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [targets...]",
		Short: "Run the named tasks from the taskfile",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			taskfile, err := cmd.Flags().GetString("taskfile")
			if err != nil {
				return err
			}
			return c.components.App.Run(cmd.Context(), taskfile, args)
		},
	}
}
