package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the registered task kinds",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, kind := range c.components.Registry.Kinds() {
				cmd.Println(kind.String())
			}
		},
	}
}
