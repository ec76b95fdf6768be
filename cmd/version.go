package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X github.com/danielolaszy/bzquery/cmd.Version=...".
var Version = "1.0.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the bzquery version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}
