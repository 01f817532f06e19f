package dli

import (
	"fmt"

	"github.com/0xa1bed0/dli/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version of dli",
		Long:  `Display the current version of dli.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", version.Get())
		},
	}

	return cmd
}
