package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RobBrazier/bookalbum/cmd/web/utils"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build revision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), utils.Version)
			return err
		},
	}
}
