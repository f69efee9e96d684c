package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RobBrazier/bookalbum/config"
	"github.com/RobBrazier/bookalbum/internal/server"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bookalbum",
		Short: "Book album web page",
		Long: `bookalbum renders an album of book cards from a books API.

Configuration is read from the environment (and a .env file when present),
flags override it.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupCommand,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newBooksCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func setupCommand(cmd *cobra.Command, _ []string) error {
	if err := config.LoadConfig(); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		port, err := cmd.Flags().GetInt("port")
		if err != nil {
			return err
		}
		config.SetPort(port)
	}
	if f := cmd.Flags().Lookup("url"); f != nil && f.Changed {
		config.SetBooksURL(f.Value.String())
	}
	server.SetupLogger(cmd.ErrOrStderr())
	return nil
}
