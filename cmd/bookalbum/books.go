package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RobBrazier/bookalbum/config"
	"github.com/RobBrazier/bookalbum/internal/bookapi"
	"github.com/RobBrazier/bookalbum/internal/page"
)

func newBooksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "Load the book list once and print it",
		Long: `books mounts the album page once, waits for its load and prints the
titles it ended up with, one per line. A failed load prints nothing.`,
		Example: `  bookalbum books
  bookalbum books --url http://localhost:8000/api/book/books --json`,
		RunE: runBooks,
	}
	cmd.Flags().String("url", "", "Books API endpoint (overrides BOOKS_API_URL)")
	cmd.Flags().Bool("json", false, "Print the list as JSON")
	return cmd
}

func runBooks(cmd *cobra.Command, _ []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	client := bookapi.NewClient(config.BooksURL(), bookapi.WithRetries(config.BooksRetries()))
	p := page.New(client, page.WithTitle(config.SiteTitle()))
	defer p.Teardown()

	ctx := cmd.Context()
	p.Mount(ctx)
	select {
	case <-p.Done():
	case <-ctx.Done():
		return ctx.Err()
	}

	out := cmd.OutOrStdout()
	books := p.Books()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(books)
	}
	for _, book := range books {
		fmt.Fprintln(out, book.Title)
	}
	return nil
}
