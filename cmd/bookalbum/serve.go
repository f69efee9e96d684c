package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/RobBrazier/bookalbum/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the album web server",
		Example: `  bookalbum serve
  bookalbum serve --port 3000 --url http://localhost:8000/api/book/books`,
		RunE: runServe,
	}
	cmd.Flags().Int("port", 8080, "Port to listen on (overrides PORT)")
	cmd.Flags().String("url", "", "Books API endpoint (overrides BOOKS_API_URL)")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv := server.NewServer()

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		log.Info().Str("addr", srv.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
	}

	log.Info().Msg("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	return <-errCh
}
