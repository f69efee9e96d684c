package server

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	slogzerolog "github.com/samber/slog-zerolog/v2"

	"github.com/RobBrazier/bookalbum/config"
	"github.com/RobBrazier/bookalbum/internal/bookapi"
	"github.com/RobBrazier/bookalbum/internal/feed"
	"github.com/RobBrazier/bookalbum/internal/page"
)

type Server struct {
	port        int
	title       string
	rateLimit   int
	logRequests bool
	logger      *zerolog.Logger
	loader      page.Loader
	builder     feed.Builder
}

// SetupLogger configures zerolog as the global logger and routes slog through
// it, so go-retryablehttp and httplog end up in the same output.
func SetupLogger(w io.Writer) *zerolog.Logger {
	isText := config.LogFormat() == "text"
	if isText {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	context := zerolog.New(w).With().Timestamp()
	if !config.IsLocal() {
		context = context.Str("service.name", "bookalbum")
	}
	if config.LogLevel() <= zerolog.DebugLevel {
		context = context.Caller()
	}
	logger := context.Logger().Level(config.LogLevel())
	log.Logger = logger

	slog.SetDefault(slog.New(slogzerolog.Option{Logger: &logger}.NewZerologHandler()))
	return &logger
}

func NewServer() *http.Server {
	logger := SetupLogger(os.Stdout)

	client := bookapi.NewClient(config.BooksURL(), bookapi.WithRetries(config.BooksRetries()))
	title := config.SiteTitle()

	NewServer := &Server{
		port:        config.Port(),
		title:       title,
		rateLimit:   config.RateLimit(),
		logRequests: config.LogRequests(),
		logger:      logger,
		loader:      client,
		builder:     feed.NewBuilder(client, title),
	}
	logger.Info().Str("books_url", client.URL()).Int("port", NewServer.port).Msg("Configured server")

	// Declare Server config
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", NewServer.port),
		Handler:      NewServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
