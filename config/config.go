package config

import (
	"slices"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

type config struct {
	Port  int    `envconfig:"PORT" default:"8080"`
	Env   string `envconfig:"APP_ENV" default:"production"`
	Title string `envconfig:"SITE_TITLE" default:"Album layout"`
	Log   struct {
		Level    string `envconfig:"LOG_LEVEL" default:"debug"`
		Format   string `envconfig:"LOG_FORMAT" default:"text"`
		Requests bool   `envconfig:"LOG_REQUESTS" default:"false"`
	}
	Books struct {
		URL     string `envconfig:"BOOKS_API_URL" default:"http://localhost:8000/api/book/books"`
		Retries int    `envconfig:"BOOKS_API_RETRIES" default:"0"`
	}
	RateLimit int `envconfig:"RATE_LIMIT" default:"10"`
}

var cfg config

func LoadConfig() error {
	err := envconfig.Process("", &cfg)
	if err != nil {
		return err
	}
	return nil
}

func Config() config {
	return cfg
}

func Port() int {
	return cfg.Port
}

func IsLocal() bool {
	return strings.EqualFold(cfg.Env, "local")
}

func SiteTitle() string {
	return cfg.Title
}

func LogLevel() zerolog.Level {
	switch strings.ToLower(cfg.Log.Level) {
	case "trace":
		return zerolog.TraceLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.DebugLevel
	}
}

func LogFormat() string {
	allowed := []string{"text", "json"}
	format := strings.ToLower(cfg.Log.Format)
	if slices.Contains(allowed, format) {
		return format
	}
	return "json"
}

func LogRequests() bool {
	return cfg.Log.Requests
}

func BooksURL() string {
	return cfg.Books.URL
}

// BooksRetries is the number of extra attempts made against the books API.
// Zero means a single request.
func BooksRetries() int {
	if cfg.Books.Retries < 0 {
		return 0
	}
	return cfg.Books.Retries
}

func RateLimit() int {
	if cfg.RateLimit <= 0 {
		return 10
	}
	return cfg.RateLimit
}

// SetPort overrides the configured port, e.g. from a command line flag.
func SetPort(port int) {
	cfg.Port = port
}

// SetBooksURL overrides the configured books API endpoint.
func SetBooksURL(url string) {
	cfg.Books.URL = url
}
