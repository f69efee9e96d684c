package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
)

func (s *Server) requestLimit() int {
	if s.rateLimit <= 0 {
		return 10
	}
	return s.rateLimit
}

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(30 * time.Second))
	if s.logRequests {
		r.Use(httplog.RequestLogger(slog.Default(), &httplog.Options{
			Level:         slog.LevelInfo,
			Schema:        httplog.SchemaOTEL,
			RecoverPanics: true,
		}))
	} else {
		r.Use(middleware.Recoverer)
	}
	r.Use(middleware.Heartbeat("/up"))
	// strips .rss/.atom/.json before routing, so /books.atom hits /books
	r.Use(middleware.URLFormat)

	MountStatic(r)

	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(s.requestLimit(), 10*time.Second))

		r.Get("/", s.AlbumHandler)
		r.Get("/books", s.FeedHandler)
	})

	return r
}
