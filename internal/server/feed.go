package server

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/feeds"
	"github.com/rs/zerolog/log"

	"github.com/RobBrazier/bookalbum/internal/feed"
)

func writeContentType(mediaType string, w http.ResponseWriter) {
	params := map[string]string{
		"charset": "utf-8",
	}
	contentType := mime.FormatMediaType(mediaType, params)
	w.Header().Set("Content-Type", contentType)
}

func (s *Server) determineFormat(r *http.Request) feed.Format {
	format, _ := r.Context().Value(middleware.URLFormatCtxKey).(string)
	if format == "" {
		format = r.URL.Query().Get("format")
	}
	return feed.ParseFormat(format)
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return fmt.Sprintf("%s://%s/", scheme, r.Host)
}

func (s *Server) writeFeed(format feed.Format, out *feeds.Feed, w http.ResponseWriter) {
	w.Header().Set("Last-Modified", out.Created.UTC().Format(http.TimeFormat))
	w.Header().Set("Cache-Control", "no-cache")
	writeContentType(format.MediaType(), w)

	var err error
	switch format {
	case feed.FORMAT_ATOM:
		err = out.WriteAtom(w)
	case feed.FORMAT_JSON:
		err = out.WriteJSON(w)
	default:
		err = out.WriteRss(w)
	}
	if err != nil {
		log.Error().Err(err).Str("format", string(format)).Msg("error writing feed")
	}
}

func (s *Server) FeedHandler(w http.ResponseWriter, r *http.Request) {
	format := s.determineFormat(r)
	log := log.With().Str("format", string(format)).Logger()
	out, err := s.builder.GetBookFeed(r.Context(), baseURL(r))
	if err != nil {
		log.Error().Err(err).Msg("error retrieving books")
	}
	log.Info().Int("entries", len(out.Items)).Msg("Generated feed for books")
	s.writeFeed(format, &out, w)
}
