package server

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/RobBrazier/bookalbum/cmd/web"
)

func MountStatic(r chi.Router) {
	staticRoot, err := fs.Sub(web.Static, "static")
	if err != nil {
		log.Fatal().Err(err).Msg("Embedded static assets missing")
	}

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(staticRoot)))
}
