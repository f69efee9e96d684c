package server

import (
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/RobBrazier/bookalbum/internal/page"
)

// AlbumHandler mounts a fresh page for the request, waits for its one load and
// renders whatever state it ended up with. The page is torn down on return.
func (s *Server) AlbumHandler(w http.ResponseWriter, r *http.Request) {
	log := log.With().Str("request_id", middleware.GetReqID(r.Context())).Logger()
	p := page.New(s.loader, page.WithTitle(s.title), page.WithLogger(log))
	defer p.Teardown()

	p.Mount(r.Context())
	select {
	case <-p.Done():
	case <-r.Context().Done():
		log.Warn().Err(r.Context().Err()).Msg("Request ended before books arrived")
		return
	}

	books := p.Books()
	log.Info().Int("entries", len(books)).Msg("Rendered album")
	templ.Handler(p.View(time.Now())).ServeHTTP(w, r)
}
