package feed

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/gorilla/feeds"
	"github.com/rs/zerolog/log"

	"github.com/RobBrazier/bookalbum/cmd/web"
	"github.com/RobBrazier/bookalbum/internal/model"
	"github.com/RobBrazier/bookalbum/internal/page"
)

//go:embed templates/*
var fs embed.FS

type Builder interface {
	GetBookFeed(ctx context.Context, link string) (feeds.Feed, error)
}

type builder struct {
	loader    page.Loader
	title     string
	templates *template.Template
}

type contentData struct {
	Book  model.Book
	Image string
	Text  string
}

func (b *builder) buildFeed(link string, created time.Time, books []model.Book) feeds.Feed {
	feed := &feeds.Feed{
		Title:       b.title,
		Link:        &feeds.Link{Href: link},
		Created:     created,
		Updated:     created,
		Description: fmt.Sprintf("Generated on %s", created.Format("02 Jan 2006 15:04:05 (-0700)")),
	}
	for i, book := range books {
		href := fmt.Sprintf("%s#book-%d", strings.TrimSuffix(link, "/"), i+1)
		feed.Add(&feeds.Item{
			Id:      href,
			Title:   book.Title,
			Link:    &feeds.Link{Href: href},
			Content: b.renderContent(book),
			Created: created,
		})
	}
	return *feed
}

func (b *builder) renderContent(book model.Book) string {
	var builder strings.Builder
	data := contentData{
		Book:  book,
		Image: web.PlaceholderImage,
		Text:  web.CardText,
	}
	if err := b.templates.ExecuteTemplate(&builder, "content.tmpl", data); err != nil {
		log.Error().Err(err).Str("title", book.Title).Msg("error rendering feed content")
		return ""
	}
	return builder.String()
}

// GetBookFeed builds a feed from one fetch of the book list. On a fetch
// failure it still returns a valid, empty feed alongside the error.
func (b *builder) GetBookFeed(ctx context.Context, link string) (feeds.Feed, error) {
	now := time.Now()
	log.Info().Msg("Fetching books for feed")
	books, err := b.loader.Books(ctx)
	log.Info().Dur("elapsed", time.Since(now)).Msg("Retrieved books for feed")
	if err != nil {
		return b.buildFeed(link, now, nil), err
	}
	return b.buildFeed(link, now, books), nil
}

func NewBuilder(loader page.Loader, title string) Builder {
	if title == "" {
		title = web.DefaultTitle
	}
	return &builder{
		loader: loader,
		title:  title,
		templates: template.Must(
			template.New("base").Funcs(sprig.FuncMap()).ParseFS(fs, "templates/*.tmpl"),
		),
	}
}
