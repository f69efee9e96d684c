// Package page holds the album page lifecycle: its book list state and the
// one-shot loader that fills it.
//
// A Page owns a context that acts as its ownership token. Teardown cancels it,
// and every state write checks it under the lock, so a response that lands
// after teardown is dropped instead of written into a dead page.
package page

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RobBrazier/bookalbum/cmd/web"
	"github.com/RobBrazier/bookalbum/internal/model"
)

// Loader fetches the book list.
type Loader interface {
	Books(ctx context.Context) ([]model.Book, error)
}

// LoaderFunc adapts a plain function to Loader.
type LoaderFunc func(ctx context.Context) ([]model.Book, error)

func (f LoaderFunc) Books(ctx context.Context) ([]model.Book, error) {
	return f(ctx)
}

// State is the only mutable data of a page.
type State struct {
	Books []model.Book
}

type Page struct {
	title  string
	loader Loader
	logger zerolog.Logger

	mu    sync.RWMutex
	state State

	ctx    context.Context
	cancel context.CancelFunc

	mount sync.Once
	done  chan struct{}
}

type Option func(*Page)

func WithTitle(title string) Option {
	return func(p *Page) {
		if title != "" {
			p.title = title
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(p *Page) {
		p.logger = logger
	}
}

func New(loader Loader, opts ...Option) *Page {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Page{
		title:  web.DefaultTitle,
		loader: loader,
		logger: log.Logger,
		state:  State{Books: []model.Book{}},
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Mount starts the initial load in the background. Only the first call does
// anything. The load is bound to both ctx and the page's own lifetime.
func (p *Page) Mount(ctx context.Context) {
	p.mount.Do(func() {
		go func() {
			defer close(p.done)
			loadCtx, cancel := context.WithCancel(ctx)
			defer cancel()
			stop := context.AfterFunc(p.ctx, cancel)
			defer stop()
			p.Load(loadCtx)
		}()
	})
}

// Done is closed when the load started by Mount has returned, whatever the
// outcome. It never closes if Mount was not called.
func (p *Page) Done() <-chan struct{} {
	return p.done
}

// Load fetches the book list once and replaces the state with it. Failures
// are logged and leave the state as it was. A torn down page is never
// fetched for nor written to.
func (p *Page) Load(ctx context.Context) {
	if !p.Live() {
		p.logger.Debug().Msg("Page already torn down, skipping load")
		return
	}

	start := time.Now()
	p.logger.Info().Msg("Fetching books")
	books, err := p.loader.Books(ctx)
	if err != nil {
		p.logger.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("error retrieving books")
		return
	}
	if books == nil {
		books = []model.Book{}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ctx.Err() != nil {
		p.logger.Warn().Int("entries", len(books)).Msg("Dropping books for torn down page")
		return
	}
	p.state = State{Books: books}
	p.logger.Info().Int("entries", len(books)).Dur("elapsed", time.Since(start)).Msg("Retrieved books")
}

// Teardown ends the page's lifetime. It is safe to call more than once.
func (p *Page) Teardown() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cancel()
}

func (p *Page) Live() bool {
	return p.ctx.Err() == nil
}

// State returns a copy of the current state.
func (p *Page) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return State{Books: slices.Clone(p.state.Books)}
}

func (p *Page) Books() []model.Book {
	return p.State().Books
}

// View renders the current state. now supplies the footer's copyright year.
func (p *Page) View(now time.Time) templ.Component {
	return web.Album(web.AlbumData{
		Title: p.title,
		Books: p.Books(),
		Year:  now.Year(),
	})
}
