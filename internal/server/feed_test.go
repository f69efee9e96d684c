package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/feeds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBuilder is a mock implementation of the Builder interface
type MockBuilder struct {
	mock.Mock
}

func (m *MockBuilder) GetBookFeed(ctx context.Context, link string) (feeds.Feed, error) {
	args := m.Called(ctx, link)
	return args.Get(0).(feeds.Feed), args.Error(1)
}

func feedRouter(s *Server) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.URLFormat)
	r.Get("/books", s.FeedHandler)
	return r
}

func TestFeedHandler(t *testing.T) {
	mockBuilder := new(MockBuilder)
	s := &Server{
		builder: mockBuilder,
	}

	// Create a mock feed
	mockFeed := createMockFeed("Album layout", "Dune", "Hyperion")

	mockBuilder.On("GetBookFeed", mock.Anything, "http://example.com/").Return(mockFeed, nil)

	r := feedRouter(s)

	// Test default format (RSS)
	req := httptest.NewRequest("GET", "/books", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/rss+xml; charset=utf-8")
	assert.Contains(t, w.Body.String(), "<title>Dune</title>")

	// Test with format parameter (ATOM)
	req = httptest.NewRequest("GET", "/books.atom", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/atom+xml; charset=utf-8")

	// Test with format parameter (JSON)
	req = httptest.NewRequest("GET", "/books.json", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json; charset=utf-8")

	var body struct {
		Items []struct {
			Title string `json:"title"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Items, 2)
	assert.Equal(t, "Dune", body.Items[0].Title)
	assert.Equal(t, "Hyperion", body.Items[1].Title)
}

func TestFeedHandlerQueryFormat(t *testing.T) {
	mockBuilder := new(MockBuilder)
	s := &Server{
		builder: mockBuilder,
	}
	mockBuilder.On("GetBookFeed", mock.Anything, mock.Anything).Return(createMockFeed("Album layout"), nil)

	req := httptest.NewRequest("GET", "/books?format=atom", nil)
	w := httptest.NewRecorder()
	feedRouter(s).ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/atom+xml")
}

func TestFeedHandlerLoaderFailure(t *testing.T) {
	mockBuilder := new(MockBuilder)
	s := &Server{
		builder: mockBuilder,
	}
	mockBuilder.On("GetBookFeed", mock.Anything, mock.Anything).
		Return(createMockFeed("Album layout"), errors.New("connection refused"))

	req := httptest.NewRequest("GET", "/books", nil)
	w := httptest.NewRecorder()
	feedRouter(s).ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
	assert.NotContains(t, w.Body.String(), "<item>")
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestBaseURL(t *testing.T) {
	req := httptest.NewRequest("GET", "http://books.example.com/books", nil)
	assert.Equal(t, "http://books.example.com/", baseURL(req))

	req.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://books.example.com/", baseURL(req))
}

func createMockFeed(title string, itemTitles ...string) feeds.Feed {
	feed := feeds.Feed{
		Title:   title,
		Link:    &feeds.Link{Href: "http://example.com/"},
		Created: time.Now(),
	}
	for i, itemTitle := range itemTitles {
		href := fmt.Sprintf("http://example.com#book-%d", i+1)
		feed.Items = append(feed.Items, &feeds.Item{
			Id:      href,
			Title:   itemTitle,
			Link:    &feeds.Link{Href: href},
			Created: feed.Created,
		})
	}
	return feed
}
