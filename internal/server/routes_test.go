package server

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/RobBrazier/bookalbum/internal/model"
)

func newTestServer(rateLimit int, logRequests bool) (*Server, *MockLoader, *MockBuilder) {
	mockLoader := new(MockLoader)
	mockBuilder := new(MockBuilder)
	s := &Server{
		title:       "Album layout",
		rateLimit:   rateLimit,
		logRequests: logRequests,
		loader:      mockLoader,
		builder:     mockBuilder,
	}
	return s, mockLoader, mockBuilder
}

func TestRegisterRoutes(t *testing.T) {
	s, mockLoader, mockBuilder := newTestServer(0, false)
	mockLoader.On("Books", mock.Anything).Return([]model.Book{{Title: "Dune"}}, nil)
	mockBuilder.On("GetBookFeed", mock.Anything, mock.Anything).Return(createMockFeed("Album layout", "Dune"), nil)
	r := s.RegisterRoutes()

	req := httptest.NewRequest("GET", "/up", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)

	req = httptest.NewRequest("GET", "/", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "Dune")
	assert.Contains(t, w.Body.String(), "/static/css/output.css")

	req = httptest.NewRequest("GET", "/static/css/output.css", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/css")

	req = httptest.NewRequest("GET", "/books.atom", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/atom+xml; charset=utf-8")

	req = httptest.NewRequest("GET", "/missing", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 404, w.Code)
}

func TestRegisterRoutesWithRequestLogging(t *testing.T) {
	s, mockLoader, _ := newTestServer(0, true)
	mockLoader.On("Books", mock.Anything).Return([]model.Book{}, nil)
	r := s.RegisterRoutes()

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
}

func TestRegisterRoutesRateLimit(t *testing.T) {
	s, mockLoader, _ := newTestServer(2, false)
	mockLoader.On("Books", mock.Anything).Return([]model.Book{}, nil)
	r := s.RegisterRoutes()

	codes := make([]int, 0, 3)
	for range 3 {
		req := httptest.NewRequest("GET", "/", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{200, 200, 429}, codes)

	// heartbeat sits outside the limited group
	req := httptest.NewRequest("GET", "/up", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
}
