package bookapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/RobBrazier/bookalbum/internal/model"
	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURL = "http://books.test/api/book/books"

func newMockedClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	client := NewClient(testURL, opts...)
	gock.InterceptClient(client.HTTPClient())
	t.Cleanup(func() {
		gock.RestoreClient(client.HTTPClient())
		gock.Off()
	})
	return client
}

func TestBooksReturnsServerOrder(t *testing.T) {
	client := newMockedClient(t)
	gock.New("http://books.test").
		Get("/api/book/books").
		MatchHeader("Accept", "application/json").
		Reply(200).
		JSON([]map[string]any{
			{"id": 3, "title": "Dune", "price": "9.99"},
			{"id": 1, "title": "Neuromancer", "tags": []int{1, 2}},
			{"id": 2, "title": "Hyperion"},
		})

	books, err := client.Books(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Book{
		{Title: "Dune"},
		{Title: "Neuromancer"},
		{Title: "Hyperion"},
	}, books)
	assert.True(t, gock.IsDone())
}

func TestBooksEmptyArray(t *testing.T) {
	client := newMockedClient(t)
	gock.New("http://books.test").
		Get("/api/book/books").
		Reply(200).
		BodyString("[]")

	books, err := client.Books(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestBooksNullBody(t *testing.T) {
	client := newMockedClient(t)
	gock.New("http://books.test").
		Get("/api/book/books").
		Reply(200).
		BodyString("null")

	books, err := client.Books(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, books)
	assert.Empty(t, books)
}

func TestBooksServerError(t *testing.T) {
	client := newMockedClient(t)
	gock.New("http://books.test").
		Get("/api/book/books").
		Reply(500)

	books, err := client.Books(context.Background())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 500, statusErr.StatusCode)
	assert.Nil(t, books)
}

func TestBooksNotFound(t *testing.T) {
	client := newMockedClient(t)
	gock.New("http://books.test").
		Get("/api/book/books").
		Reply(404).
		BodyString(`{"detail":"Not found."}`)

	_, err := client.Books(context.Background())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 404, statusErr.StatusCode)
	assert.Equal(t, testURL, statusErr.URL)
}

func TestBooksMalformedBody(t *testing.T) {
	client := newMockedClient(t)
	gock.New("http://books.test").
		Get("/api/book/books").
		Reply(200).
		BodyString(`{"title":"not a list"}`)

	_, err := client.Books(context.Background())
	assert.ErrorContains(t, err, "decode books")
}

func TestBooksNetworkError(t *testing.T) {
	client := newMockedClient(t)
	gock.New("http://books.test").
		Get("/api/book/books").
		ReplyError(errors.New("connection refused"))

	_, err := client.Books(context.Background())
	assert.ErrorContains(t, err, "fetch books")
}

func TestBooksSingleAttemptByDefault(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Books(context.Background())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestBooksRetriesExhaustedKeepsStatus(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, WithRetries(1))
	client.retry.RetryWaitMin = time.Millisecond
	client.retry.RetryWaitMax = time.Millisecond

	_, err := client.Books(context.Background())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Equal(t, int32(2), calls.Load())
}

func TestBooksWithRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`[{"title":"Dune"}]`))
	}))
	defer srv.Close()

	books, err := NewClient(srv.URL, WithRetries(1)).Books(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Book{{Title: "Dune"}}, books)
	assert.Equal(t, int32(2), calls.Load())
}

func TestBooksSendsUserAgent(t *testing.T) {
	var agent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		agent = r.Header.Get("User-Agent")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Books(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(agent, "bookalbum/"), agent)
}

func TestBooksCancelledContext(t *testing.T) {
	client := newMockedClient(t)
	gock.New("http://books.test").
		Get("/api/book/books").
		Reply(200).
		BodyString("[]")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Books(ctx)
	assert.Error(t, err)
}

func TestNewClientDefaultURL(t *testing.T) {
	assert.Equal(t, DefaultURL, NewClient("").URL())
}
