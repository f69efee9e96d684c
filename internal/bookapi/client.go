package bookapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/RobBrazier/bookalbum/cmd/web/utils"
	"github.com/RobBrazier/bookalbum/internal/model"
	"github.com/hashicorp/go-retryablehttp"
)

// DefaultURL is where the books API lives when nothing else is configured.
const DefaultURL = "http://localhost:8000/api/book/books"

// StatusError is returned when the books API answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("books api %s: unexpected status %d", e.URL, e.StatusCode)
}

type agentTransport struct {
	wrapped http.RoundTripper
}

func (t *agentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", fmt.Sprintf("bookalbum/%s (https://github.com/RobBrazier/bookalbum)", utils.ShortVersion()))
	return t.wrapped.RoundTrip(req)
}

type Client struct {
	url   string
	retry *retryablehttp.Client
}

type Option func(*Client)

// WithHTTPClient swaps the underlying client. The User-Agent transport is not
// applied to it.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.retry.HTTPClient = c
	}
}

// WithRetries sets how many extra attempts are made after a failed request.
func WithRetries(n int) Option {
	return func(client *Client) {
		if n < 0 {
			n = 0
		}
		client.retry.RetryMax = n
	}
}

func NewClient(url string, opts ...Option) *Client {
	if url == "" {
		url = DefaultURL
	}
	retryClient := retryablehttp.NewClient()
	retryClient.HTTPClient = &http.Client{
		Transport: &agentTransport{
			wrapped: http.DefaultTransport,
		},
	}
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = 200 * time.Millisecond
	retryClient.RetryWaitMax = 2 * time.Second
	retryClient.Logger = slog.Default()
	// Hand back the last response so Books can report its status.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		url:   url,
		retry: retryClient,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

func (c *Client) URL() string {
	return c.url
}

// HTTPClient exposes the client doing the actual round trips.
func (c *Client) HTTPClient() *http.Client {
	return c.retry.HTTPClient
}

// Books fetches the full book list in server order.
func (c *Client) Books(ctx context.Context) ([]model.Book, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build books request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.retry.Do(req)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, fmt.Errorf("fetch books: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: c.url, StatusCode: resp.StatusCode}
	}

	var books []model.Book
	if err := json.NewDecoder(resp.Body).Decode(&books); err != nil {
		return nil, fmt.Errorf("decode books: %w", err)
	}
	if books == nil {
		books = []model.Book{}
	}
	return books, nil
}
