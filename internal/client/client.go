// Package client talks to the articles HTTP API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/articles-app/internal/models"
	"github.com/rs/zerolog"
)

// DefaultMaxResponseSize caps how much of a response body is read. It
// leaves room for a list of a thousand articles at the server's maximum
// text length.
const DefaultMaxResponseSize = 16 << 20

// Client is an articles API client
type Client struct {
	baseURL         string
	httpClient      *http.Client
	maxResponseSize int64
	log             zerolog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client; nil is ignored
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the HTTP client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = d
	}
}

// WithMaxResponseSize overrides DefaultMaxResponseSize
func WithMaxResponseSize(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxResponseSize = n
		}
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log.With().Str("component", "client").Logger() }
}

// New creates a new client for the API rooted at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		maxResponseSize: DefaultMaxResponseSize,
		log:             zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login exchanges credentials for a token
func (c *Client) Login(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	req := models.LoginRequest{Username: username, Password: password}
	if err := c.do(ctx, "login", http.MethodPost, "/api/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListArticles fetches every article
func (c *Client) ListArticles(ctx context.Context, token string) (*models.ArticlesResponse, error) {
	var resp models.ArticlesResponse
	if err := c.do(ctx, "list articles", http.MethodGet, "/api/articles", token, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Articles == nil {
		resp.Articles = []models.Article{}
	}
	return &resp, nil
}

// CreateArticle stores a new article and returns it with its server-assigned ID
func (c *Client) CreateArticle(ctx context.Context, token string, article models.ArticleInput) (*models.ArticleResponse, error) {
	var resp models.ArticleResponse
	if err := c.do(ctx, "create article", http.MethodPost, "/api/articles", token, article, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateArticle replaces article id
func (c *Client) UpdateArticle(ctx context.Context, token string, id int, article models.ArticleInput) (*models.ArticleResponse, error) {
	var resp models.ArticleResponse
	path := "/api/articles/" + strconv.Itoa(id)
	if err := c.do(ctx, "update article", http.MethodPut, path, token, article, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteArticle removes article id
func (c *Client) DeleteArticle(ctx context.Context, token string, id int) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	path := "/api/articles/" + strconv.Itoa(id)
	if err := c.do(ctx, "delete article", http.MethodDelete, path, token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do performs one request. Non-2xx responses become *APIError carrying the
// body's message when it has one.
func (c *Client) do(ctx context.Context, op, method, path, token string, body, result interface{}) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return &APIError{Op: op, Err: fmt.Errorf("marshal request: %w", err)}
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &APIError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("Request failed")
		return &APIError{Op: op, Err: fmt.Errorf("do request: %w", err)}
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Request completed")

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxResponseSize+1))
	if err != nil {
		return &APIError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("read response: %w", err)}
	}
	if int64(len(data)) > c.maxResponseSize {
		return &APIError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("response exceeds %d bytes", c.maxResponseSize)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg models.MessageResponse
		// Bodies that are not JSON leave the message empty.
		_ = json.Unmarshal(data, &msg)
		return &APIError{Op: op, Status: resp.StatusCode, Message: msg.Message}
	}

	if result != nil && len(data) > 0 {
		if err := json.Unmarshal(data, result); err != nil {
			return &APIError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("unmarshal response: %w", err)}
		}
	}
	return nil
}
