// Package client talks to the remote comment service over its REST API.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/charla/internal/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// RequestIDHeader carries a unique ID per request for correlating logs
	RequestIDHeader = "X-Request-ID"

	tracerName  = "github.com/thenoetrevino/charla/internal/client"
	maxBodySize = 4 << 20
)

// Client is an HTTP client for the comment service.
// It never retries: every failure is returned to the caller as a
// *NetworkError or *ServerError.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *slog.Logger
	tracer  trace.Tracer
}

// New creates a Client for the service rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	cfg := clientConfig{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/")

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{}
	}
	if cfg.timeout > 0 {
		copied := *hc
		copied.Timeout = cfg.timeout
		hc = &copied
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	tracer := cfg.tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	return &Client{
		baseURL: u,
		http:    hc,
		logger:  logger,
		tracer:  tracer,
	}, nil
}

// BaseURL returns the service root this client talks to
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// List returns comments in server order. taskID > 0 filters by task.
func (c *Client) List(ctx context.Context, taskID int) ([]models.Comment, error) {
	ctx, span := c.startSpan(ctx, "comments.list")
	defer span.End()

	query := url.Values{}
	if taskID > 0 {
		query.Set("task_id", strconv.Itoa(taskID))
		span.SetAttributes(attribute.Int("comment.task_id", taskID))
	}

	var comments []models.Comment
	status, err := c.do(ctx, "list", http.MethodGet, []string{"comments"}, query, nil, &comments)
	finishSpan(span, status, err)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// Get returns a single comment
func (c *Client) Get(ctx context.Context, id int) (*models.Comment, error) {
	ctx, span := c.startSpan(ctx, "comments.get", attribute.Int("comment.id", id))
	defer span.End()

	var comment models.Comment
	status, err := c.do(ctx, "get", http.MethodGet, commentPath(id), nil, nil, &comment)
	finishSpan(span, status, err)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Create posts a new comment and returns the record with its server-assigned ID
func (c *Client) Create(ctx context.Context, req CreateRequest) (*models.Comment, error) {
	ctx, span := c.startSpan(ctx, "comments.create", attribute.Int("comment.task_id", req.TaskID))
	defer span.End()

	var comment models.Comment
	status, err := c.do(ctx, "create", http.MethodPost, []string{"comments"}, nil, req, &comment)
	finishSpan(span, status, err)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Update replaces the author and content of a comment
func (c *Client) Update(ctx context.Context, id int, req UpdateRequest) (*models.Comment, error) {
	ctx, span := c.startSpan(ctx, "comments.update", attribute.Int("comment.id", id))
	defer span.End()

	var comment models.Comment
	status, err := c.do(ctx, "update", http.MethodPut, commentPath(id), nil, req, &comment)
	finishSpan(span, status, err)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes a comment. Any response body is ignored.
func (c *Client) Delete(ctx context.Context, id int) error {
	ctx, span := c.startSpan(ctx, "comments.delete", attribute.Int("comment.id", id))
	defer span.End()

	status, err := c.do(ctx, "delete", http.MethodDelete, commentPath(id), nil, nil, nil)
	finishSpan(span, status, err)
	return err
}

// do performs a single request. It returns the HTTP status (0 when no
// response arrived) and a *NetworkError or *ServerError on failure.
func (c *Client) do(ctx context.Context, op, method string, path []string, query url.Values, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := codec.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("failed to encode %s request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.baseURL.JoinPath(path...)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return 0, fmt.Errorf("failed to build %s request: %w", op, err)
	}

	requestID := uuid.NewString()
	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.request_id", requestID),
	)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("comment request failed",
			"op", op, "method", method, "url", endpoint.String(),
			"request_id", requestID, "duration", time.Since(start), "error", err)
		return 0, &NetworkError{Op: op, Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Debug("error closing response body", "error", closeErr)
		}
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return resp.StatusCode, &NetworkError{Op: op, Err: err}
	}

	c.logger.Debug("comment request",
		"op", op, "method", method, "url", endpoint.String(), "status", resp.StatusCode,
		"request_id", requestID, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, &ServerError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(resp.Header.Get("Content-Type"), data),
		}
	}

	if out != nil {
		if err := codec.Unmarshal(data, out); err != nil {
			return resp.StatusCode, &ServerError{
				StatusCode: resp.StatusCode,
				Message:    "invalid response body",
			}
		}
	}

	return resp.StatusCode, nil
}

func (c *Client) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return c.tracer.Start(ctx, name,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
}

// finishSpan records the outcome of a request on its span
func finishSpan(span trace.Span, status int, err error) {
	if status > 0 {
		span.SetAttributes(attribute.Int("http.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

func commentPath(id int) []string {
	return []string{"comments", strconv.Itoa(id)}
}
