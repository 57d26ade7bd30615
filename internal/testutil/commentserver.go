package testutil

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	"github.com/thenoetrevino/charla/internal/models"
	"golang.org/x/net/html"
)

// BaseTime is the created_at of the first comment created by a CommentServer.
// Each subsequent comment is one second later.
var BaseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// RecordedRequest is a request observed by the CommentServer
type RecordedRequest struct {
	Method    string
	Path      string
	Query     string
	RequestID string
}

// injectedFailure is a canned error response for the next request
type injectedFailure struct {
	status  int
	message string
}

// NotFoundDescription is the stock text of the service's 404 page
const NotFoundDescription = "The requested URL was not found on the server. " +
	"If you entered the URL manually please check your spelling and try again."

// CommentServer is an in-memory fake of the comment REST API for tests.
// It answers like the real service: 201 on create, 400 on missing fields,
// 404 on unknown IDs, 204 on delete, and lists newest first. Errors come
// back as the service's text/html pages.
type CommentServer struct {
	*httptest.Server

	mu       sync.Mutex
	comments map[int]models.Comment
	nextID   int
	requests []RecordedRequest
	failures []injectedFailure
}

// NewCommentServer starts a fake comment service. Cleanup is automatic via t.Cleanup().
func NewCommentServer(t *testing.T) *CommentServer {
	t.Helper()

	s := &CommentServer{
		comments: make(map[int]models.Comment),
		nextID:   1,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorPageHandler
	e.Use(s.record)

	e.GET("/comments", s.list)
	e.POST("/comments", s.create)
	e.GET("/comments/:id", s.get)
	e.PUT("/comments/:id", s.update)
	e.PATCH("/comments/:id", s.update)
	e.DELETE("/comments/:id", s.delete)

	s.Server = httptest.NewServer(e)
	t.Cleanup(s.Close)

	return s
}

// Seed inserts comments as if they had been created in order.
// Returns the stored records with IDs and timestamps assigned.
func (s *CommentServer) Seed(t *testing.T, taskID int, author string, contents ...string) []models.Comment {
	t.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()

	seeded := make([]models.Comment, 0, len(contents))
	for _, content := range contents {
		seeded = append(seeded, s.insertLocked(taskID, author, content))
	}
	return seeded
}

// FailNext makes the next request answer with the given status and an error
// page carrying message. An empty message produces an empty body. Calls
// queue up in order.
func (s *CommentServer) FailNext(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = append(s.failures, injectedFailure{status: status, message: message})
}

// Requests returns every request observed so far
func (s *CommentServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.requests)
}

// Stored returns the server-side comment with the given ID
func (s *CommentServer) Stored(id int) (models.Comment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.comments[id]
	return c, ok
}

// Len returns the number of stored comments
func (s *CommentServer) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.comments)
}

func (s *CommentServer) insertLocked(taskID int, author, content string) models.Comment {
	c := models.Comment{
		ID:        s.nextID,
		TaskID:    taskID,
		Author:    author,
		Content:   content,
		CreatedAt: BaseTime.Add(time.Duration(s.nextID-1) * time.Second),
	}
	s.comments[c.ID] = c
	s.nextID++
	return c
}

func (s *CommentServer) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:    req.Method,
			Path:      req.URL.Path,
			Query:     req.URL.RawQuery,
			RequestID: req.Header.Get("X-Request-ID"),
		})
		var failure *injectedFailure
		if len(s.failures) > 0 {
			failure = &s.failures[0]
			s.failures = s.failures[1:]
		}
		s.mu.Unlock()

		if failure != nil {
			if failure.message == "" {
				return c.NoContent(failure.status)
			}
			return c.HTML(failure.status, errorPage(failure.status, failure.message))
		}
		return next(c)
	}
}

func (s *CommentServer) list(c echo.Context) error {
	taskID := 0
	if raw := c.QueryParam("task_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			// Unparsable filters are ignored, as the real service does
			parsed = 0
		}
		taskID = parsed
	}

	s.mu.Lock()
	out := make([]models.Comment, 0, len(s.comments))
	for _, comment := range s.comments {
		if taskID > 0 && comment.TaskID != taskID {
			continue
		}
		out = append(out, comment)
	}
	s.mu.Unlock()

	slices.SortFunc(out, func(a, b models.Comment) int {
		if cmp := b.CreatedAt.Compare(a.CreatedAt); cmp != 0 {
			return cmp
		}
		return b.ID - a.ID
	})

	return c.JSON(http.StatusOK, out)
}

func (s *CommentServer) create(c echo.Context) error {
	var payload struct {
		TaskID  *int    `json:"task_id"`
		Author  *string `json:"author"`
		Content *string `json:"content"`
	}
	if err := sonic.ConfigStd.NewDecoder(c.Request().Body).Decode(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields: task_id, author, content")
	}
	if payload.TaskID == nil || payload.Author == nil || payload.Content == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields: task_id, author, content")
	}

	s.mu.Lock()
	created := s.insertLocked(*payload.TaskID, *payload.Author, *payload.Content)
	s.mu.Unlock()

	return c.JSON(http.StatusCreated, created)
}

func (s *CommentServer) get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.ErrNotFound
	}

	comment, ok := s.Stored(id)
	if !ok {
		return echo.ErrNotFound
	}
	return c.JSON(http.StatusOK, comment)
}

func (s *CommentServer) update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	comment, ok := s.comments[id]
	if !ok {
		return echo.ErrNotFound
	}

	var payload map[string]*string
	if err := sonic.ConfigStd.NewDecoder(c.Request().Body).Decode(&payload); err != nil {
		payload = map[string]*string{}
	}

	if author, present := payload["author"]; present {
		if author == nil {
			return echo.NewHTTPError(http.StatusBadRequest, "author cannot be null")
		}
		comment.Author = *author
	}
	if content, present := payload["content"]; present {
		if content == nil {
			return echo.NewHTTPError(http.StatusBadRequest, "content cannot be null")
		}
		comment.Content = *content
	}

	s.comments[id] = comment
	return c.JSON(http.StatusOK, comment)
}

func (s *CommentServer) delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.comments[id]; !ok {
		return echo.ErrNotFound
	}
	delete(s.comments, id)
	return c.NoContent(http.StatusNoContent)
}

// errorPageHandler renders echo errors the way the service's framework does
func errorPageHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		he = echo.ErrInternalServerError
	}

	description, _ := he.Message.(string)
	if description == http.StatusText(he.Code) {
		description = ""
	}
	if description == "" && he.Code == http.StatusNotFound {
		description = NotFoundDescription
	}

	_ = c.HTML(he.Code, errorPage(he.Code, description))
}

// errorPage builds a Werkzeug style error page
func errorPage(status int, description string) string {
	text := http.StatusText(status)
	return fmt.Sprintf("<!doctype html>\n<html lang=en>\n<title>%d %s</title>\n<h1>%s</h1>\n<p>%s</p>\n",
		status, text, text, html.EscapeString(description))
}
