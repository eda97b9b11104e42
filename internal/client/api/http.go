package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/dkorolev84/newsline/internal/client/models"
	"github.com/dkorolev84/newsline/internal/common"
	"github.com/dkorolev84/newsline/internal/logging"
)

// genericErrorMessage is shown when a failed response carries no usable
// {"message": ...} body.
const genericErrorMessage = "something went wrong"

// apiError is the error envelope the server attaches to non-2xx responses.
type apiError struct {
	Message string `json:"message"`
}

// HTTPClient implements Client over the service's REST/JSON contract.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the API rooted at baseURL
// (e.g. "http://localhost:3000/api"). The timeout bounds each individual
// request; per-call contexts can shorten it further.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

// do performs one API request. A non-empty token is sent as a bearer
// authorization header. body (if non-nil) is marshalled as JSON; out
// (if non-nil) receives the decoded 2xx response body.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "method", method, "path", path, "err", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(ctx, resp, method, path)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError converts a non-2xx response into an error. The message comes
// from the response body when present, with a generic fallback. 401/403
// additionally carry common.ErrUnauthorized and 404 common.ErrNotFound so
// callers can match with errors.Is.
func (c *HTTPClient) decodeError(ctx context.Context, resp *http.Response, method, path string) error {
	msg := genericErrorMessage
	var apiErr apiError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
		msg = apiErr.Message
	}

	c.log.Debug(ctx, "api error", "method", method, "path", path, "status", resp.StatusCode, "msg", msg)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", common.ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", common.ErrNotFound, msg)
	default:
		return fmt.Errorf("api error (%d): %s", resp.StatusCode, msg)
	}
}

// pagePath appends page/limit query parameters to path.
func pagePath(path string, page, limit int) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return path + "?" + q.Encode()
}

func (c *HTTPClient) SignIn(ctx context.Context, name, email, password string) (models.AuthResponse, error) {
	var out models.AuthResponse
	body := map[string]string{"name": name, "email": email, "password": password}
	err := c.do(ctx, http.MethodPost, "/auth/sign-in", "", body, &out)
	return out, err
}

func (c *HTTPClient) LogIn(ctx context.Context, email, password string) (models.AuthResponse, error) {
	var out models.AuthResponse
	body := map[string]string{"email": email, "password": password}
	err := c.do(ctx, http.MethodPost, "/auth/log-in", "", body, &out)
	return out, err
}

func (c *HTTPClient) GetMe(ctx context.Context, token string) (models.User, error) {
	var out models.User
	err := c.do(ctx, http.MethodGet, "/users/me", token, nil, &out)
	return out, err
}

func (c *HTTPClient) ListUsers(ctx context.Context, token string, page, limit int) (models.Page[models.User], error) {
	var out models.Page[models.User]
	err := c.do(ctx, http.MethodGet, pagePath("/users", page, limit), token, nil, &out)
	return out, err
}

func (c *HTTPClient) ListPosts(ctx context.Context, token string, page, limit int) (models.Page[models.Post], error) {
	var out models.Page[models.Post]
	err := c.do(ctx, http.MethodGet, pagePath("/posts", page, limit), token, nil, &out)
	return out, err
}

func (c *HTTPClient) ListMyPosts(ctx context.Context, token string, page, limit int) (models.Page[models.Post], error) {
	var out models.Page[models.Post]
	err := c.do(ctx, http.MethodGet, pagePath("/posts/me", page, limit), token, nil, &out)
	return out, err
}

func (c *HTTPClient) CreatePost(ctx context.Context, token, title, content string) (models.Post, error) {
	var out models.Post
	body := map[string]string{"title": title, "content": content}
	err := c.do(ctx, http.MethodPost, "/posts", token, body, &out)
	return out, err
}

func (c *HTTPClient) DeletePost(ctx context.Context, token, postID string) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+url.PathEscape(postID), token, nil, nil)
}

func (c *HTTPClient) ListComments(ctx context.Context, token, postID string, page, limit int) (models.Page[models.Comment], error) {
	var out models.Page[models.Comment]
	path := pagePath("/comments/on/"+url.PathEscape(postID), page, limit)
	err := c.do(ctx, http.MethodGet, path, token, nil, &out)
	return out, err
}

func (c *HTTPClient) CreateComment(ctx context.Context, token, postID, text string) (models.Comment, error) {
	var out models.Comment
	body := map[string]string{"text": text}
	err := c.do(ctx, http.MethodPost, "/comments/on/"+url.PathEscape(postID), token, body, &out)
	return out, err
}

func (c *HTTPClient) UpdateComment(ctx context.Context, token, commentID, text string) (models.Comment, error) {
	var out models.Comment
	body := map[string]string{"text": text}
	err := c.do(ctx, http.MethodPatch, "/comments/"+url.PathEscape(commentID), token, body, &out)
	return out, err
}

func (c *HTTPClient) DeleteComment(ctx context.Context, token, commentID string) error {
	return c.do(ctx, http.MethodDelete, "/comments/"+url.PathEscape(commentID), token, nil, nil)
}

func (c *HTTPClient) ListLikes(ctx context.Context, token, postID string, page, limit int) (models.Page[models.Like], error) {
	var out models.Page[models.Like]
	path := pagePath("/likes/on/"+url.PathEscape(postID), page, limit)
	err := c.do(ctx, http.MethodGet, path, token, nil, &out)
	return out, err
}

func (c *HTTPClient) LikePost(ctx context.Context, token, postID string) error {
	return c.do(ctx, http.MethodPost, "/likes/on/"+url.PathEscape(postID), token, nil, nil)
}

func (c *HTTPClient) UnlikePost(ctx context.Context, token, postID string) error {
	return c.do(ctx, http.MethodDelete, "/likes/on/"+url.PathEscape(postID), token, nil, nil)
}
