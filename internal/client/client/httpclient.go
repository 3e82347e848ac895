package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/experiences/internal/client/models"
	"github.com/dmitrijs2005/experiences/internal/common"
	"github.com/dmitrijs2005/experiences/internal/logging"
	"github.com/google/uuid"
)

// maxBodySize caps how much of a response body is read.
const maxBodySize = 4 << 20

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     logging.Logger
}

// NewHTTPClient builds a client for the API rooted at baseURL. A zero
// timeout leaves requests bounded only by their context.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		logger:     logger.With("component", "api"),
	}
}

// request describes one API call.
type request struct {
	method string
	path   string
	auth   bool
	body   any
}

// do performs r and normalizes the answer. Authenticated requests without a
// token fail with ErrNotAuthenticated before anything is sent.
func do[T any](ctx context.Context, c *HTTPClient, r request) (*Envelope[T], error) {
	var token string
	if r.auth {
		t, ok := c.tokens.Token()
		if !ok || t == "" {
			return nil, ErrNotAuthenticated
		}
		token = t
	}

	var reader io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if r.auth {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	c.logger.Debug(ctx, "api request", "method", r.method, "path", r.path, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w: %w", r.method, r.path, ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%s %s: failed to read response: %w: %w", r.method, r.path, ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, decodeErrorBody(body))
		c.logger.Debug(ctx, "api request failed",
			"method", r.method, "path", r.path, "status", resp.StatusCode, "code", apiErr.Code, "request_id", requestID)
		return nil, apiErr
	}

	return decodeEnvelope[T](body)
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*Envelope[models.AuthData], error) {
	return do[models.AuthData](ctx, c, request{method: http.MethodPost, path: "/auth/login", body: req})
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*Envelope[models.RegisterResult], error) {
	return do[models.RegisterResult](ctx, c, request{method: http.MethodPost, path: "/auth/register", body: req})
}

// WakeUp pings the backend so a cold instance starts spinning up. It is
// advisory: every failure is logged and dropped.
func (c *HTTPClient) WakeUp(ctx context.Context) {
	c.logger.Info(ctx, "waking up backend", "base_url", c.baseURL)
	if _, err := do[struct{}](ctx, c, request{method: http.MethodGet, path: "/auth/wakeUp"}); err != nil {
		c.logger.Warn(ctx, "wake up failed (non-blocking)", "error", err)
		return
	}
	c.logger.Info(ctx, "backend is awake")
}

func (c *HTTPClient) ListExperiences(ctx context.Context) (*Envelope[[]models.Experience], error) {
	return do[[]models.Experience](ctx, c, request{method: http.MethodGet, path: "/article"})
}

func (c *HTTPClient) GetExperience(ctx context.Context, id string) (*Envelope[models.Experience], error) {
	return do[models.Experience](ctx, c, request{method: http.MethodGet, path: experiencePath(id), auth: true})
}

func (c *HTTPClient) CreateExperience(ctx context.Context, draft models.ExperienceDraft) (*Envelope[models.Experience], error) {
	return do[models.Experience](ctx, c, request{method: http.MethodPost, path: "/experiences", auth: true, body: draft})
}

func (c *HTTPClient) UpdateExperience(ctx context.Context, id string, draft models.ExperienceDraft) (*Envelope[models.Experience], error) {
	return do[models.Experience](ctx, c, request{method: http.MethodPut, path: experiencePath(id), auth: true, body: draft})
}

func (c *HTTPClient) DeleteExperience(ctx context.Context, id string) error {
	_, err := do[struct{}](ctx, c, request{method: http.MethodDelete, path: experiencePath(id), auth: true})
	return err
}

func (c *HTTPClient) ListQuestions(ctx context.Context) (*Envelope[[]models.Question], error) {
	return do[[]models.Question](ctx, c, request{method: http.MethodGet, path: "/question"})
}

// GetProfile fetches the profile of userID. An empty id means the session
// carries no usable identity, which is treated like a missing session.
func (c *HTTPClient) GetProfile(ctx context.Context, userID string) (*Envelope[models.UserProfile], error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}
	return do[models.UserProfile](ctx, c, request{method: http.MethodGet, path: "/user/" + url.PathEscape(userID), auth: true})
}

func (c *HTTPClient) SendContact(ctx context.Context, msg models.ContactMessage) (*Envelope[struct{}], error) {
	return do[struct{}](ctx, c, request{method: http.MethodPost, path: "/contact", body: msg})
}

func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

func experiencePath(id string) string {
	if id == "" {
		return "/experiences"
	}
	return "/experiences/" + url.PathEscape(id)
}
