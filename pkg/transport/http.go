package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/ironnotify/ironnotify-go/pkg/notification"
)

const defaultUserAgent = "ironnotify-go/1.0"

// Client is the HTTP wire layer for the notification API. It performs
// exactly one request per call; retry of failed deliveries happens only
// through the offline queue flush path, never here.
type Client struct {
	baseURL   string
	apiKey    string
	userAgent string
	client    *http.Client
	logger    *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. Useful for custom transports,
// proxies, or testing.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// WithLogger sets the logger used for diagnostic output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// New creates a transport client. The timeout bounds each individual
// request; there is no cross-call cancellation beyond the caller's context.
func New(baseURL, apiKey string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL:   baseURL,
		apiKey:    apiKey,
		userAgent: defaultUserAgent,
		logger:    slog.Default(),
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type sendResponse struct {
	NotificationID string `json:"notificationId"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type countResponse struct {
	Count int `json:"count"`
}

// Send delivers one payload with a single POST to /api/v1/notify. The
// outcome is always expressed as a SendResult, never an error: transport
// failures are not fatal to the caller.
func (c *Client) Send(ctx context.Context, payload notification.Payload) notification.SendResult {
	c.logger.LogAttrs(ctx, slog.LevelDebug, "sending notification",
		slog.String("event_type", payload.EventType),
	)

	body, err := json.Marshal(payload)
	if err != nil {
		return notification.Failed(fmt.Sprintf("marshal payload: %v", err))
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/v1/notify", bytes.NewReader(body))
	if err != nil {
		return notification.Failed(err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return notification.Failed(err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var data sendResponse
		// Best effort: a success without a decodable body is still a success.
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			return notification.Succeeded("")
		}
		return notification.Succeeded(data.NotificationID)
	}

	var apiErr errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
		return notification.Failed(apiErr.Error)
	}
	return notification.Failed(fmt.Sprintf("HTTP %d", resp.StatusCode))
}

// IsOnline probes /health and reports reachability. It has no side effects
// and does not touch any delivery state.
func (c *Client) IsOnline(ctx context.Context) bool {
	req, err := c.newRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return false
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// ListOptions filters notification retrieval.
type ListOptions struct {
	Limit      int  // maximum records to return (0 = server default)
	Offset     int  // records to skip for pagination
	UnreadOnly bool // only return unread notifications
}

// Notifications retrieves notifications for the authenticated application.
func (c *Client) Notifications(ctx context.Context, opts ListOptions) ([]notification.Notification, error) {
	q := url.Values{}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Offset > 0 {
		q.Set("offset", strconv.Itoa(opts.Offset))
	}
	if opts.UnreadOnly {
		q.Set("unread_only", "true")
	}

	path := "/api/v1/notifications"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: HTTP %d", ErrRequestFailed, resp.StatusCode)
	}

	var notifications []notification.Notification
	if err := json.NewDecoder(resp.Body).Decode(&notifications); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return notifications, nil
}

// UnreadCount returns the number of unread notifications.
func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/v1/notifications/unread-count", nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("%w: HTTP %d", ErrRequestFailed, resp.StatusCode)
	}

	var data countResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	return data.Count, nil
}

// MarkAsRead marks a single notification as read. The bool reports whether
// the server acknowledged the update.
func (c *Client) MarkAsRead(ctx context.Context, notificationID string) (bool, error) {
	path := "/api/v1/notifications/" + url.PathEscape(notificationID) + "/read"
	return c.post(ctx, path)
}

// MarkAllAsRead marks all notifications as read.
func (c *Client) MarkAllAsRead(ctx context.Context) (bool, error) {
	return c.post(ctx, "/api/v1/notifications/read-all")
}

func (c *Client) post(ctx context.Context, path string) (bool, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}
