package ironnotify

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/ironnotify/ironnotify-go/pkg/notification"
	"github.com/ironnotify/ironnotify-go/pkg/offlinequeue"
	"github.com/ironnotify/ironnotify-go/pkg/transport"
)

// Transport is the wire-layer collaborator consumed by the client. It is
// satisfied by *transport.Client; test doubles implement it to exercise the
// delivery logic without a network.
type Transport interface {
	// Send performs exactly one delivery attempt.
	Send(ctx context.Context, payload notification.Payload) notification.SendResult

	// IsOnline is a reachability probe with no side effects.
	IsOnline(ctx context.Context) bool

	Notifications(ctx context.Context, opts transport.ListOptions) ([]notification.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkAsRead(ctx context.Context, notificationID string) (bool, error)
	MarkAllAsRead(ctx context.Context) (bool, error)
}

// Client sends notifications to the IronNotify API, queuing them locally
// when the network is down and draining the backlog on Flush.
type Client struct {
	opts      Options
	transport Transport
	queue     *offlinequeue.Queue
	logger    *slog.Logger

	// is-online and connection state are guarded independently on purpose:
	// they are observed by different callers and the original contract
	// makes no joint-atomicity promise between them.
	onlineMu sync.RWMutex
	isOnline bool

	connMu    sync.RWMutex
	connState notification.ConnectionState

	// queueSet records that WithQueue was applied, so an explicit nil queue
	// disables queuing instead of being replaced by the default.
	queueSet bool
}

// ClientOption overrides a collaborator on the client.
type ClientOption func(*Client)

// WithTransport replaces the default HTTP transport.
func WithTransport(t Transport) ClientOption {
	return func(c *Client) {
		if t != nil {
			c.transport = t
		}
	}
}

// WithQueue replaces the default offline queue. Pass nil to disable
// queuing regardless of Options.EnableOfflineQueue.
func WithQueue(q *offlinequeue.Queue) ClientOption {
	return func(c *Client) {
		c.queue = q
		c.queueSet = true
	}
}

// WithLogger sets the logger used for diagnostic output.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client. An empty API key is the only fatal configuration
// error; everything reachability-related degrades into queued or failed
// send results at call time instead.
func New(opts Options, copts ...ClientOption) (*Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		opts:      opts,
		isOnline:  true,
		connState: notification.StateDisconnected,
	}

	if opts.Debug {
		c.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		c.logger = slog.Default()
	}

	for _, opt := range copts {
		opt(c)
	}

	if c.transport == nil {
		c.transport = transport.New(opts.APIBaseURL, opts.APIKey, opts.HTTPTimeout,
			transport.WithLogger(c.logger),
		)
	}

	if !c.queueSet && opts.EnableOfflineQueue {
		maxSize := opts.MaxOfflineQueueSize
		if maxSize <= 0 {
			maxSize = 100
		}
		queue, err := offlinequeue.New(context.Background(), maxSize,
			offlinequeue.WithStorage(offlinequeue.NewFileStorage(opts.QueueStoragePath)),
			offlinequeue.WithLogger(c.logger),
		)
		if err != nil {
			return nil, err
		}
		c.queue = queue
	}

	c.logger.LogAttrs(context.Background(), slog.LevelDebug, "ironnotify client initialized")
	return c, nil
}

// Notify sends a simple notification with the default info severity.
func (c *Client) Notify(ctx context.Context, eventType, title string) notification.SendResult {
	payload := notification.NewPayload(eventType, title)
	return c.SendPayload(ctx, payload)
}

// NotifyWithOptions sends a notification with a message, severity, and
// metadata in one call. An empty severity defaults to info.
func (c *Client) NotifyWithOptions(ctx context.Context, eventType, title, message string, severity notification.Severity, metadata map[string]any) notification.SendResult {
	payload := notification.NewPayload(eventType, title)
	payload.Message = message
	if severity != "" {
		payload.Severity = severity
	}
	payload.Metadata = metadata
	return c.SendPayload(ctx, payload)
}

// Event starts a fluent builder for the given event type.
func (c *Client) Event(eventType string) *EventBuilder {
	return newEventBuilder(c, eventType)
}

// SendPayload performs one delivery attempt for the payload. On success the
// transport result is returned unchanged. On failure with an offline queue
// configured, the payload is queued, the client is marked offline, and the
// result reports Queued with the original transport failure reason. Without
// a queue the failure is returned as-is and nothing is retained. There is
// never a synchronous retry; redelivery happens only through Flush.
func (c *Client) SendPayload(ctx context.Context, payload notification.Payload) notification.SendResult {
	result := c.transport.Send(ctx, payload)
	if result.Success {
		return result
	}

	if c.queue != nil {
		c.queue.Add(ctx, payload)
		c.setOnline(false)
		return notification.Enqueued(result.Error)
	}
	return result
}

// Flush drains the offline queue while the transport stays reachable. It is
// a silent no-op when no queue is configured, the queue is empty, or the
// reachability probe fails.
//
// The backlog snapshot is walked newest-first and the sweep stops at the
// first failed attempt, leaving the remaining older payloads untouched for
// a future flush. A transient failure on a newer payload therefore keeps
// older, possibly deliverable payloads queued; callers relying on queue
// draining behavior should account for that traversal order.
func (c *Client) Flush(ctx context.Context) {
	if c.queue == nil || c.queue.IsEmpty() {
		return
	}
	if !c.transport.IsOnline(ctx) {
		return
	}

	c.setOnline(true)

	snapshot := c.queue.All()
	for i := len(snapshot) - 1; i >= 0; i-- {
		result := c.transport.Send(ctx, snapshot[i])
		if !result.Success {
			break
		}
		// Removing at i leaves the not-yet-visited lower indexes stable.
		c.queue.Remove(ctx, i)
	}
}

// AutoFlush calls Flush on the given interval until the context is
// canceled. It blocks; run it in a goroutine. A non-positive interval falls
// back to Options.FlushInterval, and if that is also unset AutoFlush
// returns immediately.
func (c *Client) AutoFlush(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = c.opts.FlushInterval
	}
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Flush(ctx)
		}
	}
}

// Queue returns the offline queue, or nil when queuing is disabled.
func (c *Client) Queue() *offlinequeue.Queue {
	return c.queue
}

// IsOnline reports the client's last observed delivery reachability. It is
// toggled by send and flush outcomes, not by a live probe.
func (c *Client) IsOnline() bool {
	c.onlineMu.RLock()
	defer c.onlineMu.RUnlock()
	return c.isOnline
}

func (c *Client) setOnline(online bool) {
	c.onlineMu.Lock()
	c.isOnline = online
	c.onlineMu.Unlock()
}

// ConnectionState returns the current real-time connection state.
func (c *Client) ConnectionState() notification.ConnectionState {
	c.connMu.RLock()
	defer c.connMu.RUnlock()
	return c.connState
}

// Connect marks the real-time connection as established. No socket is
// dialed; real-time delivery is not implemented and only the observable
// state changes.
func (c *Client) Connect() {
	c.connMu.Lock()
	c.connState = notification.StateConnected
	c.connMu.Unlock()

	c.logger.LogAttrs(context.Background(), slog.LevelDebug, "connected",
		slog.String("state", notification.StateConnected.String()),
	)
}

// Disconnect marks the real-time connection as closed.
func (c *Client) Disconnect() {
	c.connMu.Lock()
	c.connState = notification.StateDisconnected
	c.connMu.Unlock()
}

// SubscribeToUser registers interest in a user's notifications. Currently a
// no-op beyond diagnostics.
func (c *Client) SubscribeToUser(ctx context.Context, userID string) {
	c.logger.LogAttrs(ctx, slog.LevelDebug, "subscribed to user notifications",
		slog.String("user_id", userID),
	)
}

// SubscribeToApp registers interest in app-wide notifications. Currently a
// no-op beyond diagnostics.
func (c *Client) SubscribeToApp(ctx context.Context) {
	c.logger.LogAttrs(ctx, slog.LevelDebug, "subscribed to app notifications")
}

// Notifications retrieves notifications from the server.
func (c *Client) Notifications(ctx context.Context, opts transport.ListOptions) ([]notification.Notification, error) {
	return c.transport.Notifications(ctx, opts)
}

// UnreadCount returns the number of unread notifications.
func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	return c.transport.UnreadCount(ctx)
}

// MarkAsRead marks a single notification as read.
func (c *Client) MarkAsRead(ctx context.Context, notificationID string) (bool, error) {
	return c.transport.MarkAsRead(ctx, notificationID)
}

// MarkAllAsRead marks all notifications as read.
func (c *Client) MarkAllAsRead(ctx context.Context) (bool, error) {
	return c.transport.MarkAllAsRead(ctx)
}
