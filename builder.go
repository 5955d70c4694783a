package ironnotify

import (
	"context"
	"time"

	"github.com/ironnotify/ironnotify-go/pkg/notification"
)

// EventBuilder assembles a notification payload with a fluent API. Obtain
// one from Client.Event; a builder is not safe for concurrent use.
type EventBuilder struct {
	client *Client

	eventType string
	title     string
	message   string
	severity  notification.Severity
	metadata  map[string]any
	actions   []notification.Action
	userID    string
	groupKey  string
	dedupKey  string
	expiresAt *time.Time
}

func newEventBuilder(client *Client, eventType string) *EventBuilder {
	return &EventBuilder{
		client:    client,
		eventType: eventType,
		severity:  notification.SeverityInfo,
	}
}

// WithTitle sets the notification title. A title is required to build.
func (b *EventBuilder) WithTitle(title string) *EventBuilder {
	b.title = title
	return b
}

// WithMessage sets the notification body text.
func (b *EventBuilder) WithMessage(message string) *EventBuilder {
	b.message = message
	return b
}

// WithSeverity sets the severity level.
func (b *EventBuilder) WithSeverity(severity notification.Severity) *EventBuilder {
	b.severity = severity
	return b
}

// WithMetadata adds one metadata entry.
func (b *EventBuilder) WithMetadata(key string, value any) *EventBuilder {
	if b.metadata == nil {
		b.metadata = make(map[string]any)
	}
	b.metadata[key] = value
	return b
}

// WithAction adds an action button.
func (b *EventBuilder) WithAction(action notification.Action) *EventBuilder {
	b.actions = append(b.actions, action)
	return b
}

// WithURLAction adds an action button that opens a URL.
func (b *EventBuilder) WithURLAction(label, url string) *EventBuilder {
	return b.WithAction(notification.ActionWithURL(label, url))
}

// WithHandlerAction adds an action button dispatched to a named handler.
func (b *EventBuilder) WithHandlerAction(label, handler string) *EventBuilder {
	return b.WithAction(notification.ActionWithHandler(label, handler))
}

// ForUser targets the notification at a specific user.
func (b *EventBuilder) ForUser(userID string) *EventBuilder {
	b.userID = userID
	return b
}

// WithGroupKey groups related notifications under one key.
func (b *EventBuilder) WithGroupKey(groupKey string) *EventBuilder {
	b.groupKey = groupKey
	return b
}

// WithDeduplicationKey sets the server-side deduplication key. The key is
// passed through as-is; the client does not deduplicate locally.
func (b *EventBuilder) WithDeduplicationKey(key string) *EventBuilder {
	b.dedupKey = key
	return b
}

// ExpiresIn sets the expiry to the given duration from now.
func (b *EventBuilder) ExpiresIn(d time.Duration) *EventBuilder {
	t := time.Now().Add(d)
	b.expiresAt = &t
	return b
}

// ExpiresAt sets an absolute expiry time.
func (b *EventBuilder) ExpiresAt(t time.Time) *EventBuilder {
	b.expiresAt = &t
	return b
}

// Build validates the builder and returns the finished payload. A missing
// title fails with ErrTitleRequired before anything reaches the transport.
func (b *EventBuilder) Build() (notification.Payload, error) {
	if b.title == "" {
		return notification.Payload{}, ErrTitleRequired
	}

	payload := notification.Payload{
		EventType:        b.eventType,
		Title:            b.title,
		Message:          b.message,
		Severity:         b.severity,
		UserID:           b.userID,
		GroupKey:         b.groupKey,
		DeduplicationKey: b.dedupKey,
		ExpiresAt:        b.expiresAt,
	}
	if len(b.metadata) > 0 {
		payload.Metadata = b.metadata
	}
	if len(b.actions) > 0 {
		payload.Actions = b.actions
	}
	return payload, nil
}

// Send builds the payload and delivers it through the client. A validation
// failure is returned as a failed result without any transport attempt.
func (b *EventBuilder) Send(ctx context.Context) notification.SendResult {
	payload, err := b.Build()
	if err != nil {
		return notification.Failed(err.Error())
	}
	return b.client.SendPayload(ctx, payload)
}
