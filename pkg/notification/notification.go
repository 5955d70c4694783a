package notification

import "time"

// Severity represents the severity level of a notification.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeveritySuccess  Severity = "success"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// String returns the wire representation of the severity.
func (s Severity) String() string {
	return string(s)
}

// Valid reports whether s is one of the known severity levels.
func (s Severity) Valid() bool {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityError, SeverityCritical:
		return true
	}
	return false
}

// ConnectionState represents the coarse real-time connection state.
type ConnectionState string

const (
	StateDisconnected ConnectionState = "disconnected"
	StateConnecting   ConnectionState = "connecting"
	StateConnected    ConnectionState = "connected"
	StateReconnecting ConnectionState = "reconnecting"
)

// String returns the wire representation of the connection state.
func (s ConnectionState) String() string {
	return string(s)
}

// Action represents a call-to-action button attached to a notification.
// Exactly one of URL or Handler is expected to be set.
type Action struct {
	Label   string `json:"label"`
	URL     string `json:"url,omitempty"`
	Handler string `json:"action,omitempty"`
	Style   string `json:"style,omitempty"` // default, primary, secondary, danger
}

// NewAction creates an action with just a label and the default style.
func NewAction(label string) Action {
	return Action{Label: label, Style: "default"}
}

// ActionWithURL creates an action that opens the given URL.
func ActionWithURL(label, url string) Action {
	return Action{Label: label, URL: url, Style: "default"}
}

// ActionWithHandler creates an action dispatched to a named client-side handler.
func ActionWithHandler(label, handler string) Action {
	return Action{Label: label, Handler: handler, Style: "default"}
}

// WithStyle returns a copy of the action with the given visual style.
func (a Action) WithStyle(style string) Action {
	a.Style = style
	return a
}

// Payload describes one notification to be delivered. It is treated as
// immutable after construction; use Clone before retaining it across
// goroutines or storing it in the offline queue.
type Payload struct {
	EventType        string         `json:"eventType"`
	Title            string         `json:"title"`
	Message          string         `json:"message,omitempty"`
	Severity         Severity       `json:"severity,omitempty"`
	Metadata         map[string]any `json:"metadata,omitempty"`
	Actions          []Action       `json:"actions,omitempty"`
	UserID           string         `json:"userId,omitempty"`
	GroupKey         string         `json:"groupKey,omitempty"`
	DeduplicationKey string         `json:"deduplicationKey,omitempty"`
	ExpiresAt        *time.Time     `json:"expiresAt,omitempty"`
}

// NewPayload creates a payload with the default info severity.
func NewPayload(eventType, title string) Payload {
	return Payload{
		EventType: eventType,
		Title:     title,
		Severity:  SeverityInfo,
	}
}

// Clone returns a deep copy of the payload. The metadata map and actions
// slice are copied so the clone is isolated from later mutations of the
// original.
func (p Payload) Clone() Payload {
	c := p
	if p.Metadata != nil {
		c.Metadata = make(map[string]any, len(p.Metadata))
		for k, v := range p.Metadata {
			c.Metadata[k] = v
		}
	}
	if p.Actions != nil {
		c.Actions = make([]Action, len(p.Actions))
		copy(c.Actions, p.Actions)
	}
	if p.ExpiresAt != nil {
		t := *p.ExpiresAt
		c.ExpiresAt = &t
	}
	return c
}

// Notification is a notification record as returned by the server.
type Notification struct {
	ID        string         `json:"id"`
	EventType string         `json:"eventType"`
	Title     string         `json:"title"`
	Message   string         `json:"message,omitempty"`
	Severity  Severity       `json:"severity"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	Actions   []Action       `json:"actions,omitempty"`
	UserID    string         `json:"userId,omitempty"`
	GroupKey  string         `json:"groupKey,omitempty"`
	Read      bool           `json:"read"`
	CreatedAt time.Time      `json:"createdAt"`
	ExpiresAt *time.Time     `json:"expiresAt,omitempty"`
}

// IsExpired returns true if the notification has expired.
func (n *Notification) IsExpired() bool {
	if n.ExpiresAt == nil {
		return false
	}
	return time.Now().After(*n.ExpiresAt)
}
