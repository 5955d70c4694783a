package notification_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironnotify/ironnotify-go/pkg/notification"
)

func TestNewPayload_Defaults(t *testing.T) {
	t.Parallel()

	p := notification.NewPayload("order.created", "New Order")

	assert.Equal(t, "order.created", p.EventType)
	assert.Equal(t, "New Order", p.Title)
	assert.Equal(t, notification.SeverityInfo, p.Severity)
	assert.Nil(t, p.Metadata)
	assert.Nil(t, p.Actions)
	assert.Nil(t, p.ExpiresAt)
}

func TestPayload_JSONShape(t *testing.T) {
	t.Parallel()

	t.Run("optional fields omitted", func(t *testing.T) {
		t.Parallel()

		p := notification.NewPayload("order.created", "New Order")
		data, err := json.Marshal(p)
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))

		assert.Equal(t, "order.created", raw["eventType"])
		assert.Equal(t, "New Order", raw["title"])
		assert.Equal(t, "info", raw["severity"])
		assert.NotContains(t, raw, "message")
		assert.NotContains(t, raw, "metadata")
		assert.NotContains(t, raw, "actions")
		assert.NotContains(t, raw, "userId")
		assert.NotContains(t, raw, "groupKey")
		assert.NotContains(t, raw, "deduplicationKey")
		assert.NotContains(t, raw, "expiresAt")
	})

	t.Run("camelCase keys and RFC3339 expiry", func(t *testing.T) {
		t.Parallel()

		expiry := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)
		p := notification.Payload{
			EventType:        "payment.failed",
			Title:            "Payment Failed",
			Message:          "Card declined",
			Severity:         notification.SeverityError,
			Metadata:         map[string]any{"order_id": "1234"},
			Actions:          []notification.Action{notification.ActionWithURL("Retry", "/retry")},
			UserID:           "user-123",
			GroupKey:         "payments",
			DeduplicationKey: "pay-1234",
			ExpiresAt:        &expiry,
		}

		data, err := json.Marshal(p)
		require.NoError(t, err)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(data, &raw))

		assert.Equal(t, "user-123", raw["userId"])
		assert.Equal(t, "payments", raw["groupKey"])
		assert.Equal(t, "pay-1234", raw["deduplicationKey"])
		assert.Equal(t, "2026-01-02T15:04:05Z", raw["expiresAt"])
	})
}

func TestPayload_Clone(t *testing.T) {
	t.Parallel()

	expiry := time.Now().Add(time.Hour)
	p := notification.Payload{
		EventType: "order.created",
		Title:     "New Order",
		Metadata:  map[string]any{"order_id": "1234"},
		Actions:   []notification.Action{notification.NewAction("View")},
		ExpiresAt: &expiry,
	}

	c := p.Clone()
	require.Equal(t, p, c)

	// Mutating the original must not reach the clone.
	p.Metadata["order_id"] = "9999"
	p.Actions[0].Label = "Changed"
	*p.ExpiresAt = expiry.Add(time.Hour)

	assert.Equal(t, "1234", c.Metadata["order_id"])
	assert.Equal(t, "View", c.Actions[0].Label)
	assert.Equal(t, expiry, *c.ExpiresAt)
}

func TestAction_Constructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		action notification.Action
		want   notification.Action
	}{
		{
			name:   "label only",
			action: notification.NewAction("Dismiss"),
			want:   notification.Action{Label: "Dismiss", Style: "default"},
		},
		{
			name:   "with url",
			action: notification.ActionWithURL("Open", "https://example.com"),
			want:   notification.Action{Label: "Open", URL: "https://example.com", Style: "default"},
		},
		{
			name:   "with handler",
			action: notification.ActionWithHandler("Retry", "retry_payment"),
			want:   notification.Action{Label: "Retry", Handler: "retry_payment", Style: "default"},
		},
		{
			name:   "style override",
			action: notification.NewAction("Delete").WithStyle("danger"),
			want:   notification.Action{Label: "Delete", Style: "danger"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.action)
		})
	}
}

func TestSeverity_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range []notification.Severity{
		notification.SeverityInfo,
		notification.SeveritySuccess,
		notification.SeverityWarning,
		notification.SeverityError,
		notification.SeverityCritical,
	} {
		assert.True(t, s.Valid(), s.String())
	}

	assert.False(t, notification.Severity("fatal").Valid())
}

func TestSendResult_Constructors(t *testing.T) {
	t.Parallel()

	success := notification.Succeeded("notif-123")
	assert.True(t, success.Success)
	assert.False(t, success.Queued)
	assert.Equal(t, "notif-123", success.NotificationID)
	assert.Empty(t, success.Error)

	failure := notification.Failed("connection refused")
	assert.False(t, failure.Success)
	assert.False(t, failure.Queued)
	assert.Equal(t, "connection refused", failure.Error)

	queued := notification.Enqueued("connection refused")
	assert.False(t, queued.Success)
	assert.True(t, queued.Queued)
	assert.Equal(t, "connection refused", queued.Error)
}

func TestNotification_IsExpired(t *testing.T) {
	t.Parallel()

	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Minute)

	assert.False(t, (&notification.Notification{}).IsExpired())
	assert.True(t, (&notification.Notification{ExpiresAt: &past}).IsExpired())
	assert.False(t, (&notification.Notification{ExpiresAt: &future}).IsExpired())
}
