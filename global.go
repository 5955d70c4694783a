package ironnotify

import (
	"context"
	"sync"

	"github.com/ironnotify/ironnotify-go/pkg/notification"
)

// The global client is an explicit opt-in convenience: nothing in the SDK
// initializes it implicitly, and a second initialization fails instead of
// silently replacing the first.
var (
	globalMu     sync.Mutex
	globalClient *Client
)

// Init initializes the global client with an API key and default options.
// Returns ErrAlreadyInitialized if a global client already exists.
func Init(apiKey string) error {
	return InitWithOptions(DefaultOptions(apiKey))
}

// InitWithOptions initializes the global client with full options.
func InitWithOptions(opts Options, copts ...ClientOption) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalClient != nil {
		return ErrAlreadyInitialized
	}

	client, err := New(opts, copts...)
	if err != nil {
		return err
	}
	globalClient = client
	return nil
}

// Default returns the global client, or ErrNotInitialized before Init.
func Default() (*Client, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalClient == nil {
		return nil, ErrNotInitialized
	}
	return globalClient, nil
}

// Notify sends a simple notification through the global client.
func Notify(ctx context.Context, eventType, title string) (notification.SendResult, error) {
	client, err := Default()
	if err != nil {
		return notification.SendResult{}, err
	}
	return client.Notify(ctx, eventType, title), nil
}

// Event starts a fluent builder on the global client.
func Event(eventType string) (*EventBuilder, error) {
	client, err := Default()
	if err != nil {
		return nil, err
	}
	return client.Event(eventType), nil
}

// Flush drains the global client's offline queue.
func Flush(ctx context.Context) error {
	client, err := Default()
	if err != nil {
		return err
	}
	client.Flush(ctx)
	return nil
}

// resetGlobal clears the global client. Test use only.
func resetGlobal() {
	globalMu.Lock()
	globalClient = nil
	globalMu.Unlock()
}
