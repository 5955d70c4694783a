package ironnotify

import "errors"

var (
	// ErrAPIKeyRequired is returned when a client is constructed without an
	// API key. This is the only fatal configuration error in the SDK.
	ErrAPIKeyRequired = errors.New("api key is required")

	// ErrTitleRequired is returned when a notification is built without a
	// title. Validation failures never reach the queue or the transport.
	ErrTitleRequired = errors.New("notification title is required")

	// ErrAlreadyInitialized is returned when the global client is
	// initialized a second time.
	ErrAlreadyInitialized = errors.New("global client already initialized")

	// ErrNotInitialized is returned when the global client is used before
	// Init or InitWithOptions.
	ErrNotInitialized = errors.New("global client not initialized: call Init first")
)
