package ironnotify

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	opts := DefaultOptions("ak_live_12345")

	assert.Equal(t, "ak_live_12345", opts.APIKey)
	assert.Equal(t, "https://api.ironnotify.com", opts.APIBaseURL)
	assert.Equal(t, "wss://ws.ironnotify.com", opts.WSURL)
	assert.False(t, opts.Debug)
	assert.True(t, opts.EnableOfflineQueue)
	assert.Equal(t, 100, opts.MaxOfflineQueueSize)
	assert.True(t, opts.AutoReconnect)
	assert.Equal(t, 5, opts.MaxReconnectAttempts)
	assert.Equal(t, time.Second, opts.ReconnectDelay)
	assert.Equal(t, 30*time.Second, opts.HTTPTimeout)
	assert.NoError(t, opts.Validate())
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, Options{}.Validate(), ErrAPIKeyRequired)
	assert.NoError(t, Options{APIKey: "ak_test_12345"}.Validate())
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("IRONNOTIFY_API_KEY", "ak_test_env")
	t.Setenv("IRONNOTIFY_API_BASE_URL", "https://staging.ironnotify.com")
	t.Setenv("IRONNOTIFY_MAX_OFFLINE_QUEUE_SIZE", "25")
	t.Setenv("IRONNOTIFY_HTTP_TIMEOUT", "10s")
	t.Setenv("IRONNOTIFY_DEBUG", "true")

	opts, err := OptionsFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "ak_test_env", opts.APIKey)
	assert.Equal(t, "https://staging.ironnotify.com", opts.APIBaseURL)
	assert.Equal(t, 25, opts.MaxOfflineQueueSize)
	assert.Equal(t, 10*time.Second, opts.HTTPTimeout)
	assert.True(t, opts.Debug)
	// Unset variables fall back to defaults.
	assert.True(t, opts.EnableOfflineQueue)
	assert.Equal(t, "wss://ws.ironnotify.com", opts.WSURL)
}

func TestOptionsFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ironnotify.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api_key: ak_test_file
api_base_url: https://staging.ironnotify.com
max_offline_queue_size: 50
http_timeout: 15s
debug: true
`), 0o600))

	opts, err := OptionsFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "ak_test_file", opts.APIKey)
	assert.Equal(t, "https://staging.ironnotify.com", opts.APIBaseURL)
	assert.Equal(t, 50, opts.MaxOfflineQueueSize)
	assert.Equal(t, 15*time.Second, opts.HTTPTimeout)
	assert.True(t, opts.Debug)
	// Omitted fields keep production defaults.
	assert.True(t, opts.EnableOfflineQueue)
	assert.Equal(t, "wss://ws.ironnotify.com", opts.WSURL)
}

func TestOptionsFromFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := OptionsFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_key: [broken"), 0o600))
	_, err = OptionsFromFile(path)
	assert.ErrorIs(t, err, ErrParsingOptions)
}
