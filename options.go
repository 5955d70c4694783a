package ironnotify

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Options configures a Client. Fields can be populated from environment
// variables (env tags), a YAML file via OptionsFromFile, or a plain struct
// literal.
type Options struct {
	// APIKey authenticates against the notification API (required).
	// Format: ak_live_xxx or ak_test_xxx.
	APIKey string `env:"IRONNOTIFY_API_KEY"`
	// APIBaseURL is the base URL of the notification API.
	APIBaseURL string `env:"IRONNOTIFY_API_BASE_URL" envDefault:"https://api.ironnotify.com"`
	// WSURL is the WebSocket endpoint for real-time delivery. Reserved:
	// the current client only tracks connection state, it never dials.
	WSURL string `env:"IRONNOTIFY_WS_URL" envDefault:"wss://ws.ironnotify.com"`
	// Debug enables debug-level diagnostic logging when no custom logger
	// is supplied.
	Debug bool `env:"IRONNOTIFY_DEBUG" envDefault:"false"`
	// EnableOfflineQueue turns on local queuing of payloads that failed
	// immediate delivery.
	EnableOfflineQueue bool `env:"IRONNOTIFY_ENABLE_OFFLINE_QUEUE" envDefault:"true"`
	// MaxOfflineQueueSize bounds the offline queue; the oldest payload is
	// evicted when the bound is reached.
	MaxOfflineQueueSize int `env:"IRONNOTIFY_MAX_OFFLINE_QUEUE_SIZE" envDefault:"100"`
	// QueueStoragePath overrides the offline queue file location.
	QueueStoragePath string `env:"IRONNOTIFY_QUEUE_STORAGE_PATH"`
	// AutoReconnect enables automatic WebSocket reconnection. Reserved.
	AutoReconnect bool `env:"IRONNOTIFY_AUTO_RECONNECT" envDefault:"true"`
	// MaxReconnectAttempts bounds reconnection attempts. Reserved.
	MaxReconnectAttempts int `env:"IRONNOTIFY_MAX_RECONNECT_ATTEMPTS" envDefault:"5"`
	// ReconnectDelay is the base delay between reconnection attempts.
	// Reserved.
	ReconnectDelay time.Duration `env:"IRONNOTIFY_RECONNECT_DELAY" envDefault:"1s"`
	// HTTPTimeout bounds each individual API request.
	HTTPTimeout time.Duration `env:"IRONNOTIFY_HTTP_TIMEOUT" envDefault:"30s"`
	// FlushInterval is the period used by AutoFlush. Zero disables it.
	FlushInterval time.Duration `env:"IRONNOTIFY_FLUSH_INTERVAL" envDefault:"0"`
}

// DefaultOptions returns options with the given API key and production
// defaults for everything else.
func DefaultOptions(apiKey string) Options {
	return Options{
		APIKey:               apiKey,
		APIBaseURL:           "https://api.ironnotify.com",
		WSURL:                "wss://ws.ironnotify.com",
		EnableOfflineQueue:   true,
		MaxOfflineQueueSize:  100,
		AutoReconnect:        true,
		MaxReconnectAttempts: 5,
		ReconnectDelay:       time.Second,
		HTTPTimeout:          30 * time.Second,
	}
}

// OptionsFromEnv loads options from environment variables, reading a .env
// file first if one exists.
func OptionsFromEnv() (Options, error) {
	// The .env file is optional; a missing one is not an error.
	_ = godotenv.Load()

	var opts Options
	if err := env.Parse(&opts); err != nil {
		return Options{}, errors.Join(ErrParsingOptions, err)
	}
	return opts, nil
}

// optionsFile is the YAML shape of an options file. Pointer fields tell an
// absent key apart from an explicit zero, and durations are Go duration
// strings ("30s", "1m").
type optionsFile struct {
	APIKey               *string `yaml:"api_key"`
	APIBaseURL           *string `yaml:"api_base_url"`
	WSURL                *string `yaml:"ws_url"`
	Debug                *bool   `yaml:"debug"`
	EnableOfflineQueue   *bool   `yaml:"enable_offline_queue"`
	MaxOfflineQueueSize  *int    `yaml:"max_offline_queue_size"`
	QueueStoragePath     *string `yaml:"queue_storage_path"`
	AutoReconnect        *bool   `yaml:"auto_reconnect"`
	MaxReconnectAttempts *int    `yaml:"max_reconnect_attempts"`
	ReconnectDelay       *string `yaml:"reconnect_delay"`
	HTTPTimeout          *string `yaml:"http_timeout"`
	FlushInterval        *string `yaml:"flush_interval"`
}

// OptionsFromFile loads options from a YAML file. Fields absent from the
// file keep the production defaults.
func OptionsFromFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options file: %w", err)
	}

	var file optionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Options{}, errors.Join(ErrParsingOptions, err)
	}

	opts := DefaultOptions("")
	if file.APIKey != nil {
		opts.APIKey = *file.APIKey
	}
	if file.APIBaseURL != nil {
		opts.APIBaseURL = *file.APIBaseURL
	}
	if file.WSURL != nil {
		opts.WSURL = *file.WSURL
	}
	if file.Debug != nil {
		opts.Debug = *file.Debug
	}
	if file.EnableOfflineQueue != nil {
		opts.EnableOfflineQueue = *file.EnableOfflineQueue
	}
	if file.MaxOfflineQueueSize != nil {
		opts.MaxOfflineQueueSize = *file.MaxOfflineQueueSize
	}
	if file.QueueStoragePath != nil {
		opts.QueueStoragePath = *file.QueueStoragePath
	}
	if file.AutoReconnect != nil {
		opts.AutoReconnect = *file.AutoReconnect
	}
	if file.MaxReconnectAttempts != nil {
		opts.MaxReconnectAttempts = *file.MaxReconnectAttempts
	}
	if err := setDuration(&opts.ReconnectDelay, file.ReconnectDelay); err != nil {
		return Options{}, errors.Join(ErrParsingOptions, err)
	}
	if err := setDuration(&opts.HTTPTimeout, file.HTTPTimeout); err != nil {
		return Options{}, errors.Join(ErrParsingOptions, err)
	}
	if err := setDuration(&opts.FlushInterval, file.FlushInterval); err != nil {
		return Options{}, errors.Join(ErrParsingOptions, err)
	}
	return opts, nil
}

func setDuration(dst *time.Duration, raw *string) error {
	if raw == nil {
		return nil
	}
	d, err := time.ParseDuration(*raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", *raw, err)
	}
	*dst = d
	return nil
}

// ErrParsingOptions wraps failures to parse options from the environment or
// a file.
var ErrParsingOptions = errors.New("failed to parse client options")

// Validate reports the first fatal configuration problem, if any.
func (o Options) Validate() error {
	if o.APIKey == "" {
		return ErrAPIKeyRequired
	}
	return nil
}
