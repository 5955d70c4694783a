package transport

import "errors"

var (
	// ErrRequestFailed wraps HTTP-level failures from the notification API.
	ErrRequestFailed = errors.New("notification api request failed")

	// ErrDecodeResponse indicates the API responded with a body that could
	// not be decoded.
	ErrDecodeResponse = errors.New("failed to decode notification api response")
)
