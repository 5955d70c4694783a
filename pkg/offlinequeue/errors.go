package offlinequeue

import "errors"

var (
	// ErrCorruptImage indicates the persisted queue image could not be
	// decoded. The queue treats this as an empty image rather than failing.
	ErrCorruptImage = errors.New("offline queue image is corrupt")

	// ErrInvalidMaxSize is returned when a queue is constructed with a
	// non-positive capacity.
	ErrInvalidMaxSize = errors.New("offline queue max size must be positive")
)
