package offlinequeue

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ironnotify/ironnotify-go/pkg/notification"
)

// Queue is a bounded FIFO backlog of notification payloads that failed
// immediate delivery. The in-memory slice is authoritative for the running
// process; every mutation triggers a best-effort full rewrite of the
// persisted image, and persistence failures are swallowed.
type Queue struct {
	mu       sync.Mutex
	payloads []notification.Payload

	maxSize int
	storage Storage
	logger  *slog.Logger
}

// Option configures a Queue.
type Option func(*Queue)

// WithStorage sets the persistence backend. A nil storage keeps the queue
// purely in-memory.
func WithStorage(storage Storage) Option {
	return func(q *Queue) {
		q.storage = storage
	}
}

// WithLogger sets the logger used for diagnostic output.
func WithLogger(logger *slog.Logger) Option {
	return func(q *Queue) {
		if logger != nil {
			q.logger = logger
		}
	}
}

// New creates a queue with the given capacity and loads any previously
// persisted backlog. A missing or corrupt image starts the queue empty;
// loading is never fatal.
func New(ctx context.Context, maxSize int, opts ...Option) (*Queue, error) {
	if maxSize <= 0 {
		return nil, ErrInvalidMaxSize
	}

	q := &Queue{
		maxSize: maxSize,
		storage: NewFileStorage(""),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(q)
	}

	if q.storage != nil {
		payloads, err := q.storage.Load(ctx)
		if err != nil {
			q.logger.LogAttrs(ctx, slog.LevelDebug, "failed to load offline queue, starting empty",
				slog.Any("error", err),
			)
		} else if len(payloads) > 0 {
			q.payloads = payloads
		}
	}
	return q, nil
}

// Add appends the payload to the tail of the queue. When the queue is at
// capacity the oldest element is evicted first, never the newest. The
// payload is cloned so later caller-side mutation cannot reach the backlog.
func (q *Queue) Add(ctx context.Context, payload notification.Payload) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.payloads) >= q.maxSize {
		q.payloads = q.payloads[1:]
		q.logger.LogAttrs(ctx, slog.LevelDebug, "offline queue full, dropping oldest notification")
	}
	q.payloads = append(q.payloads, payload.Clone())

	q.logger.LogAttrs(ctx, slog.LevelDebug, "notification queued for later delivery",
		slog.String("event_type", payload.EventType),
	)
	q.persistLocked(ctx)
}

// All returns a snapshot of the queued payloads, oldest-first. The lock is
// held only long enough to clone, so callers can iterate while the queue
// keeps accepting mutations.
func (q *Queue) All() []notification.Payload {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.snapshotLocked()
}

// Remove deletes the element at the given index. Out-of-bounds indexes are
// a silent no-op.
func (q *Queue) Remove(ctx context.Context, index int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if index < 0 || index >= len(q.payloads) {
		return
	}
	q.payloads = append(q.payloads[:index], q.payloads[index+1:]...)
	q.persistLocked(ctx)
}

// Clear empties the queue.
func (q *Queue) Clear(ctx context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.payloads = nil
	q.persistLocked(ctx)
}

// Size returns the number of queued payloads.
func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.payloads)
}

// IsEmpty reports whether the queue holds no payloads.
func (q *Queue) IsEmpty() bool {
	return q.Size() == 0
}

func (q *Queue) snapshotLocked() []notification.Payload {
	snapshot := make([]notification.Payload, len(q.payloads))
	copy(snapshot, q.payloads)
	return snapshot
}

// persistLocked rewrites the full image; the mutation is not complete until
// the rewrite ran, so the caller must hold q.mu. Failures are logged and
// swallowed; the in-memory state stays authoritative for the current
// process.
func (q *Queue) persistLocked(ctx context.Context) {
	if q.storage == nil {
		return
	}
	if err := q.storage.Save(ctx, q.snapshotLocked()); err != nil {
		q.logger.LogAttrs(ctx, slog.LevelDebug, "failed to persist offline queue",
			slog.Any("error", err),
		)
	}
}
