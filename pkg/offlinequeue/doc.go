// Package offlinequeue provides the bounded, durable FIFO backlog that holds
// notifications which failed immediate delivery until connectivity returns.
//
// # Semantics
//
// The queue is capacity-bounded: adding beyond capacity evicts the oldest
// element first, so the backlog always holds the most recent payloads in
// oldest-first order. Every mutation (Add, Remove, Clear) rewrites the full
// persisted image before the mutation is considered complete. Persistence is
// best effort - storage failures are swallowed and the in-memory sequence
// stays authoritative for the running process. A missing or corrupt image
// loads as an empty queue, never an error.
//
// # Storage backends
//
// Persistence is pluggable through the Storage interface:
//
//   - FileStorage writes a single JSON array file (by default
//     ~/.ironnotify/offline_queue.json) using temp-file-then-rename so a
//     crash mid-write cannot truncate the previous image.
//   - RedisStorage keeps the same JSON image under one Redis key for
//     processes without a stable local filesystem.
//
// # Usage
//
//	queue, err := offlinequeue.New(ctx, 100,
//	    offlinequeue.WithStorage(offlinequeue.NewFileStorage("")),
//	)
//	if err != nil {
//	    // invalid capacity
//	}
//
//	queue.Add(ctx, payload)
//	for i, p := range queue.All() {
//	    // attempt redelivery, then queue.Remove(ctx, i) on success
//	}
//
// # Concurrency
//
// All operations are serialized behind a single mutex. All returns a cloned
// snapshot so callers never iterate the live slice during network calls.
package offlinequeue
