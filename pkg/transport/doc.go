// Package transport implements the HTTP wire layer for the IronNotify API:
// notification delivery, the reachability probe, and the retrieval surface
// (listing, unread counts, read receipts).
//
// The package deliberately exposes delivery outcomes as values rather than
// errors. Send always returns a notification.SendResult - a rejected request
// or an unreachable network becomes a failure result carrying a
// human-readable reason, so the delivery coordinator can decide whether to
// queue the payload for later. Only the retrieval methods return errors, as
// they have no offline fallback.
//
// Each call makes exactly one request bounded by the timeout configured at
// construction. Retries of failed deliveries are the offline queue's job,
// not the transport's.
//
// Requests carry Bearer authentication, a stable User-Agent, and a fresh
// X-Request-ID per attempt for server-side correlation.
package transport
