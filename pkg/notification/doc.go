// Package notification defines the wire-level value types shared by the
// IronNotify SDK: the notification payload, its actions and severity levels,
// the server-side notification record, and the tri-state send result.
//
// The types carry no behavior beyond construction helpers and copying; all
// delivery logic lives in the root ironnotify package and the transport and
// offline queue packages.
//
// # Wire shape
//
// Payload marshals to the JSON shape the IronNotify API accepts: camelCase
// keys, optional fields omitted rather than null, and RFC 3339 timestamps:
//
//	{
//	  "eventType": "payment.failed",
//	  "title": "Payment Failed",
//	  "severity": "error",
//	  "metadata": {"order_id": "1234"},
//	  "expiresAt": "2026-01-02T15:04:05Z"
//	}
//
// # Immutability
//
// A Payload is treated as immutable once built. Clone produces a deep copy
// (metadata map and actions slice included) and is used by the offline queue
// so that queued payloads are isolated from caller-side mutation.
package notification
