package notification

// SendResult is the outcome of a single delivery attempt. Exactly one of
// three shapes occurs: delivered (Success), rejected or unreachable
// (neither flag set, Error populated), or accepted into the local offline
// backlog (Queued, Error carries the transport failure reason).
type SendResult struct {
	Success        bool
	Queued         bool
	NotificationID string
	Error          string
}

// Succeeded creates a result for a delivered notification. The id is the
// server-assigned notification id and may be empty when the server response
// could not be decoded.
func Succeeded(id string) SendResult {
	return SendResult{Success: true, NotificationID: id}
}

// Failed creates a result for a delivery attempt that was not retained.
func Failed(reason string) SendResult {
	return SendResult{Error: reason}
}

// Enqueued creates a result for a payload accepted into the offline queue.
// The reason is the original transport failure, not a generic message, so
// callers can tell immediate acceptance apart from local backlog acceptance.
func Enqueued(reason string) SendResult {
	return SendResult{Queued: true, Error: reason}
}
