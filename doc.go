// Package ironnotify is the Go SDK for the IronNotify notification service.
// Application code emits structured events ("order.created",
// "payment.failed") and the service turns them into user-visible alerts.
//
// The SDK hides network unreliability from the caller: a delivery attempt
// that fails while an offline queue is configured is accepted into a
// bounded, durable local backlog and replayed on Flush once connectivity
// returns. Send outcomes are values, not errors - only configuration and
// validation problems surface as Go errors.
//
// # Quick start
//
//	client, err := ironnotify.New(ironnotify.DefaultOptions("ak_live_xxxxx"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result := client.Notify(ctx, "order.created", "New Order Received")
//	if result.Success {
//	    log.Println("notification sent:", result.NotificationID)
//	}
//
// # Event builder
//
//	result := client.Event("payment.failed").
//	    WithTitle("Payment Failed").
//	    WithMessage("Payment could not be processed").
//	    WithSeverity(notification.SeverityError).
//	    WithMetadata("order_id", "1234").
//	    WithURLAction("Retry Payment", "/orders/1234/retry").
//	    ForUser("user-123").
//	    ExpiresIn(24 * time.Hour).
//	    Send(ctx)
//
//	if result.Queued {
//	    log.Println("notification queued for later:", result.Error)
//	}
//
// # Offline queue
//
// When enabled (the default), payloads that fail immediate delivery are
// appended to a capacity-bounded FIFO persisted as a single JSON file under
// the user's home directory. Flush drains the backlog while the service
// stays reachable; AutoFlush runs Flush on a fixed interval:
//
//	go client.AutoFlush(ctx, time.Minute)
//
// # Configuration
//
// Options can be built as a literal, loaded from environment variables
// (OptionsFromEnv, honoring a local .env file), or from a YAML file
// (OptionsFromFile). The API key is the only required setting.
//
// # Global client
//
// For applications that want a process-wide client, Init establishes an
// explicit singleton. Initialization is one-shot: a second Init fails with
// ErrAlreadyInitialized, and the package-level Notify, Event, and Flush
// return ErrNotInitialized until Init succeeds.
package ironnotify
