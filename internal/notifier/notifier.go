package notifier

// Notifier defines the interface for posting one announcement message.
type Notifier interface {
	// Notify delivers a single formatted message. A returned error means
	// the message was not delivered; the caller decides whether to retry
	// on a later run.
	Notify(message string) error
}
