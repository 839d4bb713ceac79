package domain

// MessageEvent is an informational message raised by the build engine.
type MessageEvent struct {
	// SenderName is the name of the task that raised the message.
	SenderName string
	// Message is the raw message text.
	Message string
}
