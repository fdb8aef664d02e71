package contracts

// Envelope wraps a single typed payload with standard message metadata.
type Envelope[T any] struct {
	MessageBase
	Content T `json:"content"`
}

// NewEnvelope creates an envelope around content with generated metadata.
func NewEnvelope[T any](sender any, content T) *Envelope[T] {
	return &Envelope[T]{
		MessageBase: NewMessageBase(sender),
		Content:     content,
	}
}

// NotificationMessage carries a plain string notification.
type NotificationMessage struct {
	MessageBase
	Notification string `json:"notification"`
}

// NewNotificationMessage creates a notification message.
func NewNotificationMessage(sender any, notification string) *NotificationMessage {
	return &NotificationMessage{
		MessageBase:  NewMessageBase(sender),
		Notification: notification,
	}
}
