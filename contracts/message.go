package contracts

import (
	"time"

	"github.com/google/uuid"
)

// Message is the base interface for envelope messages
type Message interface {
	GetID() string
	GetTimestamp() time.Time
	GetSender() any
	GetTarget() any
}

// MessageBase provides common fields for all envelope messages
type MessageBase struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Sender    any       `json:"-"`
	Target    any       `json:"-"`
}

// NewMessageBase creates a new message base with generated ID and current timestamp
func NewMessageBase(sender any) MessageBase {
	return MessageBase{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC(),
		Sender:    sender,
	}
}

// GetID returns the message ID
func (m MessageBase) GetID() string {
	return m.ID
}

// GetTimestamp returns the message timestamp
func (m MessageBase) GetTimestamp() time.Time {
	return m.Timestamp
}

// GetSender returns the object that published the message, if recorded
func (m MessageBase) GetSender() any {
	return m.Sender
}

// GetTarget returns the intended recipient, if any. The messenger does not
// read this field; target filtering on publish is a separate concern.
func (m MessageBase) GetTarget() any {
	return m.Target
}
