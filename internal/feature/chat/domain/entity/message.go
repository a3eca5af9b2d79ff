// Package entity defines the domain entities for the chat feature.
package entity

import "time"

// Message is one direct message between two users. Messages are immutable
// after creation. At least one of Text/Image is present; the usecase layer
// enforces that before persisting.
type Message struct {
	// ID is the unique identifier for the message.
	ID uint `gorm:"primaryKey" json:"_id"`

	// SenderID references the user that sent the message.
	SenderID uint `gorm:"index;not null" json:"senderId"`

	// ReceiverID references the user the message was sent to.
	ReceiverID uint `gorm:"index;not null" json:"receiverId"`

	// Text is the message body. May be empty for image-only messages.
	Text string `gorm:"size:4096" json:"text,omitempty"`

	// Image is the public URL of the attached image, if any.
	Image string `gorm:"size:512" json:"image,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
