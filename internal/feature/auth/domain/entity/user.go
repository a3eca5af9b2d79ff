// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account. JSON field names mirror the public
// API contract consumed by the frontend.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"_id"`

	// FullName is the display name shown to other users.
	FullName string `gorm:"size:255;not null" json:"fullName"`

	// Email is the login identifier. It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the bcrypt hash of the user's password. It is never
	// serialized into API responses.
	Password string `gorm:"size:255;not null" json:"-"`

	// ProfilePic is the avatar URL. Empty until the user uploads one.
	ProfilePic string `gorm:"size:512" json:"profilePic"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Public returns a copy of the user with the password hash stripped, safe to
// hand to handlers and the realtime layer.
func (u *User) Public() *User {
	pub := *u
	pub.Password = ""
	return &pub
}
