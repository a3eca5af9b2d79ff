// Package usecase implements the business logic for the chat feature.
package usecase

import "errors"

var (
	// ErrEmptyMessage is returned when a message carries neither text nor image.
	ErrEmptyMessage = errors.New("message must contain text or image")

	// ErrSelfMessage is returned when sender and receiver are the same user.
	ErrSelfMessage = errors.New("cannot send message to self")

	// ErrReceiverNotFound is returned when the receiver id does not resolve
	// to an existing user.
	ErrReceiverNotFound = errors.New("receiver not found")
)
