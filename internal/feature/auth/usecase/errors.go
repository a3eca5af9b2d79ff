// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrMissingFields is returned when a required signup field is blank.
	ErrMissingFields = errors.New("all fields are required")

	// ErrPasswordTooShort is returned when the password has fewer than the
	// minimum number of characters.
	ErrPasswordTooShort = errors.New("password is too short")

	// ErrInvalidEmail is returned when the email fails the format check.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrEmailTaken is returned when a user with the given email already exists.
	ErrEmailTaken = errors.New("email already in use")

	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords, so callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrMissingImage is returned when a profile update carries no image.
	ErrMissingImage = errors.New("profile picture is required")
)
