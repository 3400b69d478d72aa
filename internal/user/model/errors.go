package model

import "errors"

var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken indicates that a user with the given email already exists.
	ErrEmailTaken = errors.New("email is already registered")
	// ErrInvalidEmail indicates that the provided email is invalid (e.g., empty).
	ErrInvalidEmail = errors.New("invalid email")
	// ErrInvalidFullName indicates that the provided full name is invalid (e.g., empty).
	ErrInvalidFullName = errors.New("invalid full name")
)
