package model

import "errors"

var (
	// ErrTournamentNotFound indicates that the requested tournament does not exist.
	ErrTournamentNotFound = errors.New("tournament not found")
	// ErrAlreadyJoined indicates that the team is already a member of the tournament.
	ErrAlreadyJoined = errors.New("team already joined")
	// ErrTournamentFull indicates that the tournament has reached its team capacity.
	ErrTournamentFull = errors.New("tournament is full")
	// ErrRegistrationClosed indicates a join attempt outside the registration window.
	ErrRegistrationClosed = errors.New("tournament registration is not open")
	// ErrInvalidTransition indicates a backwards or unknown status transition.
	ErrInvalidTransition = errors.New("invalid tournament status transition")
	// ErrInvalidName indicates that the provided tournament name is invalid (e.g., empty).
	ErrInvalidName = errors.New("invalid tournament name")
	// ErrInvalidDates indicates that the start date is after the end date.
	ErrInvalidDates = errors.New("start date must not be after end date")
	// ErrInvalidCapacity indicates a non-positive max_teams value.
	ErrInvalidCapacity = errors.New("max_teams must be greater than 0")
)
