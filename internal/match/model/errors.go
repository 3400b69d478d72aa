package model

import "errors"

var (
	// ErrMatchNotFound indicates that the requested match does not exist.
	ErrMatchNotFound = errors.New("match not found")
	// ErrSameTeam indicates that a match was scheduled with a team against itself.
	ErrSameTeam = errors.New("home and away teams must be distinct")
	// ErrInvalidTransition indicates an illegal status transition.
	ErrInvalidTransition = errors.New("invalid match status transition")
	// ErrMatchNotLive indicates an operation that requires a LIVE match.
	ErrMatchNotLive = errors.New("match is not live")
	// ErrInvalidScore indicates a negative score.
	ErrInvalidScore = errors.New("scores must be non-negative")
	// ErrInvalidEventType indicates an unknown event type.
	ErrInvalidEventType = errors.New("invalid event type")
	// ErrEventTeamNotPlaying indicates an event attributed to a team not playing in the match.
	ErrEventTeamNotPlaying = errors.New("event team is not playing in this match")
)
