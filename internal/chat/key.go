// Package chat derives the deterministic room codes consumed by the
// messaging service. Room storage and message delivery live outside
// this service; only the key contract is owned here.
package chat

import "fmt"

// Room types understood by the messaging service.
const (
	RoomTypeTeam  = "TEAM"
	RoomTypeMatch = "MATCH"
)

// TeamKey returns the room code for a pair of teams, e.g. "TEAM-1-2".
// The code is order independent: the lower team id always comes first.
func TeamKey(teamA, teamB uint) string {
	if teamB < teamA {
		teamA, teamB = teamB, teamA
	}
	return fmt.Sprintf("TEAM-%d-%d", teamA, teamB)
}

// MatchKey returns the room code for a match, e.g. "MATCH-10".
func MatchKey(matchID uint) string {
	return fmt.Sprintf("MATCH-%d", matchID)
}
