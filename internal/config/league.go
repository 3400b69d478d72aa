package config

import "fmt"

// LeagueConfig holds league-wide defaults applied when a tournament is
// created without explicit values. These were previously hardcoded in
// the mapping layer and now live in configuration.
type LeagueConfig struct {
	// DefaultMaxTeams is the tournament capacity used when none is given.
	DefaultMaxTeams int
	// DefaultRegistrationFee is the per-team registration fee used when none is given.
	DefaultRegistrationFee int
	// DefaultPrizePool is the prize pool used when none is given.
	DefaultPrizePool int
	// PointsPerWin is the number of standings points awarded for a win.
	PointsPerWin int
	// PointsPerDraw is the number of standings points awarded for a draw.
	PointsPerDraw int
	// SeedDemo enables seeding of demo tournaments on startup.
	SeedDemo bool
}

// LoadLeagueConfigFromEnv loads league configuration from environment variables.
func LoadLeagueConfigFromEnv() LeagueConfig {
	return LeagueConfig{
		DefaultMaxTeams:        GetEnvInt("LEAGUE_DEFAULT_MAX_TEAMS", 16),
		DefaultRegistrationFee: GetEnvInt("LEAGUE_DEFAULT_REGISTRATION_FEE", 500),
		DefaultPrizePool:       GetEnvInt("LEAGUE_DEFAULT_PRIZE_POOL", 10000),
		PointsPerWin:           GetEnvInt("LEAGUE_POINTS_PER_WIN", 3),
		PointsPerDraw:          GetEnvInt("LEAGUE_POINTS_PER_DRAW", 1),
		SeedDemo:               GetEnvBool("LEAGUE_SEED_DEMO", false),
	}
}

// Validate validates league configuration.
func (c LeagueConfig) Validate() error {
	if c.DefaultMaxTeams <= 0 {
		return fmt.Errorf("DefaultMaxTeams must be greater than 0")
	}
	if c.DefaultRegistrationFee < 0 {
		return fmt.Errorf("DefaultRegistrationFee must be non-negative")
	}
	if c.DefaultPrizePool < 0 {
		return fmt.Errorf("DefaultPrizePool must be non-negative")
	}
	if c.PointsPerWin < c.PointsPerDraw {
		return fmt.Errorf("PointsPerWin must not be less than PointsPerDraw")
	}
	return nil
}
