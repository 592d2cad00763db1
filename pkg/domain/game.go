package domain

import "time"

// Platform identifies the game library a record came from
type Platform string

// supported game platforms
const (
	PlatformSteam Platform = "steam"
	PlatformEpic  Platform = "epic"
)

// GameRecord represents a game in the tracked library. Identity is
// (Platform, ExternalID); importers overwrite mutable fields on re-sync.
type GameRecord struct {
	ID                   int64
	Platform             Platform
	ExternalID           string
	Title                string
	PlaytimeMinutes      int
	AchievementsUnlocked int
	AchievementsTotal    int
	Completed            bool
	LastSyncedAt         *time.Time
}

// CompletionPercent returns achievement completion in [0,100],
// zero when the game reports no achievements
func (g *GameRecord) CompletionPercent() float64 {
	if g.AchievementsTotal <= 0 {
		return 0
	}
	return float64(g.AchievementsUnlocked) / float64(g.AchievementsTotal) * 100
}
