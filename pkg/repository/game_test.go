package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskhub/pkg/domain"
)

func TestGameRepository_UpsertGame(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	game := &domain.GameRecord{
		Platform:             domain.PlatformSteam,
		ExternalID:           "440",
		Title:                "Team Fortress 2",
		PlaytimeMinutes:      1200,
		AchievementsUnlocked: 10,
		AchievementsTotal:    520,
	}
	require.NoError(t, repos.Game.UpsertGame(context.Background(), game))

	games, err := repos.Game.ListGames(context.Background(), domain.PlatformSteam)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Team Fortress 2", games[0].Title)
	assert.NotNil(t, games[0].LastSyncedAt)

	t.Run("resync refreshes counters", func(t *testing.T) {
		update := &domain.GameRecord{
			Platform:             domain.PlatformSteam,
			ExternalID:           "440",
			Title:                "Team Fortress 2",
			PlaytimeMinutes:      1300,
			AchievementsUnlocked: 12,
			AchievementsTotal:    520,
		}
		require.NoError(t, repos.Game.UpsertGame(context.Background(), update))

		games, err := repos.Game.ListGames(context.Background(), domain.PlatformSteam)
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, 1300, games[0].PlaytimeMinutes)
		assert.Equal(t, 12, games[0].AchievementsUnlocked)
	})

	t.Run("resync preserves user-set completed flag", func(t *testing.T) {
		games, err := repos.Game.ListGames(context.Background(), domain.PlatformSteam)
		require.NoError(t, err)
		require.NoError(t, repos.Game.SetGameCompleted(context.Background(), games[0].ID, true))

		update := &domain.GameRecord{
			Platform:        domain.PlatformSteam,
			ExternalID:      "440",
			Title:           "Team Fortress 2",
			PlaytimeMinutes: 1400,
		}
		require.NoError(t, repos.Game.UpsertGame(context.Background(), update))

		games, err = repos.Game.ListGames(context.Background(), domain.PlatformSteam)
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.True(t, games[0].Completed)
		assert.Equal(t, 1400, games[0].PlaytimeMinutes)
	})

	t.Run("resync keeps a hand-edited title", func(t *testing.T) {
		renamed := &domain.GameRecord{
			Platform:   domain.PlatformEpic,
			ExternalID: "fortnite",
			Title:      "",
		}
		require.NoError(t, repos.Game.UpsertGame(context.Background(), renamed))

		// importer supplies a title for a row that had none
		withTitle := &domain.GameRecord{
			Platform:   domain.PlatformEpic,
			ExternalID: "fortnite",
			Title:      "Fortnite",
		}
		require.NoError(t, repos.Game.UpsertGame(context.Background(), withTitle))

		games, err := repos.Game.ListGames(context.Background(), domain.PlatformEpic)
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, "Fortnite", games[0].Title)

		// but an existing non-empty title is never overwritten
		rename := &domain.GameRecord{
			Platform:   domain.PlatformEpic,
			ExternalID: "fortnite",
			Title:      "Fortnite: Battle Royale",
		}
		require.NoError(t, repos.Game.UpsertGame(context.Background(), rename))

		games, err = repos.Game.ListGames(context.Background(), domain.PlatformEpic)
		require.NoError(t, err)
		require.Len(t, games, 1)
		assert.Equal(t, "Fortnite", games[0].Title)
	})
}

func TestGameRepository_ListIncompleteGames(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	done := &domain.GameRecord{Platform: domain.PlatformSteam, ExternalID: "1", Title: "Alpha"}
	pending := &domain.GameRecord{Platform: domain.PlatformSteam, ExternalID: "2", Title: "Beta"}
	require.NoError(t, repos.Game.UpsertGame(context.Background(), done))
	require.NoError(t, repos.Game.UpsertGame(context.Background(), pending))

	games, err := repos.Game.ListGames(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, games, 2)
	require.NoError(t, repos.Game.SetGameCompleted(context.Background(), games[0].ID, true))

	incomplete, err := repos.Game.ListIncompleteGames(context.Background())
	require.NoError(t, err)
	require.Len(t, incomplete, 1)
	assert.Equal(t, "Beta", incomplete[0].Title)
}
