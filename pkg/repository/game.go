package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"deskhub/pkg/domain"
)

// GameRepository handles game library database operations.
// Rows are produced by the platform importers; identity is (platform, external_id).
type GameRepository struct {
	db *sqlx.DB
}

// gameSQL represents a game record for SQL operations
type gameSQL struct {
	ID                   int64      `db:"id"`
	Platform             string     `db:"platform"`
	ExternalID           string     `db:"external_id"`
	Title                string     `db:"title"`
	PlaytimeMinutes      int        `db:"playtime_minutes"`
	AchievementsUnlocked int        `db:"achievements_unlocked"`
	AchievementsTotal    int        `db:"achievements_total"`
	Completed            bool       `db:"completed"`
	LastSyncedAt         *time.Time `db:"last_synced_at"`
}

// NewGameRepository creates a new game repository
func NewGameRepository(database *sqlx.DB) *GameRepository {
	return &GameRepository{db: database}
}

// UpsertGame inserts or updates a game record. Re-syncing overwrites playtime
// and achievement counters but preserves the completed flag and a non-empty
// title, both of which the user may have set by hand.
func (r *GameRepository) UpsertGame(ctx context.Context, game *domain.GameRecord) error {
	sqlGame := &gameSQL{
		Platform:             string(game.Platform),
		ExternalID:           game.ExternalID,
		Title:                game.Title,
		PlaytimeMinutes:      game.PlaytimeMinutes,
		AchievementsUnlocked: game.AchievementsUnlocked,
		AchievementsTotal:    game.AchievementsTotal,
		Completed:            game.Completed,
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `
			INSERT INTO games (platform, external_id, title, playtime_minutes,
			                   achievements_unlocked, achievements_total, completed, last_synced_at)
			VALUES (:platform, :external_id, :title, :playtime_minutes,
			        :achievements_unlocked, :achievements_total, :completed, datetime('now'))
			ON CONFLICT (platform, external_id) DO UPDATE SET
				title = CASE WHEN games.title = '' THEN excluded.title ELSE games.title END,
				playtime_minutes = excluded.playtime_minutes,
				achievements_unlocked = excluded.achievements_unlocked,
				achievements_total = excluded.achievements_total,
				last_synced_at = excluded.last_synced_at
		`
		_, err := r.db.NamedExecContext(ctx, query, sqlGame)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("upsert game: %w", err)}
		}
		return nil
	})
}

// SetGameCompleted marks a game as completed or not
func (r *GameRepository) SetGameCompleted(ctx context.Context, id int64, completed bool) error {
	_, err := r.db.ExecContext(ctx, "UPDATE games SET completed = ? WHERE id = ?", completed, id)
	if err != nil {
		return fmt.Errorf("set game completed: %w", err)
	}
	return nil
}

// ListIncompleteGames retrieves games not yet marked completed
func (r *GameRepository) ListIncompleteGames(ctx context.Context) ([]*domain.GameRecord, error) {
	var sqlGames []gameSQL
	err := r.db.SelectContext(ctx, &sqlGames, "SELECT * FROM games WHERE completed = 0 ORDER BY title")
	if err != nil {
		return nil, fmt.Errorf("list incomplete games: %w", err)
	}
	return r.toDomainGames(sqlGames), nil
}

// ListGames retrieves all games, optionally filtered by platform
func (r *GameRepository) ListGames(ctx context.Context, platform domain.Platform) ([]*domain.GameRecord, error) {
	query := "SELECT * FROM games"
	args := []interface{}{}
	if platform != "" {
		query += " WHERE platform = ?"
		args = append(args, string(platform))
	}
	query += " ORDER BY title"

	var sqlGames []gameSQL
	err := r.db.SelectContext(ctx, &sqlGames, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	return r.toDomainGames(sqlGames), nil
}

func (r *GameRepository) toDomainGames(sqlGames []gameSQL) []*domain.GameRecord {
	games := make([]*domain.GameRecord, len(sqlGames))
	for i, g := range sqlGames {
		games[i] = &domain.GameRecord{
			ID:                   g.ID,
			Platform:             domain.Platform(g.Platform),
			ExternalID:           g.ExternalID,
			Title:                g.Title,
			PlaytimeMinutes:      g.PlaytimeMinutes,
			AchievementsUnlocked: g.AchievementsUnlocked,
			AchievementsTotal:    g.AchievementsTotal,
			Completed:            g.Completed,
			LastSyncedAt:         g.LastSyncedAt,
		}
	}
	return games
}
