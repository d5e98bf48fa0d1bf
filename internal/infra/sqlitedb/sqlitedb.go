// Package sqlitedb opens the embedded database used when no postgres server is configured.
package sqlitedb

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS wellness_tips (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	summary TEXT NOT NULL,
	detailed_explanation TEXT NOT NULL,
	step_by_step_guide TEXT NOT NULL DEFAULT '[]',
	category TEXT NOT NULL,
	icon TEXT NOT NULL,
	is_favorite INTEGER NOT NULL DEFAULT 0,
	is_current_generation INTEGER NOT NULL DEFAULT 1,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_wellness_tips_created_at ON wellness_tips (created_at DESC);
CREATE TABLE IF NOT EXISTS user_profiles (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	age INTEGER NOT NULL,
	gender TEXT NOT NULL,
	height REAL,
	weight REAL,
	bmi REAL,
	primary_goal TEXT NOT NULL,
	secondary_goals TEXT NOT NULL DEFAULT '[]',
	activity_level TEXT NOT NULL,
	exercise_preferences TEXT NOT NULL DEFAULT '[]',
	daily_wellness_time TEXT NOT NULL,
	sleep_hours INTEGER,
	sleep_pattern TEXT NOT NULL DEFAULT '',
	dietary_preference TEXT NOT NULL,
	food_allergies TEXT NOT NULL DEFAULT '[]',
	diet_style TEXT NOT NULL DEFAULT '',
	stress_level TEXT NOT NULL,
	mood_focus_areas TEXT NOT NULL DEFAULT '[]',
	mindfulness_experience TEXT NOT NULL,
	work_style TEXT NOT NULL,
	screen_time TEXT NOT NULL,
	smoking_habit TEXT NOT NULL DEFAULT '',
	alcohol_habit TEXT NOT NULL DEFAULT '',
	health_conditions TEXT NOT NULL DEFAULT '[]',
	physical_limitations TEXT NOT NULL DEFAULT '[]',
	favorite_activities TEXT NOT NULL DEFAULT '[]',
	motivation_style TEXT NOT NULL,
	extra_information TEXT NOT NULL DEFAULT '',
	updated_at INTEGER NOT NULL
);
`

// Open connects to path (":memory:" is allowed) and creates the schema.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("sqlite path cannot be empty")
	}
	if path != ":memory:" && !strings.HasPrefix(path, "file:") {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create sqlite directory: %w", err)
			}
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection serializes writers and keeps :memory: databases alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}
	return db, nil
}
