package database

import (
	"database/sql"
	"fmt"
)

// schema is applied on startup. Statements are idempotent so the server
// can always run them against an existing database.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS activities (
		id INTEGER PRIMARY KEY,
		user_id INTEGER NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		start_date INTEGER NOT NULL,
		distance REAL NOT NULL DEFAULT 0,
		moving_time INTEGER NOT NULL DEFAULT 0,
		average_speed REAL NOT NULL DEFAULT 0,
		average_heartrate REAL NOT NULL DEFAULT 0,
		total_elevation_gain REAL NOT NULL DEFAULT 0,
		polyline TEXT NOT NULL DEFAULT '',
		detailed_polyline TEXT NOT NULL DEFAULT '',
		streams_data TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_user ON activities(user_id, start_date)`,

	`CREATE TABLE IF NOT EXISTS routes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		route_key TEXT NOT NULL,
		start_geohash TEXT NOT NULL,
		end_geohash TEXT NOT NULL,
		path_cells TEXT NOT NULL,
		polyline TEXT NOT NULL DEFAULT '',
		distance_meters REAL NOT NULL DEFAULT 0,
		run_count INTEGER NOT NULL DEFAULT 1,
		last_run_at INTEGER NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_routes_user ON routes(user_id, run_count)`,

	`CREATE TABLE IF NOT EXISTS activity_routes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		activity_id INTEGER NOT NULL UNIQUE,
		route_id INTEGER NOT NULL REFERENCES routes(id),
		match_confidence REAL NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activity_routes_route ON activity_routes(route_id)`,
}

// InitSchema creates all tables and indexes if they do not exist yet.
func InitSchema(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
