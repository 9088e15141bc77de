package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/strideline/routes-backend-go/internal/database"
	"github.com/strideline/routes-backend-go/internal/models"
)

// RouteRepository handles database operations for routes and the
// activity->route mapping table.
type RouteRepository struct {
	db *sql.DB
}

// NewRouteRepository creates a new route repository.
func NewRouteRepository(db *sql.DB) *RouteRepository {
	return &RouteRepository{db: db}
}

const routeColumns = `id, user_id, route_key, start_geohash, end_geohash, path_cells,
	polyline, distance_meters, run_count, last_run_at, created_at, updated_at`

func scanRoute(row interface{ Scan(...interface{}) error }) (*models.Route, error) {
	var rt models.Route
	var cells string
	err := row.Scan(&rt.ID, &rt.UserID, &rt.RouteKey, &rt.StartGeohash, &rt.EndGeohash,
		&cells, &rt.Polyline, &rt.DistanceMeters, &rt.RunCount, &rt.LastRunAt,
		&rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rt.PathCells = splitCells(cells)
	return &rt, nil
}

// ListByUser returns all routes owned by a user, most-run first.
func (r *RouteRepository) ListByUser(ctx context.Context, userID int64) ([]models.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE user_id = ? ORDER BY run_count DESC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query routes for user %d: %w", userID, err)
	}
	defer rows.Close()

	var routes []models.Route
	for rows.Next() {
		rt, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan route: %w", err)
		}
		routes = append(routes, *rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate routes: %w", err)
	}

	return routes, nil
}

// GetByID retrieves a single route, or nil when it does not exist.
func (r *RouteRepository) GetByID(ctx context.Context, id int64) (*models.Route, error) {
	query := `SELECT ` + routeColumns + ` FROM routes WHERE id = ?`

	rt, err := scanRoute(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query route %d: %w", id, err)
	}

	return rt, nil
}

const (
	insertRouteQuery = `INSERT INTO routes (user_id, route_key, start_geohash, end_geohash, path_cells,
		polyline, distance_meters, run_count, last_run_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	recordRunQuery = `UPDATE routes
		SET run_count = run_count + 1, last_run_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`

	insertMappingQuery = `INSERT INTO activity_routes (activity_id, route_id, match_confidence)
		VALUES (?, ?, ?)`
)

// Insert stores a new route and returns its generated id.
func (r *RouteRepository) Insert(ctx context.Context, rt *models.Route) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertRouteQuery,
		rt.UserID, rt.RouteKey, rt.StartGeohash, rt.EndGeohash, joinCells(rt.PathCells),
		rt.Polyline, rt.DistanceMeters, rt.RunCount, rt.LastRunAt,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert route: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read inserted route id: %w", err)
	}

	return id, nil
}

// RecordRun increments a route's run count and moves last_run_at
// forward.
func (r *RouteRepository) RecordRun(ctx context.Context, routeID int64, lastRunAt time.Time) error {
	_, err := r.db.ExecContext(ctx, recordRunQuery, lastRunAt.Unix(), routeID)
	if err != nil {
		return fmt.Errorf("failed to record run on route %d: %w", routeID, err)
	}

	return nil
}

// InsertMapping stores the activity->route association.
func (r *RouteRepository) InsertMapping(ctx context.Context, activityID, routeID int64, confidence float64) error {
	_, err := r.db.ExecContext(ctx, insertMappingQuery, activityID, routeID, confidence)
	if err != nil {
		return fmt.Errorf("failed to insert mapping for activity %d: %w", activityID, err)
	}

	return nil
}

// CreateWithMapping inserts a new route and its activity mapping in one
// transaction, so a crash between the two cannot leave an orphan route.
// Returns the new route's id.
func (r *RouteRepository) CreateWithMapping(ctx context.Context, rt *models.Route, activityID int64, confidence float64) (int64, error) {
	var id int64
	err := database.Transaction(r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, insertRouteQuery,
			rt.UserID, rt.RouteKey, rt.StartGeohash, rt.EndGeohash, joinCells(rt.PathCells),
			rt.Polyline, rt.DistanceMeters, rt.RunCount, rt.LastRunAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert route: %w", err)
		}

		id, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read inserted route id: %w", err)
		}

		if _, err := tx.ExecContext(ctx, insertMappingQuery, activityID, id, confidence); err != nil {
			return fmt.Errorf("failed to insert mapping for activity %d: %w", activityID, err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// RecordRunWithMapping bumps an existing route's run stats and inserts
// the activity mapping in one transaction.
func (r *RouteRepository) RecordRunWithMapping(ctx context.Context, routeID, activityID int64, confidence float64, lastRunAt time.Time) error {
	return database.Transaction(r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, recordRunQuery, lastRunAt.Unix(), routeID); err != nil {
			return fmt.Errorf("failed to record run on route %d: %w", routeID, err)
		}
		if _, err := tx.ExecContext(ctx, insertMappingQuery, activityID, routeID, confidence); err != nil {
			return fmt.Errorf("failed to insert mapping for activity %d: %w", activityID, err)
		}
		return nil
	})
}

// GetMappingByActivityID returns the mapping for an activity, or nil
// when the activity has no route assigned yet.
func (r *RouteRepository) GetMappingByActivityID(ctx context.Context, activityID int64) (*models.ActivityRouteMap, error) {
	query := `SELECT id, activity_id, route_id, match_confidence, created_at
		FROM activity_routes WHERE activity_id = ?`

	var m models.ActivityRouteMap
	err := r.db.QueryRowContext(ctx, query, activityID).Scan(
		&m.ID, &m.ActivityID, &m.RouteID, &m.MatchConfidence, &m.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query mapping for activity %d: %w", activityID, err)
	}

	return &m, nil
}

// Path cells are persisted as a single comma-joined column; the cell
// alphabet is base32 so the separator can never collide.

func joinCells(cells []string) string {
	return strings.Join(cells, ",")
}

func splitCells(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
