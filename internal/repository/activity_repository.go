package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/strideline/routes-backend-go/internal/models"
)

// ActivityRepository handles database operations for activities.
type ActivityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new activity repository.
func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// GetByID retrieves a single activity, or nil when it does not exist.
func (r *ActivityRepository) GetByID(ctx context.Context, id int64) (*models.Activity, error) {
	query := `SELECT id, user_id, name, start_date, distance, moving_time, average_speed,
		average_heartrate, total_elevation_gain, polyline, detailed_polyline,
		COALESCE(streams_data, ''), created_at
		FROM activities WHERE id = ?`

	var a models.Activity
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.UserID, &a.Name, &a.StartDate, &a.Distance, &a.MovingTime,
		&a.AverageSpeed, &a.AverageHeartrate, &a.TotalElevationGain,
		&a.Polyline, &a.DetailedPolyline, &a.StreamsData, &a.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query activity %d: %w", id, err)
	}

	return &a, nil
}

// Insert stores a new activity. The caller supplies the id (activities
// keep the id assigned by the sync provider).
func (r *ActivityRepository) Insert(ctx context.Context, a *models.Activity) error {
	query := `INSERT INTO activities (id, user_id, name, start_date, distance, moving_time,
		average_speed, average_heartrate, total_elevation_gain, polyline,
		detailed_polyline, streams_data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.UserID, a.Name, a.StartDate, a.Distance, a.MovingTime,
		a.AverageSpeed, a.AverageHeartrate, a.TotalElevationGain,
		a.Polyline, a.DetailedPolyline, a.StreamsData,
	)
	if err != nil {
		return fmt.Errorf("failed to insert activity %d: %w", a.ID, err)
	}

	return nil
}

// ListByRoute returns the display projection of all activities mapped to
// a route, most recent first, capped at limit.
func (r *ActivityRepository) ListByRoute(ctx context.Context, routeID int64, limit int) ([]models.ActivitySummary, error) {
	query := `SELECT a.id, a.name, a.start_date, a.distance, a.moving_time,
		a.average_speed, a.average_heartrate, a.total_elevation_gain
		FROM activities a
		JOIN activity_routes ar ON ar.activity_id = a.id
		WHERE ar.route_id = ?
		ORDER BY a.start_date DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, routeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query route history: %w", err)
	}
	defer rows.Close()

	var summaries []models.ActivitySummary
	for rows.Next() {
		var s models.ActivitySummary
		if err := rows.Scan(&s.ID, &s.Name, &s.StartDate, &s.Distance, &s.MovingTime,
			&s.AverageSpeed, &s.AverageHeartrate, &s.TotalElevationGain); err != nil {
			return nil, fmt.Errorf("failed to scan activity summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate route history: %w", err)
	}

	return summaries, nil
}
