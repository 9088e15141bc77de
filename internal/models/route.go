package models

import "time"

// RouteSignature is the compact fingerprint of a GPS path used for
// approximate matching. PathCells is sorted and deduplicated.
type RouteSignature struct {
	StartGeohash string   `json:"startGeohash"`
	EndGeohash   string   `json:"endGeohash"`
	PathCells    []string `json:"pathCells"`
	RouteKey     string   `json:"routeKey"`
}

// Route represents a physical route a user runs repeatedly.
type Route struct {
	ID             int64    `json:"id" db:"id"`
	UserID         int64    `json:"userId" db:"user_id"`
	RouteKey       string   `json:"routeKey" db:"route_key"`
	StartGeohash   string   `json:"startGeohash" db:"start_geohash"`
	EndGeohash     string   `json:"endGeohash" db:"end_geohash"`
	PathCells      []string `json:"pathCells" db:"path_cells"`
	Polyline       string   `json:"polyline" db:"polyline"` // representative path for display
	DistanceMeters float64  `json:"distanceMeters" db:"distance_meters"`
	RunCount       int      `json:"runCount" db:"run_count"`
	LastRunAt      int64    `json:"lastRunAt" db:"last_run_at"` // Unix timestamp in seconds

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Signature reconstructs the route's signature from its persisted fields.
func (r *Route) Signature() *RouteSignature {
	return &RouteSignature{
		StartGeohash: r.StartGeohash,
		EndGeohash:   r.EndGeohash,
		PathCells:    r.PathCells,
		RouteKey:     r.RouteKey,
	}
}

// ActivityRouteMap links one activity to the route it was matched to.
// At most one mapping exists per activity.
type ActivityRouteMap struct {
	ID              int64     `json:"id" db:"id"`
	ActivityID      int64     `json:"activityId" db:"activity_id"`
	RouteID         int64     `json:"routeId" db:"route_id"`
	MatchConfidence float64   `json:"matchConfidence" db:"match_confidence"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// RouteMatch is the outcome of matching an activity against a user's
// existing routes.
type RouteMatch struct {
	RouteID         int64   `json:"routeId"`
	IsNewRoute      bool    `json:"isNewRoute"`
	MatchConfidence float64 `json:"matchConfidence"`
}

// ActivityRoute pairs the route an activity is mapped to with that
// route's recent history.
type ActivityRoute struct {
	Route   *Route            `json:"route"`
	History []ActivitySummary `json:"history"`
}
