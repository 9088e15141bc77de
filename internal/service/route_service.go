package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/strideline/routes-backend-go/internal/clustering"
	"github.com/strideline/routes-backend-go/internal/models"
	"github.com/strideline/routes-backend-go/internal/repository"
	"github.com/strideline/routes-backend-go/internal/spatial"
)

const (
	// MatchThreshold is the minimum similarity for an activity to count
	// as a repeat of an existing route.
	MatchThreshold = 0.7

	// minUsablePoints is the smallest point count worth fingerprinting.
	// Indoor and GPS-less activities fall below it and simply get no
	// route.
	minUsablePoints = 10

	// DefaultHistoryLimit caps route history queries.
	DefaultHistoryLimit = 20
)

// RouteService matches incoming activities against a user's route
// catalog, registering new routes when nothing matches.
type RouteService struct {
	log        *zap.Logger
	routes     *repository.RouteRepository
	activities *repository.ActivityRepository

	// userLocks serializes match+register per user so that two
	// concurrent sync jobs cannot both miss and insert duplicate routes
	// for the same physical route.
	userLocks sync.Map // int64 -> *sync.Mutex

	now func() time.Time
}

// NewRouteService creates a new route service.
func NewRouteService(log *zap.Logger, routes *repository.RouteRepository, activities *repository.ActivityRepository) *RouteService {
	return &RouteService{
		log:        log,
		routes:     routes,
		activities: activities,
		now:        time.Now,
	}
}

func (s *RouteService) lockUser(userID int64) *sync.Mutex {
	mu, _ := s.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// FindOrCreateRoute matches an activity's GPS path against the user's
// existing routes. The stream is preferred over the encoded polyline;
// fewer than 10 usable points from either source yields a nil result
// and no writes. Does not check for an existing mapping; that is
// AssignRouteToActivity's job.
func (s *RouteService) FindOrCreateRoute(ctx context.Context, userID, activityID int64, encodedPolyline string, streams *models.StreamSet) (*models.RouteMatch, error) {
	points := clustering.ExtractLatLngFromStreams(streams)
	if len(points) < minUsablePoints {
		decoded, err := clustering.DecodePolylineToLatLng(encodedPolyline)
		if err != nil {
			s.log.Warn("failed to decode polyline, treating as no GPS",
				zap.Int64("activityId", activityID), zap.Error(err))
		}
		points = decoded
	}
	if len(points) < minUsablePoints {
		return nil, nil
	}

	signature := clustering.GenerateRouteSignature(points)
	if signature == nil {
		return nil, nil
	}

	mu := s.lockUser(userID)
	mu.Lock()
	defer mu.Unlock()

	existing, err := s.routes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load routes: %w", err)
	}

	var best *models.Route
	bestScore := 0.0
	for i := range existing {
		score := clustering.CalculateRouteSimilarity(signature, existing[i].Signature())
		if score > bestScore {
			bestScore = score
			best = &existing[i]
		}
	}

	now := s.now()

	if best != nil && bestScore >= MatchThreshold {
		if err := s.routes.RecordRunWithMapping(ctx, best.ID, activityID, bestScore, now); err != nil {
			return nil, err
		}
		s.log.Info("matched activity to existing route",
			zap.Int64("activityId", activityID),
			zap.Int64("routeId", best.ID),
			zap.Float64("confidence", bestScore))
		return &models.RouteMatch{RouteID: best.ID, IsNewRoute: false, MatchConfidence: bestScore}, nil
	}

	route := &models.Route{
		UserID:         userID,
		RouteKey:       signature.RouteKey,
		StartGeohash:   signature.StartGeohash,
		EndGeohash:     signature.EndGeohash,
		PathCells:      signature.PathCells,
		Polyline:       encodedPolyline, // unsimplified, for display
		DistanceMeters: spatial.PathLength(points),
		RunCount:       1,
		LastRunAt:      now.Unix(),
	}
	routeID, err := s.routes.CreateWithMapping(ctx, route, activityID, 1.0)
	if err != nil {
		return nil, err
	}

	s.log.Info("registered new route",
		zap.Int64("activityId", activityID),
		zap.Int64("routeId", routeID),
		zap.Int("pathCells", len(signature.PathCells)))
	return &models.RouteMatch{RouteID: routeID, IsNewRoute: true, MatchConfidence: 1.0}, nil
}

// AssignRouteToActivity is the orchestration wrapper the sync pipeline
// calls. It is idempotent: an activity that already has a mapping is
// left alone. Returns false when the activity is missing or has no
// usable GPS data.
func (s *RouteService) AssignRouteToActivity(ctx context.Context, activityID int64) (bool, error) {
	activity, err := s.activities.GetByID(ctx, activityID)
	if err != nil {
		return false, err
	}
	if activity == nil {
		return false, nil
	}

	existing, err := s.routes.GetMappingByActivityID(ctx, activityID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return true, nil
	}

	var streams *models.StreamSet
	if activity.StreamsData != "" {
		var parsed models.StreamSet
		if err := json.Unmarshal([]byte(activity.StreamsData), &parsed); err != nil {
			s.log.Warn("failed to parse streams data, falling back to polyline",
				zap.Int64("activityId", activityID), zap.Error(err))
		} else {
			streams = &parsed
		}
	}

	match, err := s.FindOrCreateRoute(ctx, activity.UserID, activityID, activity.BestPolyline(), streams)
	if err != nil {
		return false, err
	}

	return match != nil, nil
}

// GetRouteHistory returns the activities mapped to a route, most recent
// first. limit <= 0 falls back to DefaultHistoryLimit.
func (s *RouteService) GetRouteHistory(ctx context.Context, routeID int64, limit int) ([]models.ActivitySummary, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.activities.ListByRoute(ctx, routeID, limit)
}

// GetActivityRoute returns the route an activity is mapped to together
// with that route's recent history, or nil when the activity is
// unmapped.
func (s *RouteService) GetActivityRoute(ctx context.Context, activityID int64) (*models.ActivityRoute, error) {
	mapping, err := s.routes.GetMappingByActivityID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if mapping == nil {
		return nil, nil
	}

	route, err := s.routes.GetByID(ctx, mapping.RouteID)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, nil
	}

	history, err := s.GetRouteHistory(ctx, route.ID, DefaultHistoryLimit)
	if err != nil {
		return nil, err
	}

	return &models.ActivityRoute{Route: route, History: history}, nil
}

// GetRoute returns a single route, or nil when it does not exist.
func (s *RouteService) GetRoute(ctx context.Context, routeID int64) (*models.Route, error) {
	return s.routes.GetByID(ctx, routeID)
}

// GetUserRoutes returns a user's route catalog, most-run first.
func (s *RouteService) GetUserRoutes(ctx context.Context, userID int64) ([]models.Route, error) {
	return s.routes.ListByUser(ctx, userID)
}
