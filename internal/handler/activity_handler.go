package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/strideline/routes-backend-go/internal/middleware"
	"github.com/strideline/routes-backend-go/internal/models"
	"github.com/strideline/routes-backend-go/internal/service"
	"github.com/strideline/routes-backend-go/pkg/response"
)

// ActivityHandler handles HTTP requests for activities and their route
// assignment.
type ActivityHandler struct {
	activities *service.ActivityService
	routes     *service.RouteService
	analysis   *service.AnalysisService
}

// NewActivityHandler creates a new activity handler.
func NewActivityHandler(activities *service.ActivityService, routes *service.RouteService, analysis *service.AnalysisService) *ActivityHandler {
	return &ActivityHandler{activities: activities, routes: routes, analysis: analysis}
}

// ingestRequest is the payload the sync pipeline posts per activity.
type ingestRequest struct {
	ID                 int64   `json:"id" binding:"required"`
	Name               string  `json:"name"`
	StartDate          int64   `json:"startDate" binding:"required"`
	Distance           float64 `json:"distance"`
	MovingTime         int64   `json:"movingTime"`
	AverageSpeed       float64 `json:"averageSpeed"`
	AverageHeartrate   float64 `json:"averageHeartrate"`
	TotalElevationGain float64 `json:"totalElevationGain"`
	Polyline           string  `json:"polyline"`
	DetailedPolyline   string  `json:"detailedPolyline"`
	StreamsData        string  `json:"streamsData"`
}

// IngestActivity handles POST /api/v1/activities
func (h *ActivityHandler) IngestActivity(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	var req ingestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid activity payload", err)
		return
	}

	activity := &models.Activity{
		ID:                 req.ID,
		UserID:             userID,
		Name:               req.Name,
		StartDate:          req.StartDate,
		Distance:           req.Distance,
		MovingTime:         req.MovingTime,
		AverageSpeed:       req.AverageSpeed,
		AverageHeartrate:   req.AverageHeartrate,
		TotalElevationGain: req.TotalElevationGain,
		Polyline:           req.Polyline,
		DetailedPolyline:   req.DetailedPolyline,
		StreamsData:        req.StreamsData,
	}
	if err := h.activities.Ingest(c.Request.Context(), activity); err != nil {
		response.InternalError(c, "Failed to store activity", err)
		return
	}

	response.Success(c, gin.H{"id": activity.ID})
}

// AssignRoute handles POST /api/v1/activities/:id/route
func (h *ActivityHandler) AssignRoute(c *gin.Context) {
	activity, ok := h.ownedActivity(c)
	if !ok {
		return
	}

	assigned, err := h.routes.AssignRouteToActivity(c.Request.Context(), activity.ID)
	if err != nil {
		response.InternalError(c, "Failed to assign route", err)
		return
	}

	response.Success(c, gin.H{"assigned": assigned})
}

// GetActivityRoute handles GET /api/v1/activities/:id/route
func (h *ActivityHandler) GetActivityRoute(c *gin.Context) {
	activity, ok := h.ownedActivity(c)
	if !ok {
		return
	}

	result, err := h.routes.GetActivityRoute(c.Request.Context(), activity.ID)
	if err != nil {
		response.InternalError(c, "Failed to get activity route", err)
		return
	}
	if result == nil {
		response.NotFound(c, "Activity has no route")
		return
	}

	response.Success(c, result)
}

// GetActivityAnalysis handles GET /api/v1/activities/:id/analysis
func (h *ActivityHandler) GetActivityAnalysis(c *gin.Context) {
	activity, ok := h.ownedActivity(c)
	if !ok {
		return
	}

	result, err := h.analysis.AnalyzeActivity(c.Request.Context(), activity.ID)
	if err != nil {
		response.InternalError(c, "Failed to analyze activity", err)
		return
	}
	if result == nil {
		response.NotFound(c, "Activity not found")
		return
	}

	response.Success(c, result)
}

// ownedActivity resolves the :id parameter to an activity owned by the
// authenticated user, writing the error response itself when it cannot.
func (h *ActivityHandler) ownedActivity(c *gin.Context) (*models.Activity, bool) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return nil, false
	}

	activityID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid activity ID", err)
		return nil, false
	}

	activity, err := h.activities.GetByID(c.Request.Context(), activityID)
	if err != nil {
		response.InternalError(c, "Failed to get activity", err)
		return nil, false
	}
	if activity == nil || activity.UserID != userID {
		response.NotFound(c, "Activity not found")
		return nil, false
	}

	return activity, true
}
