package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/strideline/routes-backend-go/internal/middleware"
	"github.com/strideline/routes-backend-go/internal/service"
	"github.com/strideline/routes-backend-go/pkg/response"
)

// RouteHandler handles HTTP requests for routes.
type RouteHandler struct {
	service *service.RouteService
}

// NewRouteHandler creates a new route handler.
func NewRouteHandler(service *service.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

// ListRoutes handles GET /api/v1/routes
func (h *RouteHandler) ListRoutes(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	routes, err := h.service.GetUserRoutes(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c, "Failed to list routes", err)
		return
	}

	response.Success(c, routes)
}

// GetRouteHistory handles GET /api/v1/routes/:id/history
func (h *RouteHandler) GetRouteHistory(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Not authenticated", nil)
		return
	}

	routeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid route ID", err)
		return
	}

	limit := service.DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			response.BadRequest(c, "Invalid limit", err)
			return
		}
	}

	route, err := h.service.GetRoute(c.Request.Context(), routeID)
	if err != nil {
		response.InternalError(c, "Failed to get route", err)
		return
	}
	if route == nil || route.UserID != userID {
		response.NotFound(c, "Route not found")
		return
	}

	history, err := h.service.GetRouteHistory(c.Request.Context(), routeID, limit)
	if err != nil {
		response.InternalError(c, "Failed to get route history", err)
		return
	}

	response.Success(c, gin.H{
		"route":   route,
		"history": history,
	})
}
