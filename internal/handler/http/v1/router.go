package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Сессии выбора рыночной зоны
	sessions := api.Group("/sessions")
	{
		sessions.POST("", h.createSession)
		sessions.GET("/:id", h.getSession)
		sessions.DELETE("/:id", h.deleteSession)
		sessions.POST("/:id/geocode", h.geocode)
		sessions.POST("/:id/place", h.place)
		sessions.PUT("/:id/radius", h.setRadius)
		sessions.PUT("/:id/boundary-type", h.setBoundaryType)
		sessions.GET("/:id/map", h.mapView)
		sessions.POST("/:id/leads", h.submitLead)
	}

	api.GET("/boundary-types", h.boundaryTypes)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
