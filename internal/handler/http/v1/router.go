package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Выбор периода и файлов
	api.GET("/selection", h.getSelection)
	api.PUT("/selection", h.updateSelection)
	api.GET("/files/:period", h.listFiles)
	api.POST("/files/refresh", h.refreshFiles)

	// Слой фокусов
	hotspots := api.Group("/hotspots")
	{
		hotspots.GET("", h.getHotspots)
		hotspots.POST("/load", h.loadHotspots)
	}

	// Нарисованная область и анализ гари
	region := api.Group("/region")
	{
		region.PUT("", h.drawRegion)
		region.DELETE("", h.deleteRegion)
		region.POST("/analyze", h.analyzeRegion)
	}

	api.GET("/map", h.getMapState)

	api.GET("/notices", h.listNotices)
	api.DELETE("/notices/:id", h.dismissNotice)

	// Журнал анализов закрыт ключом, если ключи настроены
	analyses := api.Group("/analyses")
	if len(h.cfg.APIKeys) > 0 {
		analyses.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	analyses.GET("", h.listAnalyses)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
