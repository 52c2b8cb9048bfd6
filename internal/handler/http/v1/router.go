package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/predict", h.predict)

	// Справочник районов закрыт ключом, только если ключи заданы
	districts := api.Group("/districts")
	if len(h.cfg.APIKeys) > 0 {
		districts.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	districts.GET("", h.listDistricts)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

// RegisterLegacyRoutes регистрирует старые адреса /predict и /api/predict для существующих клиентов
func (h *Handler) RegisterLegacyRoutes(router gin.IRoutes) {
	router.POST("/predict", h.predict)
	router.POST("/api/predict", h.predict)
}
