package routes

import (
	"github.com/gin-gonic/gin"

	"tariffserver/internal/api/handlers/tariff"
	"tariffserver/internal/api/middleware"
)

// NewRouter собирает gin-движок со стандартной цепочкой middleware
// и регистрирует все маршруты сервиса
func NewRouter(tariffHandler *tariff.Handler) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Gzip())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	registerTariffRoutes(router, tariffHandler)

	return router
}

// registerTariffRoutes регистрирует маршруты тарифных операций
func registerTariffRoutes(router *gin.Engine, h *tariff.Handler) {
	api := router.Group("/api/tariff")
	{
		api.POST("/classify", h.HandleClassify)
		api.POST("/slots", h.HandleSlots)
		api.POST("/calculate", h.HandleCalculate)
		api.GET("/:code", h.HandleGetTariff)
	}

	router.GET("/health", h.HandleHealth)
}
