package routes

import (
	"github.com/gin-gonic/gin"

	"exerciselog/internal/controllers"
)

func RegisterHealthRoutes(router *gin.Engine, healthController *controllers.HealthController) {
	router.GET("/", healthController.Index)
	router.GET("/health", healthController.Health)
}
