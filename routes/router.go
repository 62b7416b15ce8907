package routes

import (
	"github.com/gin-gonic/gin"

	"exerciselog/internal/controllers"
	"exerciselog/internal/middleware"
)

// NewRouter builds the engine with middleware and every route registered.
func NewRouter(
	exerciseController *controllers.ExerciseController,
	logController *controllers.ExerciseLogController,
	healthController *controllers.HealthController,
) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.RequestLogger(), middleware.Recovery())

	RegisterHealthRoutes(router, healthController)
	RegisterExerciseRoutes(router, exerciseController)
	RegisterExerciseLogRoutes(router, logController)
	RegisterSwaggerRoutes(router)

	return router
}
