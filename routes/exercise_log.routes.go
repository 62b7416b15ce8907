package routes

import (
	"github.com/gin-gonic/gin"

	"exerciselog/internal/controllers"
)

func RegisterExerciseLogRoutes(router *gin.Engine, logController *controllers.ExerciseLogController) {
	logRoutes := router.Group("/log/exercise")
	{
		logRoutes.POST("/all", logController.ListExerciseLogs)
		logRoutes.POST("/update", logController.UpdateExerciseLog)
		logRoutes.POST("/delete", logController.DeleteExerciseLog)
	}
}
