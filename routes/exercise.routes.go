package routes

import (
	"github.com/gin-gonic/gin"

	"exerciselog/internal/controllers"
)

func RegisterExerciseRoutes(router *gin.Engine, exerciseController *controllers.ExerciseController) {
	exerciseRoutes := router.Group("/exercise")
	{
		exerciseRoutes.POST("/all", exerciseController.ListExercises)
		exerciseRoutes.POST("/new", exerciseController.CreateExercise)
	}
}
