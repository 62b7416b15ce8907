package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "exerciselog/docs"
)

// RegisterSwaggerRoutes sets up the Swagger route
func RegisterSwaggerRoutes(router *gin.Engine) {
	// Serve Swagger documentation at /swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
