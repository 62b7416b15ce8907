package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"exerciselog/internal/models"
	"exerciselog/internal/services"
)

type ExerciseController struct {
	svc          services.CatalogService
	legacyErrors bool
}

func NewExerciseController(svc services.CatalogService, legacyErrors bool) *ExerciseController {
	return &ExerciseController{svc: svc, legacyErrors: legacyErrors}
}

func (ec *ExerciseController) fail(c *gin.Context, err error) {
	if ec.legacyErrors {
		respondLegacyError(c, err)
		return
	}
	respondError(c, err)
}

// ListExercises godoc
// @Summary List all exercises
// @Description Return every exercise definition in the catalog. The request body is ignored.
// @Tags exercise
// @Produce json
// @Success 200 {array} models.Exercise
// @Failure 500 {object} models.ErrorResponse "Failed to retrieve exercises"
// @Router /exercise/all [post]
func (ec *ExerciseController) ListExercises(c *gin.Context) {
	exercises, err := ec.svc.ListAll(c.Request.Context())
	if err != nil {
		ec.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, exercises)
}

// CreateExercise godoc
// @Summary Create an exercise
// @Description Create an exercise unless one with the same name and description already exists.
// @Description A duplicate answers with a message instead of the record.
// @Tags exercise
// @Accept json
// @Produce json
// @Param exercise body models.CreateExerciseRequest true "Exercise data"
// @Success 200 {object} models.Exercise "Created exercise"
// @Failure 400 {object} models.ErrorResponse "Invalid request data"
// @Failure 500 {object} models.ErrorResponse "Failed to create exercise"
// @Router /exercise/new [post]
func (ec *ExerciseController) CreateExercise(c *gin.Context) {
	var req models.CreateExerciseRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		ec.fail(c, bindError(err))
		return
	}

	result, err := ec.svc.CreateIfAbsent(c.Request.Context(), req.Activity, req.Description)
	if err != nil {
		ec.fail(c, err)
		return
	}

	if result.Duplicate {
		c.JSON(http.StatusOK, models.MessageResponse{Message: result.Message})
		return
	}
	c.JSON(http.StatusOK, result.Exercise)
}
