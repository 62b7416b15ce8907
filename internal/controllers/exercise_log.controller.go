package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"exerciselog/internal/apierr"
	"exerciselog/internal/models"
	"exerciselog/internal/services"
)

type ExerciseLogController struct {
	svc          services.ExerciseLogService
	legacyErrors bool
}

func NewExerciseLogController(svc services.ExerciseLogService, legacyErrors bool) *ExerciseLogController {
	return &ExerciseLogController{svc: svc, legacyErrors: legacyErrors}
}

func (lc *ExerciseLogController) fail(c *gin.Context, err error) {
	if lc.legacyErrors {
		respondLegacyError(c, err)
		return
	}
	respondError(c, err)
}

// UpdateExerciseLog godoc
// @Summary Create or update an exercise log entry
// @Description Without exerciseLog.id a new entry is created under the parent log id.
// @Description With exerciseLog.id only the fields present in the request are changed.
// @Tags exercise-log
// @Accept json
// @Param request body models.UpdateExerciseLogRequest true "Exercise log data"
// @Success 204 "Saved"
// @Failure 400 {object} models.ErrorResponse "Invalid request data"
// @Failure 404 {object} models.ErrorResponse "Exercise log not found"
// @Failure 500 {object} models.ErrorResponse "Failed to save exercise log"
// @Router /log/exercise/update [post]
func (lc *ExerciseLogController) UpdateExerciseLog(c *gin.Context) {
	var req models.UpdateExerciseLogRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		lc.failUpdate(c, bindError(err))
		return
	}

	if _, err := lc.svc.UpdateOrCreate(c.Request.Context(), &req); err != nil {
		lc.failUpdate(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// failUpdate never uses the string-payload contract: in legacy mode every
// failure surfaces as a generic server error.
func (lc *ExerciseLogController) failUpdate(c *gin.Context, err error) {
	if lc.legacyErrors {
		respondError(c, apierr.ErrInternalError.Wrap(err))
		return
	}
	respondError(c, err)
}

// DeleteExerciseLog godoc
// @Summary Delete an exercise log entry
// @Tags exercise-log
// @Accept json
// @Produce json
// @Param request body models.ExerciseLogIDRequest true "Exercise log id"
// @Success 200 {object} models.MessageResponse "Successfully deleted"
// @Failure 400 {object} models.ErrorResponse "Invalid request data"
// @Failure 404 {object} models.ErrorResponse "Exercise log not found"
// @Failure 500 {object} models.ErrorResponse "Failed to delete exercise log"
// @Router /log/exercise/delete [post]
func (lc *ExerciseLogController) DeleteExerciseLog(c *gin.Context) {
	var req models.ExerciseLogIDRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		lc.fail(c, bindError(err))
		return
	}

	if err := lc.svc.Delete(c.Request.Context(), *req.ID); err != nil {
		lc.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Successfully deleted"})
}

// ListExerciseLogs godoc
// @Summary List the exercise entries of a log
// @Description Return every exercise entry recorded under the given parent log id, joined with its exercise.
// @Tags exercise-log
// @Accept json
// @Produce json
// @Param request body models.ExerciseLogIDRequest true "Parent log id"
// @Success 200 {array} models.ExerciseLogEntry
// @Failure 400 {object} models.ErrorResponse "Invalid request data"
// @Failure 500 {object} models.ErrorResponse "Failed to retrieve exercise logs"
// @Router /log/exercise/all [post]
func (lc *ExerciseLogController) ListExerciseLogs(c *gin.Context) {
	var req models.ExerciseLogIDRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		lc.fail(c, bindError(err))
		return
	}

	entries, err := lc.svc.ListForLog(c.Request.Context(), *req.ID)
	if err != nil {
		lc.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
