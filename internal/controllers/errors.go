package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"exerciselog/internal/apierr"
	"exerciselog/internal/logging"
)

type violation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// bindError turns a ShouldBindJSON failure into an INVALID_REQUEST error.
func bindError(err error) *apierr.Error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return apierr.NewInvalidViolations(lo.Map(verrs, func(fe validator.FieldError, _ int) violation {
			return violation{Field: fe.Namespace(), Rule: fe.Tag()}
		}))
	}
	return apierr.ErrInvalidReq.Msg("Invalid request data: %s", err.Error())
}

func asAPIError(err error) *apierr.Error {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return apierr.ErrInternalError.Wrap(err)
}

func logFailure(c *gin.Context, apiErr *apierr.Error) {
	event := logging.Ctx(c.Request.Context()).Warn()
	if apiErr.StatusCode >= http.StatusInternalServerError {
		event = logging.Ctx(c.Request.Context()).Error().Stack()
	}
	event.
		Err(apiErr).
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Int("status", apiErr.StatusCode).
		Msg(apiErr.Message)
}

// respondError renders err using its error kind.
func respondError(c *gin.Context, err error) {
	apiErr := asAPIError(err)
	logFailure(c, apiErr)

	body := gin.H{
		"status":  "error",
		"code":    apiErr.ErrorCode,
		"message": apiErr.Message,
	}
	for k, v := range apiErr.Extras {
		body[k] = v
	}
	c.AbortWithStatusJSON(apiErr.StatusCode, body)
}

// respondLegacyError answers HTTP 200 with the failure text as a bare JSON
// string. Older web clients treat any string body as an error.
func respondLegacyError(c *gin.Context, err error) {
	apiErr := asAPIError(err)
	logFailure(c, apiErr)

	text := apiErr.Message
	if cause := apiErr.Unwrap(); cause != nil {
		text = cause.Error()
	}
	c.AbortWithStatusJSON(http.StatusOK, text)
}
