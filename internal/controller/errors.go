package controller

import (
	"errors"
	"lms_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError maps service sentinel errors onto the response envelope.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrValidation):
		util.BadRequest(c, err.Error())
	case errors.Is(err, util.ErrDuplicateIdentity):
		util.Error(c, http.StatusConflict, err.Error())
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, util.ErrSelfTarget),
		errors.Is(err, util.ErrAdminImmutable),
		errors.Is(err, util.ErrAdminPromotion):
		util.Error(c, http.StatusForbidden, err.Error())
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrModuleNotFound),
		errors.Is(err, util.ErrLessonNotFound),
		errors.Is(err, util.ErrQuizNotFound),
		errors.Is(err, util.ErrQuestionNotFound):
		util.NotFound(c)
	case errors.Is(err, util.ErrAINotConfigured):
		util.Error(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, util.ErrAIRequestFailed),
		errors.Is(err, util.ErrAIParseFailed):
		util.Error(c, http.StatusBadGateway, err.Error())
	default:
		util.LogInternalError(c, err)
	}
}
