package controller

import (
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

type AttemptRequest struct {
	Answers []service.AnswerInput `json:"answers"`
}

// SubmitAttempt scores and appends a quiz attempt for the caller.
func (c *ProgressController) SubmitAttempt(ctx *gin.Context) {
	var req AttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	attempt, err := c.ProgressService.RecordAttempt(claims.UserID, ctx.Param("id"), req.Answers)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, attempt)
}

func (c *ProgressController) ListAttempts(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	attempts, err := c.ProgressService.AttemptsFor(claims.UserID, ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, attempts)
}

func (c *ProgressController) CompleteLesson(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.ProgressService.MarkLessonComplete(claims.UserID, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *ProgressController) LessonCompleted(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	done, err := c.ProgressService.IsLessonCompleted(claims.UserID, ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"completed": done})
}

// queriedUser defaults the optional userId query to the caller.
func queriedUser(ctx *gin.Context, claims *util.Claims) string {
	if id := ctx.Query("userId"); id != "" {
		return id
	}
	return claims.UserID
}

// ModuleProgress answers the zero roll-up for a missing module or a queried
// user other than the session's own.
func (c *ProgressController) ModuleProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	progress, err := c.ProgressService.ModuleProgress(ctx.Param("id"), queriedUser(ctx, claims), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

func (c *ProgressController) CourseProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	progress, err := c.ProgressService.CourseProgress(ctx.Param("id"), queriedUser(ctx, claims), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}
