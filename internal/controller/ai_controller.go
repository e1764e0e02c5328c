package controller

import (
	"fmt"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AIController exposes content-generation helpers for course authors.
type AIController struct {
	AIService       *service.AIService
	DocumentService *service.DocumentService
}

func NewAIController(aiService *service.AIService, documentService *service.DocumentService) *AIController {
	return &AIController{
		AIService:       aiService,
		DocumentService: documentService,
	}
}

type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

func (c *AIController) Generate(ctx *gin.Context) {
	var req GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	text, err := c.AIService.GenerateText(ctx.Request.Context(), req.Prompt)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"text": text})
}

func (c *AIController) GenerateStructured(ctx *gin.Context) {
	var req GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	items, err := c.AIService.GenerateStructured(ctx.Request.Context(), req.Prompt)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"items": items})
}

type SuggestQuestionsRequest struct {
	Topic string `json:"topic" binding:"required"`
	Count int    `json:"count"`
}

// SuggestQuestions drafts quiz question prompts for a topic.
func (c *AIController) SuggestQuestions(ctx *gin.Context) {
	var req SuggestQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Count <= 0 || req.Count > 20 {
		req.Count = 5
	}

	prompt := fmt.Sprintf("Write %d quiz question prompts about %q suitable for a multiple-choice quiz.", req.Count, req.Topic)
	items, err := c.AIService.GenerateStructured(ctx.Request.Context(), prompt)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"questions": items})
}

type OutlineRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// SuggestOutline drafts lesson titles for a module topic.
func (c *AIController) SuggestOutline(ctx *gin.Context) {
	var req OutlineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	prompt := fmt.Sprintf("Produce an ordered list of lesson titles for a course module about %q.", req.Topic)
	items, err := c.AIService.GenerateStructured(ctx.Request.Context(), prompt)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"lessons": items})
}

// Upload stores a document, extracts its text where possible, and attaches
// an AI summary.
func (c *AIController) Upload(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	result, err := c.DocumentService.Process(ctx.Request.Context(), header, file)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
