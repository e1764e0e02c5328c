package controller

import (
	"lms_backend/internal/model"
	"lms_backend/internal/service"
	"lms_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ContentController is the HTTP surface of the course tree. Mutations are
// already gated to instructors/admins by the router; every add answers with
// the created entity so clients can reference its id immediately.
type ContentController struct {
	ContentService *service.ContentService
	Storage        *service.StorageService
}

func NewContentController(contentService *service.ContentService, storage *service.StorageService) *ContentController {
	return &ContentController{
		ContentService: contentService,
		Storage:        storage,
	}
}

// ---- courses ----

type CourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

func (c *ContentController) ListCourses(ctx *gin.Context) {
	courses, err := c.ContentService.GetCourses()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

func (c *ContentController) GetCourse(ctx *gin.Context) {
	course, err := c.ContentService.GetCourse(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

func (c *ContentController) CreateCourse(ctx *gin.Context) {
	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.ContentService.CreateCourse(&service.CourseInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

func (c *ContentController) UpdateCourse(ctx *gin.Context) {
	var req CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.ContentService.UpdateCourse(ctx.Param("id"), &service.CourseInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *ContentController) DeleteCourse(ctx *gin.Context) {
	if err := c.ContentService.DeleteCourse(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UploadCourseImage stores a course image and records its URL.
func (c *ContentController) UploadCourseImage(ctx *gin.Context) {
	courseID := ctx.Param("id")
	course, err := c.ContentService.GetCourse(courseID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	header, err := ctx.FormFile("image")
	if err != nil {
		util.BadRequest(ctx, "image file is required")
		return
	}

	file, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.Storage.Upload(ctx.Request.Context(), model.GenerateUUID()+"_"+header.Filename, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	err = c.ContentService.UpdateCourse(courseID, &service.CourseInput{
		Title:       course.Title,
		Description: course.Description,
		ImageURL:    url,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"imageUrl": url})
}

// ---- modules ----

type ModuleRequest struct {
	Title string `json:"title" binding:"required"`
}

func (c *ContentController) CreateModule(ctx *gin.Context) {
	var req ModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	module, err := c.ContentService.CreateModule(ctx.Param("id"), req.Title)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, module)
}

func (c *ContentController) UpdateModule(ctx *gin.Context) {
	var req ModuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ContentService.UpdateModule(ctx.Param("id"), ctx.Param("moduleId"), req.Title); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *ContentController) DeleteModule(ctx *gin.Context) {
	if err := c.ContentService.DeleteModule(ctx.Param("id"), ctx.Param("moduleId")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ---- lessons ----

type LessonRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

func (c *ContentController) CreateLesson(ctx *gin.Context) {
	var req LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lesson, err := c.ContentService.CreateLesson(ctx.Param("id"), ctx.Param("moduleId"), &service.LessonInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

func (c *ContentController) UpdateLesson(ctx *gin.Context) {
	var req LessonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.ContentService.UpdateLesson(ctx.Param("id"), ctx.Param("moduleId"), ctx.Param("lessonId"), &service.LessonInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *ContentController) DeleteLesson(ctx *gin.Context) {
	if err := c.ContentService.DeleteLesson(ctx.Param("id"), ctx.Param("moduleId"), ctx.Param("lessonId")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ---- quizzes ----

type QuizRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func (c *ContentController) CreateQuiz(ctx *gin.Context) {
	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz, err := c.ContentService.CreateQuiz(ctx.Param("id"), ctx.Param("moduleId"), &service.QuizInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, quiz)
}

func (c *ContentController) GetQuiz(ctx *gin.Context) {
	quiz, err := c.ContentService.GetQuiz(ctx.Param("id"), ctx.Param("moduleId"), ctx.Param("quizId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

func (c *ContentController) UpdateQuiz(ctx *gin.Context) {
	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.ContentService.UpdateQuiz(ctx.Param("id"), ctx.Param("moduleId"), ctx.Param("quizId"), &service.QuizInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *ContentController) DeleteQuiz(ctx *gin.Context) {
	if err := c.ContentService.DeleteQuiz(ctx.Param("id"), ctx.Param("moduleId"), ctx.Param("quizId")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ---- questions ----

type QuestionRequest struct {
	Text               string   `json:"text" binding:"required"`
	Type               string   `json:"type" binding:"required,oneof=multiple_choice true_false"`
	Options            []string `json:"options" binding:"required,min=2"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
	Points             int      `json:"points" binding:"required,gt=0"`
}

func (r *QuestionRequest) toInput() *service.QuestionInput {
	return &service.QuestionInput{
		Text:               r.Text,
		Type:               model.QuestionType(r.Type),
		Options:            r.Options,
		CorrectOptionIndex: r.CorrectOptionIndex,
		Points:             r.Points,
	}
}

func (c *ContentController) CreateQuestion(ctx *gin.Context) {
	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.ContentService.CreateQuestion(ctx.Param("id"), ctx.Param("moduleId"), ctx.Param("quizId"), req.toInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

func (c *ContentController) UpdateQuestion(ctx *gin.Context) {
	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.ContentService.UpdateQuestion(ctx.Param("id"), ctx.Param("moduleId"), ctx.Param("quizId"), ctx.Param("questionId"), req.toInput())
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

func (c *ContentController) DeleteQuestion(ctx *gin.Context) {
	err := c.ContentService.DeleteQuestion(ctx.Param("id"), ctx.Param("moduleId"), ctx.Param("quizId"), ctx.Param("questionId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
