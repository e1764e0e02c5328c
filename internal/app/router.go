package app

import (
	"lms_backend/internal/middleware"
	"lms_backend/internal/model"
	"lms_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Health)

	// Public routes
	api := router.Group("/api")
	{
		api.POST("/register", c.auth.Register)
		api.POST("/login", c.auth.Login)
	}

	// Authenticated routes
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(a.Config, a.Redis))
	{
		authGroup.POST("/logout", c.auth.Logout)
		authGroup.GET("/me", c.auth.Me)
		authGroup.GET("/me/courses", c.enrollment.MyCourses)

		// Reading course content is open to every authenticated role.
		authGroup.GET("/courses", c.content.ListCourses)
		authGroup.GET("/courses/:id", c.content.GetCourse)
		authGroup.GET("/courses/:id/modules/:moduleId/quizzes/:quizId", c.content.GetQuiz)

		authGroup.POST("/courses/:id/enroll", c.enrollment.Enroll)

		authGroup.POST("/quizzes/:id/attempts", c.progress.SubmitAttempt)
		authGroup.GET("/quizzes/:id/attempts", c.progress.ListAttempts)
		authGroup.POST("/lessons/:id/complete", c.progress.CompleteLesson)
		authGroup.GET("/lessons/:id/completed", c.progress.LessonCompleted)
		authGroup.GET("/modules/:id/progress", c.progress.ModuleProgress)
		authGroup.GET("/courses/:id/progress", c.progress.CourseProgress)

		// Content mutations require edit capability: instructor or admin.
		editGroup := authGroup.Group("")
		editGroup.Use(middleware.RoleMiddleware(model.Instructor))
		{
			editGroup.POST("/courses", c.content.CreateCourse)
			editGroup.PUT("/courses/:id", c.content.UpdateCourse)
			editGroup.DELETE("/courses/:id", c.content.DeleteCourse)
			editGroup.POST("/courses/:id/image", c.content.UploadCourseImage)

			editGroup.POST("/courses/:id/modules", c.content.CreateModule)
			editGroup.PUT("/courses/:id/modules/:moduleId", c.content.UpdateModule)
			editGroup.DELETE("/courses/:id/modules/:moduleId", c.content.DeleteModule)

			editGroup.POST("/courses/:id/modules/:moduleId/lessons", c.content.CreateLesson)
			editGroup.PUT("/courses/:id/modules/:moduleId/lessons/:lessonId", c.content.UpdateLesson)
			editGroup.DELETE("/courses/:id/modules/:moduleId/lessons/:lessonId", c.content.DeleteLesson)

			editGroup.POST("/courses/:id/modules/:moduleId/quizzes", c.content.CreateQuiz)
			editGroup.PUT("/courses/:id/modules/:moduleId/quizzes/:quizId", c.content.UpdateQuiz)
			editGroup.DELETE("/courses/:id/modules/:moduleId/quizzes/:quizId", c.content.DeleteQuiz)

			editGroup.POST("/courses/:id/modules/:moduleId/quizzes/:quizId/questions", c.content.CreateQuestion)
			editGroup.PUT("/courses/:id/modules/:moduleId/quizzes/:quizId/questions/:questionId", c.content.UpdateQuestion)
			editGroup.DELETE("/courses/:id/modules/:moduleId/quizzes/:quizId/questions/:questionId", c.content.DeleteQuestion)

			editGroup.POST("/ai/generate", c.ai.Generate)
			editGroup.POST("/ai/generate-structured", c.ai.GenerateStructured)
			editGroup.POST("/ai/suggest-questions", c.ai.SuggestQuestions)
			editGroup.POST("/ai/suggest-outline", c.ai.SuggestOutline)
			editGroup.POST("/uploads", c.ai.Upload)
		}

		// Admin-only user management
		adminGroup := authGroup.Group("/admin")
		adminGroup.Use(middleware.RoleMiddleware(model.Admin))
		{
			adminGroup.GET("/users", c.user.List)
			adminGroup.POST("/users", c.user.Add)
			adminGroup.PUT("/users/:id/role", c.user.UpdateRole)
			adminGroup.DELETE("/users/:id", c.user.Delete)
		}
	}
}
