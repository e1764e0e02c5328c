package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"lms_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContentService owns the course/module/lesson/quiz/question tree. Every
// delete collects the descendant lesson and quiz ids before removing
// anything, then prunes the dependent progress and attempt records in the
// same transaction.
type ContentService struct {
	CourseRepo   *repository.CourseRepository
	ModuleRepo   *repository.ModuleRepository
	LessonRepo   *repository.LessonRepository
	QuizRepo     *repository.QuizRepository
	QuestionRepo *repository.QuestionRepository
	DB           *gorm.DB
}

func NewContentService(
	courseRepo *repository.CourseRepository,
	moduleRepo *repository.ModuleRepository,
	lessonRepo *repository.LessonRepository,
	quizRepo *repository.QuizRepository,
	questionRepo *repository.QuestionRepository,
	db *gorm.DB,
) *ContentService {
	return &ContentService{
		CourseRepo:   courseRepo,
		ModuleRepo:   moduleRepo,
		LessonRepo:   lessonRepo,
		QuizRepo:     quizRepo,
		QuestionRepo: questionRepo,
		DB:           db,
	}
}

// ---- courses ----

type CourseInput struct {
	Title       string
	Description string
	ImageURL    string
}

func (s *ContentService) CreateCourse(in *CourseInput) (*model.Course, error) {
	course := &model.Course{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Modules:     []model.Module{},
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *ContentService) GetCourses() ([]model.Course, error) {
	return s.CourseRepo.FindAll()
}

func (s *ContentService) GetCourse(id string) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	return course, err
}

func (s *ContentService) UpdateCourse(id string, in *CourseInput) error {
	course, err := s.GetCourse(id)
	if err != nil {
		return err
	}
	course.Title = in.Title
	course.Description = in.Description
	if in.ImageURL != "" {
		course.ImageURL = in.ImageURL
	}
	return s.CourseRepo.Update(course)
}

func (s *ContentService) DeleteCourse(id string) error {
	if _, err := s.GetCourse(id); err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		var moduleIDs []string
		if err := tx.Model(&model.Module{}).Where("course_id = ?", id).Pluck("id", &moduleIDs).Error; err != nil {
			return err
		}

		if err := s.deleteModuleTrees(tx, moduleIDs); err != nil {
			return err
		}
		if err := repository.DeleteEnrollmentsByCourse(tx, id); err != nil {
			return err
		}
		if err := tx.Delete(&model.Course{}, "id = ?", id).Error; err != nil {
			return err
		}

		logger.Log.Info("Course deleted",
			zap.String("courseId", id),
			zap.Int("modules", len(moduleIDs)))
		return nil
	})
}

// deleteModuleTrees removes the given modules with everything below them:
// lessons, quizzes, questions, options, and the dependent progress/attempt
// records. Descendant id sets come from the pre-deletion state.
func (s *ContentService) deleteModuleTrees(tx *gorm.DB, moduleIDs []string) error {
	if len(moduleIDs) == 0 {
		return nil
	}

	var lessonIDs []string
	if err := tx.Model(&model.Lesson{}).Where("module_id IN ?", moduleIDs).Pluck("id", &lessonIDs).Error; err != nil {
		return err
	}
	var quizIDs []string
	if err := tx.Model(&model.Quiz{}).Where("module_id IN ?", moduleIDs).Pluck("id", &quizIDs).Error; err != nil {
		return err
	}

	if err := repository.DeleteProgressByLessonIDs(tx, lessonIDs); err != nil {
		return err
	}
	if err := repository.DeleteAttemptsByQuizIDs(tx, quizIDs); err != nil {
		return err
	}
	if err := s.deleteQuestionsByQuizzes(tx, quizIDs); err != nil {
		return err
	}

	if len(quizIDs) > 0 {
		if err := tx.Delete(&model.Quiz{}, "id IN ?", quizIDs).Error; err != nil {
			return err
		}
	}
	if len(lessonIDs) > 0 {
		if err := tx.Delete(&model.Lesson{}, "id IN ?", lessonIDs).Error; err != nil {
			return err
		}
	}
	return tx.Delete(&model.Module{}, "id IN ?", moduleIDs).Error
}

func (s *ContentService) deleteQuestionsByQuizzes(tx *gorm.DB, quizIDs []string) error {
	if len(quizIDs) == 0 {
		return nil
	}
	var questionIDs []string
	if err := tx.Model(&model.Question{}).Where("quiz_id IN ?", quizIDs).Pluck("id", &questionIDs).Error; err != nil {
		return err
	}
	if len(questionIDs) > 0 {
		if err := tx.Delete(&model.AnswerOption{}, "question_id IN ?", questionIDs).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Question{}, "id IN ?", questionIDs).Error; err != nil {
			return err
		}
	}
	return nil
}

// ---- modules ----

func (s *ContentService) CreateModule(courseID, title string) (*model.Module, error) {
	if _, err := s.GetCourse(courseID); err != nil {
		return nil, err
	}
	position, err := s.ModuleRepo.NextPosition(courseID)
	if err != nil {
		return nil, err
	}
	// Lessons and quizzes default to empty, never null.
	module := &model.Module{
		CourseID: courseID,
		Title:    title,
		Position: position,
		Lessons:  []model.Lesson{},
		Quizzes:  []model.Quiz{},
	}
	if err := s.ModuleRepo.Create(module); err != nil {
		return nil, err
	}
	return module, nil
}

func (s *ContentService) getModuleInCourse(courseID, moduleID string) (*model.Module, error) {
	module, err := s.ModuleRepo.FindInCourse(courseID, moduleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrModuleNotFound
	}
	return module, err
}

func (s *ContentService) UpdateModule(courseID, moduleID, title string) error {
	module, err := s.getModuleInCourse(courseID, moduleID)
	if err != nil {
		return err
	}
	module.Title = title
	return s.ModuleRepo.Update(module)
}

func (s *ContentService) DeleteModule(courseID, moduleID string) error {
	if _, err := s.getModuleInCourse(courseID, moduleID); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.deleteModuleTrees(tx, []string{moduleID})
	})
}

// ---- lessons ----

type LessonInput struct {
	Title   string
	Content string
}

func (s *ContentService) CreateLesson(courseID, moduleID string, in *LessonInput) (*model.Lesson, error) {
	if _, err := s.getModuleInCourse(courseID, moduleID); err != nil {
		return nil, err
	}
	position, err := s.LessonRepo.NextPosition(moduleID)
	if err != nil {
		return nil, err
	}
	lesson := &model.Lesson{
		ModuleID: moduleID,
		Title:    in.Title,
		Content:  in.Content,
		Position: position,
	}
	if err := s.LessonRepo.Create(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *ContentService) GetLesson(id string) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLessonNotFound
	}
	return lesson, err
}

func (s *ContentService) UpdateLesson(courseID, moduleID, lessonID string, in *LessonInput) error {
	if _, err := s.getModuleInCourse(courseID, moduleID); err != nil {
		return err
	}
	lesson, err := s.LessonRepo.FindInModule(moduleID, lessonID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrLessonNotFound
	}
	if err != nil {
		return err
	}
	lesson.Title = in.Title
	lesson.Content = in.Content
	return s.LessonRepo.Update(lesson)
}

func (s *ContentService) DeleteLesson(courseID, moduleID, lessonID string) error {
	if _, err := s.getModuleInCourse(courseID, moduleID); err != nil {
		return err
	}
	if _, err := s.LessonRepo.FindInModule(moduleID, lessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrLessonNotFound
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := repository.DeleteProgressByLessonIDs(tx, []string{lessonID}); err != nil {
			return err
		}
		return tx.Delete(&model.Lesson{}, "id = ?", lessonID).Error
	})
}

// ---- quizzes ----

type QuizInput struct {
	Title       string
	Description string
}

func (s *ContentService) CreateQuiz(courseID, moduleID string, in *QuizInput) (*model.Quiz, error) {
	if _, err := s.getModuleInCourse(courseID, moduleID); err != nil {
		return nil, err
	}
	position, err := s.QuizRepo.NextPosition(moduleID)
	if err != nil {
		return nil, err
	}
	quiz := &model.Quiz{
		ModuleID:    moduleID,
		Title:       in.Title,
		Description: in.Description,
		Position:    position,
		Questions:   []model.Question{},
	}
	if err := s.QuizRepo.Create(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

// GetQuiz resolves course -> module -> quiz and fails on any missing link.
// Callers use it to re-fetch a fresh quiz after question edits.
func (s *ContentService) GetQuiz(courseID, moduleID, quizID string) (*model.Quiz, error) {
	if _, err := s.getModuleInCourse(courseID, moduleID); err != nil {
		return nil, err
	}
	quiz, err := s.QuizRepo.FindInModule(moduleID, quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	return quiz, err
}

func (s *ContentService) UpdateQuiz(courseID, moduleID, quizID string, in *QuizInput) error {
	quiz, err := s.GetQuiz(courseID, moduleID, quizID)
	if err != nil {
		return err
	}
	quiz.Title = in.Title
	quiz.Description = in.Description
	return s.QuizRepo.Update(quiz)
}

func (s *ContentService) DeleteQuiz(courseID, moduleID, quizID string) error {
	if _, err := s.GetQuiz(courseID, moduleID, quizID); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := repository.DeleteAttemptsByQuizIDs(tx, []string{quizID}); err != nil {
			return err
		}
		if err := s.deleteQuestionsByQuizzes(tx, []string{quizID}); err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, "id = ?", quizID).Error
	})
}

// ---- questions ----

type QuestionInput struct {
	Text               string
	Type               model.QuestionType
	Options            []string
	CorrectOptionIndex int
	Points             int
}

func (s *ContentService) CreateQuestion(courseID, moduleID, quizID string, in *QuestionInput) (*model.Question, error) {
	if _, err := s.GetQuiz(courseID, moduleID, quizID); err != nil {
		return nil, err
	}
	if err := validateQuestionInput(in); err != nil {
		return nil, err
	}

	position, err := s.QuestionRepo.NextPosition(quizID)
	if err != nil {
		return nil, err
	}

	question := &model.Question{
		QuizID:   quizID,
		Text:     in.Text,
		Type:     in.Type,
		Points:   in.Points,
		Position: position,
	}
	question.ID = model.GenerateUUID()

	options := make([]model.AnswerOption, 0, len(in.Options))
	for i, text := range in.Options {
		opt := model.AnswerOption{QuestionID: question.ID, Text: text}
		opt.ID = model.GenerateUUID()
		if i == in.CorrectOptionIndex {
			question.CorrectOptionID = opt.ID
		}
		options = append(options, opt)
	}
	question.Options = options

	if err := s.QuestionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *ContentService) UpdateQuestion(courseID, moduleID, quizID, questionID string, in *QuestionInput) error {
	if _, err := s.GetQuiz(courseID, moduleID, quizID); err != nil {
		return err
	}
	if err := validateQuestionInput(in); err != nil {
		return err
	}

	question, err := s.QuestionRepo.FindInQuiz(quizID, questionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrQuestionNotFound
	}
	if err != nil {
		return err
	}

	// Options are replaced wholesale; the correct-answer reference always
	// points into the new option set.
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.AnswerOption{}, "question_id = ?", questionID).Error; err != nil {
			return err
		}

		correctID := ""
		for i, text := range in.Options {
			opt := model.AnswerOption{QuestionID: questionID, Text: text}
			opt.ID = model.GenerateUUID()
			if i == in.CorrectOptionIndex {
				correctID = opt.ID
			}
			if err := tx.Create(&opt).Error; err != nil {
				return err
			}
		}

		return tx.Model(&model.Question{}).Where("id = ?", question.ID).Updates(map[string]interface{}{
			"text":              in.Text,
			"type":              in.Type,
			"correct_option_id": correctID,
			"points":            in.Points,
		}).Error
	})
}

func (s *ContentService) DeleteQuestion(courseID, moduleID, quizID, questionID string) error {
	if _, err := s.GetQuiz(courseID, moduleID, quizID); err != nil {
		return err
	}
	if _, err := s.QuestionRepo.FindInQuiz(quizID, questionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrQuestionNotFound
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.AnswerOption{}, "question_id = ?", questionID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Question{}, "id = ?", questionID).Error
	})
}

func validateQuestionInput(in *QuestionInput) error {
	if in.Points <= 0 {
		return util.ErrValidation
	}
	if in.Type != model.MultipleChoice && in.Type != model.TrueFalse {
		return util.ErrValidation
	}
	if len(in.Options) < 2 {
		return util.ErrValidation
	}
	if in.Type == model.TrueFalse && len(in.Options) != 2 {
		return util.ErrValidation
	}
	if in.CorrectOptionIndex < 0 || in.CorrectOptionIndex >= len(in.Options) {
		return util.ErrValidation
	}
	return nil
}
