package service

import (
	"errors"
	"lms_backend/internal/model"
	"lms_backend/internal/repository"
	"lms_backend/internal/util"
	"lms_backend/pkg/monitoring"
	"math"
	"time"

	"gorm.io/gorm"
)

// ProgressService records quiz attempts and lesson completions and computes
// the per-module and per-course completion roll-ups.
type ProgressService struct {
	QuizRepo     *repository.QuizRepository
	ModuleRepo   *repository.ModuleRepository
	LessonRepo   *repository.LessonRepository
	CourseRepo   *repository.CourseRepository
	AttemptRepo  *repository.AttemptRepository
	ProgressRepo *repository.ProgressRepository
}

func NewProgressService(
	quizRepo *repository.QuizRepository,
	moduleRepo *repository.ModuleRepository,
	lessonRepo *repository.LessonRepository,
	courseRepo *repository.CourseRepository,
	attemptRepo *repository.AttemptRepository,
	progressRepo *repository.ProgressRepository,
) *ProgressService {
	return &ProgressService{
		QuizRepo:     quizRepo,
		ModuleRepo:   moduleRepo,
		LessonRepo:   lessonRepo,
		CourseRepo:   courseRepo,
		AttemptRepo:  attemptRepo,
		ProgressRepo: progressRepo,
	}
}

// AnswerInput is one submitted selection. SelectedOptionID is nil for an
// unanswered question.
type AnswerInput struct {
	QuestionID       string  `json:"questionId"`
	SelectedOptionID *string `json:"selectedOptionId"`
}

// RecordAttempt scores the submission and appends an immutable attempt.
// Any authenticated user may attempt any quiz; there is no duplicate check.
// Score sums the points of questions whose selection equals the designated
// correct option; max score sums every question's points regardless.
func (s *ProgressService) RecordAttempt(userID, quizID string, answers []AnswerInput) (*model.QuizAttempt, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}

	selected := make(map[string]*string, len(answers))
	for _, a := range answers {
		selected[a.QuestionID] = a.SelectedOptionID
	}

	score, maxScore := 0, 0
	for _, q := range quiz.Questions {
		maxScore += q.Points
		if sel, ok := selected[q.ID]; ok && sel != nil && *sel == q.CorrectOptionID {
			score += q.Points
		}
	}

	attempt := &model.QuizAttempt{
		QuizID:      quizID,
		UserID:      userID,
		Score:       score,
		MaxScore:    maxScore,
		SubmittedAt: time.Now(),
	}
	attempt.ID = model.GenerateUUID()

	for _, a := range answers {
		answer := model.StudentAnswer{
			AttemptID:        attempt.ID,
			QuestionID:       a.QuestionID,
			SelectedOptionID: a.SelectedOptionID,
		}
		answer.ID = model.GenerateUUID()
		attempt.Answers = append(attempt.Answers, answer)
	}

	if err := s.AttemptRepo.Create(attempt); err != nil {
		return nil, err
	}
	monitoring.QuizAttemptCounter.Inc()
	return attempt, nil
}

func (s *ProgressService) AttemptsFor(userID, quizID string) ([]model.QuizAttempt, error) {
	return s.AttemptRepo.FindByQuizAndUser(quizID, userID)
}

// MarkLessonComplete is idempotent: at most one completion marker exists per
// (lesson, user) pair.
func (s *ProgressService) MarkLessonComplete(userID, lessonID string) error {
	if _, err := s.LessonRepo.FindByID(lessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrLessonNotFound
		}
		return err
	}

	done, err := s.ProgressRepo.Exists(lessonID, userID)
	if err != nil {
		return err
	}
	if done {
		return nil
	}

	return s.ProgressRepo.Create(&model.LessonProgress{
		LessonID:    lessonID,
		UserID:      userID,
		CompletedAt: time.Now(),
	})
}

func (s *ProgressService) IsLessonCompleted(userID, lessonID string) (bool, error) {
	return s.ProgressRepo.Exists(lessonID, userID)
}

// ModuleProgress computes the completion roll-up for one module. Progress is
// only ever computed for the session's own user: a missing module or a
// queried user other than the session user yields the zero result.
func (s *ProgressService) ModuleProgress(moduleID, queriedUserID, sessionUserID string) (model.Progress, error) {
	if sessionUserID == "" || queriedUserID != sessionUserID {
		return model.Progress{}, nil
	}
	if _, err := s.ModuleRepo.FindByID(moduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Progress{}, nil
		}
		return model.Progress{}, err
	}

	lessonIDs, err := s.LessonRepo.IDsByModule(moduleID)
	if err != nil {
		return model.Progress{}, err
	}
	return s.rollUp(sessionUserID, lessonIDs)
}

// CourseProgress rolls up lesson completion across every module of a course,
// with the same own-session restriction as ModuleProgress.
func (s *ProgressService) CourseProgress(courseID, queriedUserID, sessionUserID string) (model.Progress, error) {
	if sessionUserID == "" || queriedUserID != sessionUserID {
		return model.Progress{}, nil
	}

	moduleIDs, err := s.ModuleRepo.IDsByCourse(courseID)
	if err != nil {
		return model.Progress{}, err
	}
	exists, err := s.CourseRepo.Exists(courseID)
	if err != nil {
		return model.Progress{}, err
	}
	if !exists {
		return model.Progress{}, nil
	}

	lessonIDs, err := s.LessonRepo.IDsByModules(moduleIDs)
	if err != nil {
		return model.Progress{}, err
	}
	return s.rollUp(sessionUserID, lessonIDs)
}

func (s *ProgressService) rollUp(userID string, lessonIDs []string) (model.Progress, error) {
	total := len(lessonIDs)
	if total == 0 {
		return model.Progress{}, nil
	}

	completed, err := s.ProgressRepo.CountCompleted(userID, lessonIDs)
	if err != nil {
		return model.Progress{}, err
	}

	return model.Progress{
		Completed:  completed,
		Total:      total,
		Percentage: int(math.Round(float64(completed) / float64(total) * 100)),
	}, nil
}
