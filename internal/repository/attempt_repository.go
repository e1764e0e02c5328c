package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.QuizAttempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) FindByQuizAndUser(quizID, userID string) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.DB.Preload("Answers").
		Where("quiz_id = ? AND user_id = ?", quizID, userID).
		Order("submitted_at").
		Find(&attempts).Error
	return attempts, err
}

// DeleteByQuizIDs prunes attempts (and their answer rows) referencing any of
// the given quizzes. Used by the cascade paths.
func DeleteAttemptsByQuizIDs(tx *gorm.DB, quizIDs []string) error {
	if len(quizIDs) == 0 {
		return nil
	}
	var attemptIDs []string
	if err := tx.Model(&model.QuizAttempt{}).
		Where("quiz_id IN ?", quizIDs).
		Pluck("id", &attemptIDs).Error; err != nil {
		return err
	}
	if len(attemptIDs) > 0 {
		if err := tx.Delete(&model.StudentAnswer{}, "attempt_id IN ?", attemptIDs).Error; err != nil {
			return err
		}
	}
	return tx.Delete(&model.QuizAttempt{}, "quiz_id IN ?", quizIDs).Error
}

// DeleteAttemptsByUser prunes a deleted user's attempts.
func DeleteAttemptsByUser(tx *gorm.DB, userID string) error {
	var attemptIDs []string
	if err := tx.Model(&model.QuizAttempt{}).
		Where("user_id = ?", userID).
		Pluck("id", &attemptIDs).Error; err != nil {
		return err
	}
	if len(attemptIDs) > 0 {
		if err := tx.Delete(&model.StudentAnswer{}, "attempt_id IN ?", attemptIDs).Error; err != nil {
			return err
		}
	}
	return tx.Delete(&model.QuizAttempt{}, "user_id = ?", userID).Error
}
