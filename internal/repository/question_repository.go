package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) FindInQuiz(quizID, id string) (*model.Question, error) {
	var question model.Question
	err := r.DB.Preload("Options").
		Where("id = ? AND quiz_id = ?", id, quizID).
		First(&question).Error
	return &question, err
}

func (r *QuestionRepository) NextPosition(quizID string) (int, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("quiz_id = ?", quizID).Count(&count).Error
	return int(count), err
}
