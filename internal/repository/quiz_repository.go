package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) Create(quiz *model.Quiz) error {
	return r.DB.Create(quiz).Error
}

func (r *QuizRepository) FindByID(id string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("questions.position") }).
		Preload("Questions.Options").
		First(&quiz, "id = ?", id).Error
	return &quiz, err
}

func (r *QuizRepository) FindInModule(moduleID, id string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.
		Preload("Questions", func(db *gorm.DB) *gorm.DB { return db.Order("questions.position") }).
		Preload("Questions.Options").
		Where("id = ? AND module_id = ?", id, moduleID).
		First(&quiz).Error
	return &quiz, err
}

func (r *QuizRepository) IDsByModule(moduleID string) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.Quiz{}).Where("module_id = ?", moduleID).Pluck("id", &ids).Error
	return ids, err
}

func (r *QuizRepository) IDsByModules(moduleIDs []string) ([]string, error) {
	var ids []string
	if len(moduleIDs) == 0 {
		return ids, nil
	}
	err := r.DB.Model(&model.Quiz{}).Where("module_id IN ?", moduleIDs).Pluck("id", &ids).Error
	return ids, err
}

func (r *QuizRepository) NextPosition(moduleID string) (int, error) {
	var count int64
	err := r.DB.Model(&model.Quiz{}).Where("module_id = ?", moduleID).Count(&count).Error
	return int(count), err
}

func (r *QuizRepository) Update(quiz *model.Quiz) error {
	return r.DB.Model(&model.Quiz{}).Where("id = ?", quiz.ID).Updates(map[string]interface{}{
		"title":       quiz.Title,
		"description": quiz.Description,
	}).Error
}
