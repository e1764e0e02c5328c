package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *LessonRepository) FindByID(id string) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, "id = ?", id).Error
	return &lesson, err
}

func (r *LessonRepository) FindInModule(moduleID, id string) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.Where("id = ? AND module_id = ?", id, moduleID).First(&lesson).Error
	return &lesson, err
}

func (r *LessonRepository) IDsByModule(moduleID string) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.Lesson{}).Where("module_id = ?", moduleID).Pluck("id", &ids).Error
	return ids, err
}

func (r *LessonRepository) IDsByModules(moduleIDs []string) ([]string, error) {
	var ids []string
	if len(moduleIDs) == 0 {
		return ids, nil
	}
	err := r.DB.Model(&model.Lesson{}).Where("module_id IN ?", moduleIDs).Pluck("id", &ids).Error
	return ids, err
}

func (r *LessonRepository) NextPosition(moduleID string) (int, error) {
	var count int64
	err := r.DB.Model(&model.Lesson{}).Where("module_id = ?", moduleID).Count(&count).Error
	return int(count), err
}

func (r *LessonRepository) Update(lesson *model.Lesson) error {
	return r.DB.Model(&model.Lesson{}).Where("id = ?", lesson.ID).Updates(map[string]interface{}{
		"title":   lesson.Title,
		"content": lesson.Content,
	}).Error
}
