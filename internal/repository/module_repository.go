package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type ModuleRepository struct {
	DB *gorm.DB
}

func NewModuleRepository(db *gorm.DB) *ModuleRepository {
	return &ModuleRepository{DB: db}
}

func (r *ModuleRepository) Create(module *model.Module) error {
	return r.DB.Create(module).Error
}

func (r *ModuleRepository) FindByID(id string) (*model.Module, error) {
	var module model.Module
	err := r.DB.
		Preload("Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("lessons.position") }).
		Preload("Quizzes", func(db *gorm.DB) *gorm.DB { return db.Order("quizzes.position") }).
		First(&module, "id = ?", id).Error
	return &module, err
}

// FindInCourse resolves a module only when it actually belongs to the given
// course, so composite lookups fail on any broken link.
func (r *ModuleRepository) FindInCourse(courseID, id string) (*model.Module, error) {
	var module model.Module
	err := r.DB.Where("id = ? AND course_id = ?", id, courseID).First(&module).Error
	return &module, err
}

func (r *ModuleRepository) IDsByCourse(courseID string) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.Module{}).Where("course_id = ?", courseID).Pluck("id", &ids).Error
	return ids, err
}

func (r *ModuleRepository) NextPosition(courseID string) (int, error) {
	var count int64
	err := r.DB.Model(&model.Module{}).Where("course_id = ?", courseID).Count(&count).Error
	return int(count), err
}

func (r *ModuleRepository) Update(module *model.Module) error {
	return r.DB.Model(&model.Module{}).Where("id = ?", module.ID).
		Update("title", module.Title).Error
}
