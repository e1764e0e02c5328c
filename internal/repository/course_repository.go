package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

// FindByID loads the full course tree with modules, lessons, quizzes and
// questions in position order.
func (r *CourseRepository) FindByID(id string) (*model.Course, error) {
	var course model.Course
	err := r.DB.
		Preload("Modules", func(db *gorm.DB) *gorm.DB { return db.Order("modules.position") }).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("lessons.position") }).
		Preload("Modules.Quizzes", func(db *gorm.DB) *gorm.DB { return db.Order("quizzes.position") }).
		Preload("Modules.Quizzes.Questions", func(db *gorm.DB) *gorm.DB { return db.Order("questions.position") }).
		Preload("Modules.Quizzes.Questions.Options").
		First(&course, "id = ?", id).Error
	return &course, err
}

func (r *CourseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.
		Preload("Modules", func(db *gorm.DB) *gorm.DB { return db.Order("modules.position") }).
		Order("created_at").
		Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByIDs(ids []string) ([]model.Course, error) {
	var courses []model.Course
	if len(ids) == 0 {
		return courses, nil
	}
	err := r.DB.Where("id IN ?", ids).Order("created_at").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Course{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Model(&model.Course{}).Where("id = ?", course.ID).Updates(map[string]interface{}{
		"title":       course.Title,
		"description": course.Description,
		"image_url":   course.ImageURL,
	}).Error
}
