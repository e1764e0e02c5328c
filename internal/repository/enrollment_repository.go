package repository

import (
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.DB.Create(enrollment).Error
}

func (r *EnrollmentRepository) CourseIDsByUser(userID string) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.Enrollment{}).
		Where("user_id = ?", userID).
		Order("enrolled_at").
		Pluck("course_id", &ids).Error
	return ids, err
}

func DeleteEnrollmentsByUser(tx *gorm.DB, userID string) error {
	return tx.Delete(&model.Enrollment{}, "user_id = ?", userID).Error
}

func DeleteEnrollmentsByCourse(tx *gorm.DB, courseID string) error {
	return tx.Delete(&model.Enrollment{}, "course_id = ?", courseID).Error
}
