package repository

import (
	"errors"
	"lms_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) Create(progress *model.LessonProgress) error {
	return r.DB.Create(progress).Error
}

// Exists reports whether a completion marker exists for (lesson, user).
func (r *ProgressRepository) Exists(lessonID, userID string) (bool, error) {
	var progress model.LessonProgress
	err := r.DB.Where("lesson_id = ? AND user_id = ?", lessonID, userID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CountCompleted counts completion markers for the user within lessonIDs.
func (r *ProgressRepository) CountCompleted(userID string, lessonIDs []string) (int, error) {
	if len(lessonIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.DB.Model(&model.LessonProgress{}).
		Where("user_id = ? AND lesson_id IN ?", userID, lessonIDs).
		Count(&count).Error
	return int(count), err
}

func DeleteProgressByLessonIDs(tx *gorm.DB, lessonIDs []string) error {
	if len(lessonIDs) == 0 {
		return nil
	}
	return tx.Delete(&model.LessonProgress{}, "lesson_id IN ?", lessonIDs).Error
}

func DeleteProgressByUser(tx *gorm.DB, userID string) error {
	return tx.Delete(&model.LessonProgress{}, "user_id = ?", userID).Error
}
