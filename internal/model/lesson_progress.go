package model

import "time"

// LessonProgress is a completion marker tying one user to one completed
// lesson. The unique index backs the write path's at-most-one invariant.
type LessonProgress struct {
	UUIDBase
	LessonID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_lesson_user" json:"lessonId"`
	UserID      string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_lesson_user" json:"userId"`
	CompletedAt time.Time `gorm:"not null" json:"completedAt"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}

// Progress is the completion roll-up for a module or a course.
type Progress struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}
