package model

import "time"

// Enrollment relates a user to a course they opted into. The index is not
// unique: repeated enrollment appends another row, matching the write path.
type Enrollment struct {
	UUIDBase
	UserID     string    `gorm:"type:varchar(36);index:idx_user_course;not null" json:"userId"`
	CourseID   string    `gorm:"type:varchar(36);index:idx_user_course;not null" json:"courseId"`
	EnrolledAt time.Time `gorm:"not null" json:"enrolledAt"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
