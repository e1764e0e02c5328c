package model

// Module belongs to exactly one Course and owns ordered lessons and quizzes.
type Module struct {
	UUIDBase
	CourseID string   `gorm:"type:varchar(36);index;not null" json:"courseId"`
	Title    string   `gorm:"size:255;not null" json:"title"`
	Position int      `gorm:"not null;default:0" json:"position"`
	Lessons  []Lesson `gorm:"foreignKey:ModuleID" json:"lessons"`
	Quizzes  []Quiz   `gorm:"foreignKey:ModuleID" json:"quizzes"`
}

func (Module) TableName() string {
	return "modules"
}
