package model

// Lesson is owned exclusively by one Module.
type Lesson struct {
	UUIDBase
	ModuleID string `gorm:"type:varchar(36);index;not null" json:"moduleId"`
	Title    string `gorm:"size:255;not null" json:"title"`
	Content  string `gorm:"type:text" json:"content"`
	Position int    `gorm:"not null;default:0" json:"position"`
}

func (Lesson) TableName() string {
	return "lessons"
}
