package model

// Quiz keeps a backreference to its owning Module so lookups that only hold
// the quiz can climb back up the tree.
type Quiz struct {
	UUIDBase
	ModuleID    string     `gorm:"type:varchar(36);index;not null" json:"moduleId"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	Position    int        `gorm:"not null;default:0" json:"position"`
	Questions   []Question `gorm:"foreignKey:QuizID" json:"questions"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
