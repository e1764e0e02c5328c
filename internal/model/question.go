package model

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
)

// Question carries its correct-answer reference into its own option list.
type Question struct {
	UUIDBase
	QuizID          string         `gorm:"type:varchar(36);index;not null" json:"quizId"`
	Text            string         `gorm:"type:text;not null" json:"text"`
	Type            QuestionType   `gorm:"type:varchar(20);not null;default:'multiple_choice'" json:"type"`
	Options         []AnswerOption `gorm:"foreignKey:QuestionID" json:"options"`
	CorrectOptionID string         `gorm:"type:varchar(36);not null" json:"correctOptionId"`
	Points          int            `gorm:"not null;default:1" json:"points"`
	Position        int            `gorm:"not null;default:0" json:"position"`
}

func (Question) TableName() string {
	return "questions"
}

type AnswerOption struct {
	UUIDBase
	QuestionID string `gorm:"type:varchar(36);index;not null" json:"questionId"`
	Text       string `gorm:"type:text;not null" json:"text"`
}

func (AnswerOption) TableName() string {
	return "answer_options"
}
